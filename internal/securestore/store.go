// Package securestore is a small encrypted key-value file used as the
// protected local store for the device secret. Values are kept as a JSON map
// sealed with AES-256-GCM, nonce prepended to the ciphertext.
package securestore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

var ErrBadKey = errors.New("store key must be 32 bytes hex encoded")

type Store struct {
	path string
	key  []byte

	mu sync.Mutex
}

func New(path string, keyHex string) (*Store, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != 32 {
		return nil, ErrBadKey
	}

	return &Store{
		path: path,
		key:  key,
	}, nil
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", false, err
	}

	value, ok := values[key]
	return value, ok, nil
}

func (s *Store) Set(key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}

	values[key] = value
	return s.save(values)
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}

	delete(values, key)
	return s.save(values)
}

func (s *Store) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	plain, err := s.decrypt(data)
	if err != nil {
		return nil, fmt.Errorf("decrypt store file: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(plain, &values); err != nil {
		return nil, fmt.Errorf("unmarshal store file: %w", err)
	}
	return values, nil
}

func (s *Store) save(values map[string]string) error {
	plain, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal store values: %w", err)
	}

	sealed, err := s.encrypt(plain)
	if err != nil {
		return fmt.Errorf("encrypt store values: %w", err)
	}

	if err := os.WriteFile(s.path, sealed, 0o600); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

func (s *Store) encrypt(data []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return append(nonce, gcm.Seal(nil, nonce, data, nil)...), nil
}

func (s *Store) decrypt(sealed []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(sealed) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := sealed[:gcm.NonceSize()]
	return gcm.Open(nil, nonce, sealed[gcm.NonceSize():], nil)
}
