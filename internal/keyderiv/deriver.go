// Package keyderiv turns a device secret into a deterministic Ethereum
// keypair. The authentication ceremony acts purely as an access gate: two
// ceremonies on the same device always reproduce the same wallet, which is
// what lets the product never persist a private key.
package keyderiv

import (
	"biowallet/internal/biometric"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"
	bip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/argon2"
)

var ErrDerivationFailed error = errors.New("key derivation failed")

const (
	// domainTag keeps derived material separate from any other use of the
	// device secret.
	domainTag = "biowallet-key-v1"

	// Argon2id parameters, matching the derivation the clients ship with.
	argonTime      = 3
	argonMemoryKiB = 4096
	argonThreads   = 1
	seedLen        = 32

	// retrySaltSuffix perturbs the salt for the single bounded retry taken
	// when seed expansion lands on an unusable curve point.
	retrySaltSuffix = "-r1"
)

// ethDerivationPath is the standard BIP44 path for the first Ethereum account.
var ethDerivationPath = []uint32{
	hdkeychain.HardenedKeyStart + 44,
	hdkeychain.HardenedKeyStart + 60,
	hdkeychain.HardenedKeyStart + 0,
	0,
	0,
}

type Deriver struct{}

func NewDeriver() *Deriver {
	return &Deriver{}
}

// Derive consumes the proof and expands the device secret into a keypair.
// Identical secrets always yield byte-identical keypairs. The intermediate
// seed material is zeroed before returning on every path.
func (d *Deriver) Derive(proof *biometric.Proof, secret string) (*Keypair, error) {
	if err := proof.Spend(); err != nil {
		return nil, fmt.Errorf("spend proof: %w", err)
	}

	keypair, err := d.expand(secret, []byte(secret))
	if err == nil {
		return keypair, nil
	}

	// Bounded to one retry with a fixed perturbation so the result stays
	// deterministic across devices hitting the same unusable seed.
	keypair, retryErr := d.expand(secret, []byte(secret+retrySaltSuffix))
	if retryErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDerivationFailed, errors.Join(err, retryErr))
	}
	return keypair, nil
}

func (d *Deriver) expand(secret string, salt []byte) (*Keypair, error) {
	input := []byte(domainTag + "-" + secret)
	entropy := argon2.IDKey(input, salt, argonTime, argonMemoryKiB, argonThreads, seedLen)
	defer clearBytes(entropy)
	clearBytes(input)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("entropy to mnemonic: %w", err)
	}

	seed := bip39.NewSeed(mnemonic, "")
	defer clearBytes(seed)

	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("new master key: %w", err)
	}

	key := master
	for _, idx := range ethDerivationPath {
		key, err = key.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("derive child key: %w", err)
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("get EC private key: %w", err)
	}

	privBytes := priv.Serialize()
	ecdsaKey, err := crypto.ToECDSA(privBytes)
	clearBytes(privBytes)
	if err != nil {
		return nil, fmt.Errorf("convert to ecdsa: %w", err)
	}

	return &Keypair{
		Address: crypto.PubkeyToAddress(ecdsaKey.PublicKey).Hex(),
		priv:    ecdsaKey,
	}, nil
}
