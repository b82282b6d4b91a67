package keyderiv

import (
	"crypto/ecdsa"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
)

// Keypair holds a freshly derived signing key. It is meant to live on the
// stack of the operation that derived it: use it once, then call Destroy.
type Keypair struct {
	Address string

	priv *ecdsa.PrivateKey
}

func (k *Keypair) PrivateKey() *ecdsa.PrivateKey {
	return k.priv
}

func (k *Keypair) PublicKeyHex() string {
	if k.priv == nil {
		return ""
	}
	return hex.EncodeToString(crypto.FromECDSAPub(&k.priv.PublicKey))
}

// Destroy zeroes the private scalar's backing words and drops the key
// reference. Safe to call more than once.
func (k *Keypair) Destroy() {
	if k.priv == nil {
		return
	}
	bits := k.priv.D.Bits()
	for i := range bits {
		bits[i] = 0
	}
	k.priv = nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
