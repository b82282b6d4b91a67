package biometric

import (
	"errors"
	"sync/atomic"
	"time"
)

type CeremonyKind string

const (
	CeremonyRegister CeremonyKind = "REGISTER"
	CeremonyLogin    CeremonyKind = "LOGIN"
)

type BiometricKind string

const (
	KindFace        BiometricKind = "FACE"
	KindFingerprint BiometricKind = "FINGERPRINT"
	KindIris        BiometricKind = "IRIS"
)

// CeremonyResult is the outcome of a user-presence check. The platform never
// reports anything beyond success, failure or cancellation.
type CeremonyResult struct {
	Success   bool
	Cancelled bool
}

var ErrProofConsumed error = errors.New("authentication proof already consumed")
var ErrProofExpired error = errors.New("authentication proof expired")

// proofValidity bounds how long a proof stays usable after the ceremony.
const proofValidity = 30 * time.Second

// Proof is the one-time token produced by a successful ceremony. It
// references the device secret by store key and never carries key material.
type Proof struct {
	Kind      CeremonyKind
	Biometric BiometricKind
	IssuedAt  time.Time
	SecretRef string

	spent atomic.Bool
}

// Spend consumes the proof. It fails on reuse and on proofs older than the
// validity window, in that order.
func (p *Proof) Spend() error {
	if !p.spent.CompareAndSwap(false, true) {
		return ErrProofConsumed
	}
	if timeNow().Sub(p.IssuedAt) > proofValidity {
		return ErrProofExpired
	}
	return nil
}
