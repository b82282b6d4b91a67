package biometric

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnsupportedDevice error = errors.New("device has no compatible authenticator")
var ErrNotEnrolled error = errors.New("no biometric credential enrolled")
var ErrUserCancelled error = errors.New("ceremony cancelled by user")
var ErrAuthenticationFailed error = errors.New("biometric authentication failed")
var ErrAlreadyRegistered error = errors.New("device already registered")
var ErrNotRegistered error = errors.New("device not registered")

var timeNow = time.Now

const (
	// DeviceSecretKey is the secure store entry holding the device-bound
	// random identifier used as derivation salt.
	DeviceSecretKey = "device_secret"

	registeredKey = "registered"

	registerPrompt = "Authenticate to register"
	loginPrompt    = "Authenticate to login"
)

// Gate runs registration and login ceremonies against an external
// authenticator and issues one-time proofs on success.
type Gate struct {
	logs    *zap.SugaredLogger
	secrets SecretStore
}

func NewGate(logger *zap.SugaredLogger, secrets SecretStore) *Gate {
	return &Gate{
		logs:    logger,
		secrets: secrets,
	}
}

// BeginCeremony performs a full ceremony of the given kind. On the first ever
// call it provisions the device secret; provisioning is idempotent and kept
// even when the ceremony itself fails or is cancelled.
func (g *Gate) BeginCeremony(ctx context.Context, kind CeremonyKind, authn Authenticator) (*Proof, error) {
	if err := g.provisionDeviceSecret(); err != nil {
		return nil, fmt.Errorf("provision device secret: %w", err)
	}

	_, registered, err := g.secrets.Get(registeredKey)
	if err != nil {
		return nil, fmt.Errorf("read registration marker: %w", err)
	}
	if kind == CeremonyRegister && registered {
		return nil, ErrAlreadyRegistered
	}
	if kind == CeremonyLogin && !registered {
		return nil, ErrNotRegistered
	}

	compatible, err := authn.Compatible(ctx)
	if err != nil {
		return nil, fmt.Errorf("check authenticator compatibility: %w", err)
	}
	if !compatible {
		return nil, ErrUnsupportedDevice
	}

	enrolled, err := authn.Enrolled(ctx)
	if err != nil {
		return nil, fmt.Errorf("check enrollment: %w", err)
	}
	if !enrolled {
		return nil, ErrNotEnrolled
	}

	kinds, err := authn.SupportedKinds(ctx)
	if err != nil {
		return nil, fmt.Errorf("list supported kinds: %w", err)
	}

	prompt := loginPrompt
	if kind == CeremonyRegister {
		prompt = registerPrompt
	}

	result, err := authn.PerformCeremony(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("perform ceremony: %w", err)
	}
	if result.Cancelled {
		return nil, ErrUserCancelled
	}
	if !result.Success {
		return nil, ErrAuthenticationFailed
	}

	if kind == CeremonyRegister {
		if err := g.secrets.Set(registeredKey, "true"); err != nil {
			return nil, fmt.Errorf("set registration marker: %w", err)
		}
	}

	g.logs.Infow("ceremony succeeded", "kind", kind)

	return &Proof{
		Kind:      kind,
		Biometric: primaryKind(kinds),
		IssuedAt:  timeNow(),
		SecretRef: DeviceSecretKey,
	}, nil
}

func (g *Gate) provisionDeviceSecret() error {
	_, ok, err := g.secrets.Get(DeviceSecretKey)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	secret := uuid.NewString()
	if err := g.secrets.Set(DeviceSecretKey, secret); err != nil {
		return err
	}

	g.logs.Infow("device secret provisioned")
	return nil
}

func primaryKind(kinds []BiometricKind) BiometricKind {
	for _, preferred := range []BiometricKind{KindFace, KindFingerprint, KindIris} {
		for _, k := range kinds {
			if k == preferred {
				return k
			}
		}
	}
	return KindFingerprint
}
