package biometric

import "context"

// Attestation adapts a ceremony outcome reported by the device front end to
// the Authenticator contract. The platform user-presence check runs on the
// device; the backend only ever sees its result, never sensor output.
type Attestation struct {
	DeviceCompatible  bool
	BiometricEnrolled bool
	Kinds             []BiometricKind
	Succeeded         bool
	Cancelled         bool
}

func (a Attestation) Compatible(ctx context.Context) (bool, error) {
	return a.DeviceCompatible, nil
}

func (a Attestation) Enrolled(ctx context.Context) (bool, error) {
	return a.BiometricEnrolled, nil
}

func (a Attestation) SupportedKinds(ctx context.Context) ([]BiometricKind, error) {
	return a.Kinds, nil
}

func (a Attestation) PerformCeremony(ctx context.Context, prompt string) (CeremonyResult, error) {
	return CeremonyResult{
		Success:   a.Succeeded,
		Cancelled: a.Cancelled,
	}, nil
}
