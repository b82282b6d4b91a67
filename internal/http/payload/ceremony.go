package payload

import (
	"biowallet/internal/biometric"

	"github.com/jellydator/validation"
)

// CeremonyAttestation is the ceremony outcome reported by the device front
// end. The platform check itself runs on the device; this only carries its
// result.
type CeremonyAttestation struct {
	DeviceCompatible  bool     `json:"deviceCompatible"`
	BiometricEnrolled bool     `json:"biometricEnrolled"`
	BiometricTypes    []string `json:"biometricTypes"`
	Succeeded         bool     `json:"succeeded"`
	Cancelled         bool     `json:"cancelled"`
}

func (c CeremonyAttestation) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BiometricTypes, validation.Each(validation.In(
			string(biometric.KindFace),
			string(biometric.KindFingerprint),
			string(biometric.KindIris),
		))),
	)
}

func (c CeremonyAttestation) ToAuthenticator() biometric.Attestation {
	kinds := make([]biometric.BiometricKind, 0, len(c.BiometricTypes))
	for _, t := range c.BiometricTypes {
		kinds = append(kinds, biometric.BiometricKind(t))
	}

	return biometric.Attestation{
		DeviceCompatible:  c.DeviceCompatible,
		BiometricEnrolled: c.BiometricEnrolled,
		Kinds:             kinds,
		Succeeded:         c.Succeeded,
		Cancelled:         c.Cancelled,
	}
}

type RegisterRequest struct {
	DeviceID    string              `json:"deviceId"`
	Attestation CeremonyAttestation `json:"attestation"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.DeviceID, validation.Required),
		validation.Field(&r.Attestation),
	)
}

type LoginRequest struct {
	Attestation CeremonyAttestation `json:"attestation"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Attestation),
	)
}
