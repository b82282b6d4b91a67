package biometric_test

import (
	"context"
	"errors"

	"biowallet/internal/biometric"
	"biowallet/internal/biometric/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Gate", func() {
	var (
		fakeAuthn   *fake.Authenticator
		fakeSecrets *fake.SecretStore
		fakeLogger  *zap.SugaredLogger
		ctx         context.Context

		stored map[string]string
		gate   *biometric.Gate

		fakeErr error
	)

	BeforeEach(func() {
		fakeAuthn = new(fake.Authenticator)
		fakeSecrets = new(fake.SecretStore)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		stored = map[string]string{}
		fakeSecrets.GetStub = func(key string) (string, bool, error) {
			value, ok := stored[key]
			return value, ok, nil
		}
		fakeSecrets.SetStub = func(key string, value string) error {
			stored[key] = value
			return nil
		}

		fakeAuthn.CompatibleReturns(true, nil)
		fakeAuthn.EnrolledReturns(true, nil)
		fakeAuthn.SupportedKindsReturns([]biometric.BiometricKind{biometric.KindFingerprint}, nil)
		fakeAuthn.PerformCeremonyReturns(biometric.CeremonyResult{Success: true}, nil)

		gate = biometric.NewGate(fakeLogger, fakeSecrets)

		fakeErr = errors.New("fake error")
	})

	Describe("BeginCeremony", func() {
		When("registering on a fresh device", func() {
			It("provisions a device secret and issues a proof", func() {
				proof, err := gate.BeginCeremony(ctx, biometric.CeremonyRegister, fakeAuthn)

				Expect(err).NotTo(HaveOccurred())
				Expect(proof.Kind).To(Equal(biometric.CeremonyRegister))
				Expect(proof.SecretRef).To(Equal(biometric.DeviceSecretKey))
				Expect(stored).To(HaveKey(biometric.DeviceSecretKey))
				Expect(stored[biometric.DeviceSecretKey]).NotTo(BeEmpty())
				Expect(stored).To(HaveKeyWithValue("registered", "true"))

				Expect(fakeAuthn.PerformCeremonyCallCount()).To(Equal(1))
				_, prompt := fakeAuthn.PerformCeremonyArgsForCall(0)
				Expect(prompt).To(Equal("Authenticate to register"))
			})
		})

		When("registering twice on the same device", func() {
			It("rejects the second registration", func() {
				_, err := gate.BeginCeremony(ctx, biometric.CeremonyRegister, fakeAuthn)
				Expect(err).NotTo(HaveOccurred())

				_, err = gate.BeginCeremony(ctx, biometric.CeremonyRegister, fakeAuthn)
				Expect(err).To(MatchError(biometric.ErrAlreadyRegistered))
			})
		})

		When("logging in before registering", func() {
			It("rejects the login", func() {
				_, err := gate.BeginCeremony(ctx, biometric.CeremonyLogin, fakeAuthn)
				Expect(err).To(MatchError(biometric.ErrNotRegistered))
			})
		})

		When("logging in after registering", func() {
			It("keeps the provisioned device secret", func() {
				_, err := gate.BeginCeremony(ctx, biometric.CeremonyRegister, fakeAuthn)
				Expect(err).NotTo(HaveOccurred())
				secret := stored[biometric.DeviceSecretKey]

				proof, err := gate.BeginCeremony(ctx, biometric.CeremonyLogin, fakeAuthn)
				Expect(err).NotTo(HaveOccurred())
				Expect(proof.Kind).To(Equal(biometric.CeremonyLogin))
				Expect(stored[biometric.DeviceSecretKey]).To(Equal(secret))

				_, prompt := fakeAuthn.PerformCeremonyArgsForCall(1)
				Expect(prompt).To(Equal("Authenticate to login"))
			})
		})

		When("the device has no compatible authenticator", func() {
			BeforeEach(func() {
				fakeAuthn.CompatibleReturns(false, nil)
			})

			It("rejects the ceremony but keeps the device secret", func() {
				_, err := gate.BeginCeremony(ctx, biometric.CeremonyRegister, fakeAuthn)

				Expect(err).To(MatchError(biometric.ErrUnsupportedDevice))
				Expect(stored).To(HaveKey(biometric.DeviceSecretKey))
				Expect(stored).NotTo(HaveKey("registered"))
			})
		})

		When("no biometric credential is enrolled", func() {
			BeforeEach(func() {
				fakeAuthn.EnrolledReturns(false, nil)
			})

			It("rejects the ceremony", func() {
				_, err := gate.BeginCeremony(ctx, biometric.CeremonyRegister, fakeAuthn)
				Expect(err).To(MatchError(biometric.ErrNotEnrolled))
			})
		})

		When("the user cancels the ceremony", func() {
			BeforeEach(func() {
				fakeAuthn.PerformCeremonyReturns(biometric.CeremonyResult{Cancelled: true}, nil)
			})

			It("rejects the ceremony without marking the device registered", func() {
				_, err := gate.BeginCeremony(ctx, biometric.CeremonyRegister, fakeAuthn)

				Expect(err).To(MatchError(biometric.ErrUserCancelled))
				Expect(stored).NotTo(HaveKey("registered"))
			})
		})

		When("the biometric check fails", func() {
			BeforeEach(func() {
				fakeAuthn.PerformCeremonyReturns(biometric.CeremonyResult{}, nil)
			})

			It("rejects the ceremony", func() {
				_, err := gate.BeginCeremony(ctx, biometric.CeremonyRegister, fakeAuthn)
				Expect(err).To(MatchError(biometric.ErrAuthenticationFailed))
			})
		})

		When("the authenticator errors out", func() {
			BeforeEach(func() {
				fakeAuthn.PerformCeremonyReturns(biometric.CeremonyResult{}, fakeErr)
			})

			It("returns the wrapped error", func() {
				_, err := gate.BeginCeremony(ctx, biometric.CeremonyRegister, fakeAuthn)
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the device reports several biometric kinds", func() {
			BeforeEach(func() {
				fakeAuthn.SupportedKindsReturns([]biometric.BiometricKind{
					biometric.KindIris,
					biometric.KindFace,
					biometric.KindFingerprint,
				}, nil)
			})

			It("prefers face recognition", func() {
				proof, err := gate.BeginCeremony(ctx, biometric.CeremonyRegister, fakeAuthn)

				Expect(err).NotTo(HaveOccurred())
				Expect(proof.Biometric).To(Equal(biometric.KindFace))
			})
		})

		When("the device reports no biometric kinds", func() {
			BeforeEach(func() {
				fakeAuthn.SupportedKindsReturns(nil, nil)
			})

			It("defaults to fingerprint", func() {
				proof, err := gate.BeginCeremony(ctx, biometric.CeremonyRegister, fakeAuthn)

				Expect(err).NotTo(HaveOccurred())
				Expect(proof.Biometric).To(Equal(biometric.KindFingerprint))
			})
		})
	})
})
