package biometric

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Authenticator . Authenticator
type Authenticator interface {
	Compatible(ctx context.Context) (bool, error)
	Enrolled(ctx context.Context) (bool, error)
	SupportedKinds(ctx context.Context) ([]BiometricKind, error)
	PerformCeremony(ctx context.Context, prompt string) (CeremonyResult, error)
}

//counterfeiter:generate -o fake -fake-name SecretStore . SecretStore
type SecretStore interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
	Delete(key string) error
}
