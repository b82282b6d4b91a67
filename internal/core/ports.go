package core

import (
	"biowallet/internal/biometric"
	"biowallet/internal/ethereum"
	"biowallet/internal/keyderiv"
	"biowallet/internal/ledger"
	"biowallet/internal/repository"
	tokenIssuer "biowallet/pkg/jwt"
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Gate . Gate
type Gate interface {
	BeginCeremony(ctx context.Context, kind biometric.CeremonyKind, authn biometric.Authenticator) (*biometric.Proof, error)
}

//counterfeiter:generate -o fake -fake-name Deriver . Deriver
type Deriver interface {
	Derive(proof *biometric.Proof, secret string) (*keyderiv.Keypair, error)
}

//counterfeiter:generate -o fake -fake-name SecretStore . SecretStore
type SecretStore interface {
	Get(key string) (string, bool, error)
}

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByAddress(ctx context.Context, address string) (repository.User, error)
	GetUserByID(ctx context.Context, id string) (repository.User, error)
	UpdateUser(ctx context.Context, id string, update repository.UserUpdate) (repository.User, error)
	ListUsers(ctx context.Context) ([]repository.User, error)
	SaveTransaction(ctx context.Context, transaction repository.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (repository.Transaction, error)
	GetTransactionsByAddress(ctx context.Context, address string) ([]repository.Transaction, error)
	GetTransactionsByUser(ctx context.Context, userID string, limit int, offset int) ([]repository.Transaction, int64, error)
}

//counterfeiter:generate -o fake -fake-name NodeService . NodeService
type NodeService interface {
	PrepareTransfer(ctx context.Context, from string, to string, amount float64) (*types.Transaction, *big.Int, error)
	Broadcast(ctx context.Context, signed *types.Transaction) (string, error)
	Balance(ctx context.Context, address string) (float64, error)
	Transaction(ctx context.Context, txHash string) (ethereum.TransferEvent, bool, error)
	History(ctx context.Context, address string, lookback uint64) ([]ethereum.TransferEvent, error)
}

//counterfeiter:generate -o fake -fake-name Tracker . Tracker
type Tracker interface {
	Track(record repository.Transaction)
}

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	ApplyUserCreated(ctx context.Context) error
	ApplyTransactionSubmitted(ctx context.Context) error
	Totals(ctx context.Context) (ledger.Totals, error)
	DailyStats(ctx context.Context, days int) ([]ledger.DayStat, error)
	UserGrowth(ctx context.Context, period ledger.Period) ([]ledger.GrowthPoint, error)
	VolumeSeries(ctx context.Context, period ledger.Period) ([]ledger.VolumePoint, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
