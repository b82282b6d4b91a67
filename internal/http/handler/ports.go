package handler

import (
	"context"
	"net/http"

	"biowallet/internal/biometric"
	"biowallet/internal/core"
	"biowallet/internal/ethereum"
	"biowallet/internal/ledger"
	"biowallet/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(req *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name WalletService . WalletService
type WalletService interface {
	RegisterWallet(ctx context.Context, authn biometric.Authenticator, deviceID string) (core.WalletInfo, error)
	Login(ctx context.Context, authn biometric.Authenticator) (core.WalletInfo, error)
	SubmitTransfer(ctx context.Context, token string, authn biometric.Authenticator, request core.TransferRequest) (repository.Transaction, error)
	WalletBalance(ctx context.Context, address string) (float64, error)
	WalletTransactions(ctx context.Context, address string) ([]repository.Transaction, error)
	TransactionByID(ctx context.Context, id string) (repository.Transaction, error)
	UserTransactions(ctx context.Context, token string, limit int, offset int) ([]repository.Transaction, int64, error)
	UserByID(ctx context.Context, id string) (repository.User, error)
	UpdateUser(ctx context.Context, id string, update repository.UserUpdate) (repository.User, error)
	Users(ctx context.Context) ([]repository.User, error)
	OnChainHistory(ctx context.Context, address string) ([]ethereum.TransferEvent, error)
	ChainTransaction(ctx context.Context, txHash string) (ethereum.TransferEvent, bool, error)
	Stats(ctx context.Context) (ledger.Totals, error)
	DailyStats(ctx context.Context, days int) ([]ledger.DayStat, error)
	UserGrowth(ctx context.Context, period ledger.Period) ([]ledger.GrowthPoint, error)
	VolumeSeries(ctx context.Context, period ledger.Period) ([]ledger.VolumePoint, error)
}
