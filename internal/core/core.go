// Package core is the wallet engine: it runs the ceremony, re-derives the
// keypair for exactly one signing call, submits transfers and hands them to
// the confirmation tracker. Private key material never outlives a single
// operation and is never persisted anywhere.
package core

import (
	"biowallet/internal/biometric"
	"biowallet/internal/ethereum"
	"biowallet/internal/keyderiv"
	"biowallet/internal/ledger"
	"biowallet/internal/repository"
	tokenIssuer "biowallet/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeeRate is the protocol fee taken on every transfer: 0.1% of the amount.
const FeeRate = 0.001

// historyLookback is how many recent blocks the on-chain history scan covers.
const historyLookback = 10

var ErrInvalidAmount error = errors.New("amount must be a positive finite number")
var ErrInvalidAddress error = errors.New("invalid ethereum address")
var ErrBroadcastRejected error = errors.New("network rejected the transaction broadcast")
var ErrWalletNotFound error = errors.New("wallet not found")
var ErrSessionInvalid error = errors.New("session token is not valid")

type Engine struct {
	logs    *zap.SugaredLogger
	gate    Gate
	deriver Deriver
	secrets SecretStore
	repo    Repository
	node    NodeService
	tracker Tracker
	ledger  Ledger
	jwt     JWTIssuer
	network string
}

func NewEngine(
	logger *zap.SugaredLogger,
	gate Gate,
	deriver Deriver,
	secrets SecretStore,
	repo Repository,
	node NodeService,
	tracker Tracker,
	ledger Ledger,
	jwt JWTIssuer,
	network string,
) *Engine {
	return &Engine{
		logs:    logger,
		gate:    gate,
		deriver: deriver,
		secrets: secrets,
		repo:    repo,
		node:    node,
		tracker: tracker,
		ledger:  ledger,
		jwt:     jwt,
		network: network,
	}
}

// RegisterWallet runs a REGISTER ceremony, derives the wallet address and
// records the new user. The keypair is discarded before returning.
func (e *Engine) RegisterWallet(ctx context.Context, authn biometric.Authenticator, deviceID string) (WalletInfo, error) {
	proof, err := e.gate.BeginCeremony(ctx, biometric.CeremonyRegister, authn)
	if err != nil {
		return WalletInfo{}, fmt.Errorf("register ceremony: %w", err)
	}

	keypair, err := e.deriveFromProof(proof)
	if err != nil {
		return WalletInfo{}, err
	}
	defer keypair.Destroy()

	user := repository.User{
		ID:            uuid.NewString(),
		WalletAddress: keypair.Address,
		PublicKey:     keypair.PublicKeyHex(),
		BiometricType: string(proof.Biometric),
		DeviceID:      deviceID,
		CreatedAt:     time.Now(),
	}

	if err := e.repo.CreateUser(ctx, user); err != nil {
		return WalletInfo{}, fmt.Errorf("create user: %w", err)
	}

	if err := e.ledger.ApplyUserCreated(ctx); err != nil {
		e.logs.Errorw("failed to count new user", "userId", user.ID, "error", err)
	}

	token, err := e.issueSession(user)
	if err != nil {
		return WalletInfo{}, err
	}

	e.logs.Infow("wallet registered", "userId", user.ID, "address", user.WalletAddress)

	return WalletInfo{
		UserID:        user.ID,
		Address:       user.WalletAddress,
		BiometricType: user.BiometricType,
		Token:         token,
	}, nil
}

// Login runs a LOGIN ceremony and re-derives the wallet. The same device
// secret always reproduces the address registered earlier.
func (e *Engine) Login(ctx context.Context, authn biometric.Authenticator) (WalletInfo, error) {
	proof, err := e.gate.BeginCeremony(ctx, biometric.CeremonyLogin, authn)
	if err != nil {
		return WalletInfo{}, fmt.Errorf("login ceremony: %w", err)
	}

	keypair, err := e.deriveFromProof(proof)
	if err != nil {
		return WalletInfo{}, err
	}
	address := keypair.Address
	keypair.Destroy()

	user, err := e.repo.GetUserByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return WalletInfo{}, ErrWalletNotFound
		}
		return WalletInfo{}, fmt.Errorf("get user by address: %w", err)
	}

	token, err := e.issueSession(user)
	if err != nil {
		return WalletInfo{}, err
	}

	return WalletInfo{
		UserID:        user.ID,
		Address:       user.WalletAddress,
		BiometricType: user.BiometricType,
		Token:         token,
	}, nil
}

// SubmitTransfer validates, signs and broadcasts a transfer, returning the
// PENDING record. The record is registered with the confirmation tracker
// before this method returns.
func (e *Engine) SubmitTransfer(ctx context.Context, token string, authn biometric.Authenticator, req TransferRequest) (repository.Transaction, error) {
	if err := validateTransfer(req); err != nil {
		return repository.Transaction{}, err
	}

	claims, err := e.jwt.Validate(token)
	if err != nil {
		return repository.Transaction{}, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}
	userID, ok := claims["sub"].(string)
	if !ok {
		return repository.Transaction{}, ErrSessionInvalid
	}

	proof, err := e.gate.BeginCeremony(ctx, biometric.CeremonyLogin, authn)
	if err != nil {
		return repository.Transaction{}, fmt.Errorf("signing ceremony: %w", err)
	}

	keypair, err := e.deriveFromProof(proof)
	if err != nil {
		return repository.Transaction{}, err
	}
	defer keypair.Destroy()

	if !strings.EqualFold(req.FromAddress, keypair.Address) {
		return repository.Transaction{}, fmt.Errorf("%w: from address does not match derived wallet", ErrInvalidAddress)
	}
	fromAddress := keypair.Address

	unsigned, chainID, err := e.node.PrepareTransfer(ctx, fromAddress, req.ToAddress, req.Amount)
	if err != nil {
		return repository.Transaction{}, fmt.Errorf("%w: %w", ErrBroadcastRejected, err)
	}

	signed, err := types.SignTx(unsigned, types.NewLondonSigner(chainID), keypair.PrivateKey())
	// the key is not needed past this point on any path
	keypair.Destroy()
	if err != nil {
		return repository.Transaction{}, fmt.Errorf("sign transaction: %w", err)
	}

	txHash, err := e.node.Broadcast(ctx, signed)
	if err != nil {
		return repository.Transaction{}, fmt.Errorf("%w: %w", ErrBroadcastRejected, err)
	}

	record := repository.Transaction{
		ID:          uuid.NewString(),
		TxHash:      txHash,
		Type:        repository.TypeSend,
		Amount:      req.Amount,
		Fee:         req.Amount * FeeRate,
		FromAddress: fromAddress,
		ToAddress:   req.ToAddress,
		UserID:      userID,
		Status:      repository.StatusPending,
		Network:     e.network,
		CreatedAt:   time.Now(),
	}

	if err := e.repo.SaveTransaction(ctx, record); err != nil {
		return repository.Transaction{}, fmt.Errorf("save transaction: %w", err)
	}

	if err := e.ledger.ApplyTransactionSubmitted(ctx); err != nil {
		e.logs.Errorw("failed to count submitted transaction", "txHash", txHash, "error", err)
	}

	e.tracker.Track(record)

	e.logs.Infow("transfer submitted",
		"txHash", txHash,
		"from", record.FromAddress,
		"to", record.ToAddress,
		"amount", record.Amount,
		"fee", record.Fee)

	return record, nil
}

func (e *Engine) WalletBalance(ctx context.Context, address string) (float64, error) {
	if !common.IsHexAddress(address) {
		return 0, ErrInvalidAddress
	}

	balance, err := e.node.Balance(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("fetch balance: %w", err)
	}
	return balance, nil
}

func (e *Engine) WalletTransactions(ctx context.Context, address string) ([]repository.Transaction, error) {
	if !common.IsHexAddress(address) {
		return nil, ErrInvalidAddress
	}

	if _, err := e.repo.GetUserByAddress(ctx, address); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("get user by address: %w", err)
	}

	transactions, err := e.repo.GetTransactionsByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("get transactions by address: %w", err)
	}
	return transactions, nil
}

func (e *Engine) TransactionByID(ctx context.Context, id string) (repository.Transaction, error) {
	transaction, err := e.repo.GetTransactionByID(ctx, id)
	if err != nil {
		return repository.Transaction{}, fmt.Errorf("get transaction: %w", err)
	}
	return transaction, nil
}

// UserTransactions returns one page of the caller's transactions together
// with the caller's total transaction count.
func (e *Engine) UserTransactions(ctx context.Context, token string, limit int, offset int) ([]repository.Transaction, int64, error) {
	claims, err := e.jwt.Validate(token)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}
	userID, ok := claims["sub"].(string)
	if !ok {
		return nil, 0, ErrSessionInvalid
	}

	transactions, total, err := e.repo.GetTransactionsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get transactions by user: %w", err)
	}
	return transactions, total, nil
}

func (e *Engine) UserByID(ctx context.Context, id string) (repository.User, error) {
	user, err := e.repo.GetUserByID(ctx, id)
	if err != nil {
		return repository.User{}, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (e *Engine) UpdateUser(ctx context.Context, id string, update repository.UserUpdate) (repository.User, error) {
	user, err := e.repo.UpdateUser(ctx, id, update)
	if err != nil {
		return repository.User{}, fmt.Errorf("update user: %w", err)
	}

	e.logs.Infow("user updated", "userId", id)
	return user, nil
}

func (e *Engine) Users(ctx context.Context) ([]repository.User, error) {
	users, err := e.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// OnChainHistory scans recent blocks for transfers touching the address,
// including ones this service never submitted.
func (e *Engine) OnChainHistory(ctx context.Context, address string) ([]ethereum.TransferEvent, error) {
	if !common.IsHexAddress(address) {
		return nil, ErrInvalidAddress
	}

	events, err := e.node.History(ctx, address, historyLookback)
	if err != nil {
		return nil, fmt.Errorf("scan chain history: %w", err)
	}
	return events, nil
}

func (e *Engine) ChainTransaction(ctx context.Context, txHash string) (ethereum.TransferEvent, bool, error) {
	event, pending, err := e.node.Transaction(ctx, txHash)
	if err != nil {
		return ethereum.TransferEvent{}, false, fmt.Errorf("lookup chain transaction: %w", err)
	}
	return event, pending, nil
}

func (e *Engine) Stats(ctx context.Context) (ledger.Totals, error) {
	return e.ledger.Totals(ctx)
}

func (e *Engine) DailyStats(ctx context.Context, days int) ([]ledger.DayStat, error) {
	return e.ledger.DailyStats(ctx, days)
}

func (e *Engine) UserGrowth(ctx context.Context, period ledger.Period) ([]ledger.GrowthPoint, error) {
	return e.ledger.UserGrowth(ctx, period)
}

func (e *Engine) VolumeSeries(ctx context.Context, period ledger.Period) ([]ledger.VolumePoint, error) {
	return e.ledger.VolumeSeries(ctx, period)
}

func (e *Engine) deriveFromProof(proof *biometric.Proof) (*keyderiv.Keypair, error) {
	secret, ok, err := e.secrets.Get(proof.SecretRef)
	if err != nil {
		return nil, fmt.Errorf("read device secret: %w", err)
	}
	if !ok {
		return nil, errors.New("device secret missing from store")
	}

	keypair, err := e.deriver.Derive(proof, secret)
	if err != nil {
		return nil, fmt.Errorf("derive keypair: %w", err)
	}
	return keypair, nil
}

func (e *Engine) issueSession(user repository.User) (string, error) {
	token := e.jwt.Generate(tokenIssuer.TokenInfo{
		WalletAddress: user.WalletAddress,
		Subject:       user.ID,
		Expiration:    24,
	})
	signed, err := e.jwt.Sign(token)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func validateTransfer(req TransferRequest) error {
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return ErrInvalidAmount
	}
	if !common.IsHexAddress(req.FromAddress) || !common.IsHexAddress(req.ToAddress) {
		return ErrInvalidAddress
	}
	return nil
}
