package repository

import (
	"biowallet/internal/db"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrUserExists error = errors.New("wallet address already registered")
var ErrTransactionNotFound error = errors.New("transaction not found")

type WalletRepository struct {
	db Storage
}

func NewWalletRepository(db Storage) *WalletRepository {
	return &WalletRepository{
		db: db,
	}
}

// MigrateTables migrates the schema and makes sure the singleton stats row
// exists so later increments always have a target.
func (r *WalletRepository) MigrateTables() error {
	err := r.db.MigrateTable(&Transaction{}, &User{}, &Stats{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	err = r.db.EnsureRow(context.Background(), &Stats{ID: statsRowID})
	if err != nil {
		return fmt.Errorf("ensure stats row: %w", err)
	}

	return nil
}

func (r *WalletRepository) CreateUser(ctx context.Context, user User) error {
	var existing User
	err := r.db.GetOneBy(ctx, "wallet_address", user.WalletAddress, &existing)
	if err == nil {
		return ErrUserExists
	}
	if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("check wallet address: %w", err)
	}

	users := []User{user}
	if err := r.db.Insert(ctx, &users); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *WalletRepository) GetUserByAddress(ctx context.Context, address string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "wallet_address", address, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by address: %w", err)
	}
	return user, nil
}

func (r *WalletRepository) GetUserByID(ctx context.Context, id string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "id", id, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// UpdateUser applies the non-nil profile fields and refreshes the last-login
// timestamp, returning the updated record.
func (r *WalletRepository) UpdateUser(ctx context.Context, id string, update UserUpdate) (User, error) {
	updates := map[string]any{
		"last_login": time.Now(),
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.DeviceID != nil {
		updates["device_id"] = *update.DeviceID
	}
	if update.IsPremium != nil {
		updates["is_premium"] = *update.IsPremium
	}

	rows, err := r.db.UpdateWhere(ctx, &User{}, updates, "id = ?", id)
	if err != nil {
		return User{}, fmt.Errorf("update user: %w", err)
	}
	if rows == 0 {
		return User{}, ErrUserNotFound
	}

	return r.GetUserByID(ctx, id)
}

func (r *WalletRepository) ListUsers(ctx context.Context) ([]User, error) {
	users := []User{}
	err := r.db.Find(ctx, &users, "")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *WalletRepository) SaveTransaction(ctx context.Context, transaction Transaction) error {
	transactions := []Transaction{transaction}
	if err := r.db.Insert(ctx, &transactions); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (r *WalletRepository) GetTransactionByID(ctx context.Context, id string) (Transaction, error) {
	var transaction Transaction
	err := r.db.GetOneBy(ctx, "id", id, &transaction)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Transaction{}, ErrTransactionNotFound
		}
		return Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}
	return transaction, nil
}

func (r *WalletRepository) GetTransactionsByAddress(ctx context.Context, address string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.Find(ctx, &transactions, "from_address = ? OR to_address = ?", address, address)
	if err != nil {
		return nil, fmt.Errorf("get transactions by address: %w", err)
	}
	return transactions, nil
}

// GetTransactionsByUser returns one page of the user's transactions, newest
// first, together with the total number of rows the user has.
func (r *WalletRepository) GetTransactionsByUser(ctx context.Context, userID string, limit int, offset int) ([]Transaction, int64, error) {
	transactions := []Transaction{}
	err := r.db.FindPage(ctx, &transactions, limit, offset, "user_id = ?", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("get transactions by user: %w", err)
	}

	total, err := r.db.Count(ctx, &Transaction{}, "user_id = ?", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count transactions by user: %w", err)
	}
	return transactions, total, nil
}

func (r *WalletRepository) AllTransactions(ctx context.Context) ([]Transaction, error) {
	transactions := []Transaction{}
	err := r.db.Find(ctx, &transactions, "")
	if err != nil {
		return nil, fmt.Errorf("get all transactions: %w", err)
	}
	return transactions, nil
}

// MarkConfirmed moves the record with the given hash from PENDING to CONFIRMED
// and reports whether this call performed the transition. A false return with
// a nil error means the record was already terminal.
func (r *WalletRepository) MarkConfirmed(ctx context.Context, txHash string, blockNumber uint64, blockTimestamp time.Time) (bool, error) {
	updates := map[string]any{
		"status":          StatusConfirmed,
		"block_number":    blockNumber,
		"block_timestamp": blockTimestamp,
	}
	rows, err := r.db.UpdateWhere(ctx, &Transaction{}, updates, "tx_hash = ? AND status = ?", txHash, StatusPending)
	if err != nil {
		return false, fmt.Errorf("mark confirmed: %w", err)
	}
	return rows > 0, nil
}

// MarkFailed is the FAILED counterpart of MarkConfirmed with the same
// compare-and-set semantics.
func (r *WalletRepository) MarkFailed(ctx context.Context, txHash string) (bool, error) {
	updates := map[string]any{
		"status": StatusFailed,
	}
	rows, err := r.db.UpdateWhere(ctx, &Transaction{}, updates, "tx_hash = ? AND status = ?", txHash, StatusPending)
	if err != nil {
		return false, fmt.Errorf("mark failed: %w", err)
	}
	return rows > 0, nil
}

// IncrementStats applies the delta to the singleton stats row in a single
// UPDATE so concurrent confirmations cannot lose increments.
func (r *WalletRepository) IncrementStats(ctx context.Context, delta StatsDelta) error {
	updates := map[string]any{
		"updated_at": time.Now(),
	}
	if delta.Users != 0 {
		updates["total_users"] = gorm.Expr("total_users + ?", delta.Users)
	}
	if delta.Transactions != 0 {
		updates["total_transactions"] = gorm.Expr("total_transactions + ?", delta.Transactions)
	}
	if delta.Volume != 0 {
		updates["total_volume"] = gorm.Expr("total_volume + ?", delta.Volume)
	}
	if delta.Fees != 0 {
		updates["total_fees"] = gorm.Expr("total_fees + ?", delta.Fees)
	}

	_, err := r.db.UpdateWhere(ctx, &Stats{}, updates, "id = ?", statsRowID)
	if err != nil {
		return fmt.Errorf("increment stats: %w", err)
	}
	return nil
}

func (r *WalletRepository) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := r.db.GetOneBy(ctx, "id", statsRowID, &stats)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Stats{ID: statsRowID}, nil
		}
		return Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}

func (r *WalletRepository) CountUsersSince(ctx context.Context, since time.Time) (int64, error) {
	count, err := r.db.Count(ctx, &User{}, "created_at >= ?", since)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (r *WalletRepository) CountTransactionsSince(ctx context.Context, since time.Time) (int64, error) {
	count, err := r.db.Count(ctx, &Transaction{}, "created_at >= ?", since)
	if err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return count, nil
}

func (r *WalletRepository) UserCreationTimes(ctx context.Context) ([]time.Time, error) {
	users := []User{}
	err := r.db.Find(ctx, &users, "")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	times := make([]time.Time, 0, len(users))
	for _, u := range users {
		times = append(times, u.CreatedAt)
	}
	return times, nil
}
