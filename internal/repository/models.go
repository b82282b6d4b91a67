package repository

import "time"

const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusFailed    = "FAILED"
)

const TypeSend = "SEND"

// statsRowID pins the aggregate totals to a single row, created on first migration.
const statsRowID = "1"

type Transaction struct {
	ID             string  `gorm:"primaryKey;autoIncrement:false"`
	TxHash         string  `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	Type           string  `gorm:"size:10;not null"`
	Amount         float64 `gorm:"not null"` // major units (ETH)
	Fee            float64 `gorm:"not null"`
	FromAddress    string  `gorm:"size:42;not null;index"`
	ToAddress      string  `gorm:"size:42;not null;index"`
	UserID         string  `gorm:"index"`
	Status         string  `gorm:"size:10;not null;index"`
	Network        string  `gorm:"size:20;not null"`
	BlockNumber    *uint64
	BlockTimestamp *time.Time
	CreatedAt      time.Time `gorm:"index"`
}

type User struct {
	ID            string `gorm:"primaryKey;autoIncrement:false"`
	WalletAddress string `gorm:"size:42;uniqueIndex;not null"`
	PublicKey     string `gorm:"type:text;not null"`
	BiometricType string `gorm:"size:16;not null"`
	DeviceID      string `gorm:"size:64"`
	Email         string `gorm:"size:255"`
	IsPremium     bool   `gorm:"not null;default:false"`
	LastLogin     *time.Time
	CreatedAt     time.Time
}

// UserUpdate carries the mutable profile fields; a nil field is unchanged.
type UserUpdate struct {
	Email     *string
	DeviceID  *string
	IsPremium *bool
}

// Stats is the process-wide aggregate row. Volume and fees cover confirmed
// transfers only; the transaction counter is bumped at submission time.
type Stats struct {
	ID                string `gorm:"primaryKey;autoIncrement:false"`
	TotalUsers        int64  `gorm:"not null;default:0"`
	TotalTransactions int64  `gorm:"not null;default:0"`
	TotalVolume       float64 `gorm:"not null;default:0"`
	TotalFees         float64 `gorm:"not null;default:0"`
	UpdatedAt         time.Time
}

// StatsDelta is a set of commutative increments applied to the Stats row.
type StatsDelta struct {
	Users        int64
	Transactions int64
	Volume       float64
	Fees         float64
}
