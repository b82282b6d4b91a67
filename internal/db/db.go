package db

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	var err error
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Insert(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() == reflect.Ptr && v.Elem().Kind() == reflect.Slice && v.Elem().Len() == 0 {
		return nil
	}

	if err := f.DB.WithContext(ctx).Create(records).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

// EnsureRow creates the record unless a row with the same primary key exists.
func (f *PostgresDB) EnsureRow(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).FirstOrCreate(record).Error; err != nil {
		return fmt.Errorf("ensure row: %w", err)
	}
	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) Find(ctx context.Context, dest any, query string, args ...any) error {
	tx := f.DB.WithContext(ctx).Order("created_at DESC")
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("finding records: %w", err)
	}
	return nil
}

// FindPage is Find with a result window applied, newest first.
func (f *PostgresDB) FindPage(ctx context.Context, dest any, limit int, offset int, query string, args ...any) error {
	tx := f.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Find(dest).Error; err != nil {
		return fmt.Errorf("finding records page: %w", err)
	}
	return nil
}

// UpdateWhere applies the column updates to every row matching the query and
// reports the number of rows changed. Update values may be gorm.Expr
// expressions, which keeps increments atomic on the database side.
func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, updates map[string]any, query string, args ...any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(query, args...).Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) Count(ctx context.Context, model any, query string, args ...any) (int64, error) {
	var count int64
	tx := f.DB.WithContext(ctx).Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return count, nil
}
