package repository_test

import (
	"context"
	"errors"
	"time"

	"biowallet/internal/db"
	"biowallet/internal/repository"
	"biowallet/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WalletRepository", func() {
	var (
		repo        *repository.WalletRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewWalletRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("migrates the tables and ensures the stats row", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(3))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Transaction{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Stats{}))

				Expect(fakeStorage.EnsureRowCallCount()).To(Equal(1))
				_, record := fakeStorage.EnsureRowArgsForCall(0)
				Expect(record).To(Equal(&repository.Stats{ID: "1"}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("returns an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var user repository.User

		BeforeEach(func() {
			user = repository.User{
				ID:            uuid.NewString(),
				WalletAddress: "0x52908400098527886E0F7030069857D2E4169EE7",
			}
		})

		When("the wallet address is new", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("inserts the user", func() {
				Expect(repo.CreateUser(ctx, user)).To(Succeed())

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(column).To(Equal("wallet_address"))
				Expect(value).To(Equal(user.WalletAddress))

				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
			})
		})

		When("the wallet address is already registered", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(nil)
			})

			It("returns user exists without inserting", func() {
				Expect(repo.CreateUser(ctx, user)).To(MatchError(repository.ErrUserExists))
				Expect(fakeStorage.InsertCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetUserByAddress", func() {
		When("the user is missing", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns user not found", func() {
				_, err := repo.GetUserByAddress(ctx, "0x52908400098527886E0F7030069857D2E4169EE7")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("MarkConfirmed", func() {
		var blockTimestamp time.Time

		BeforeEach(func() {
			blockTimestamp = time.Now()
		})

		When("the record is still pending", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(1, nil)
			})

			It("performs the transition guarded on the pending status", func() {
				changed, err := repo.MarkConfirmed(ctx, "0xabc", 123, blockTimestamp)

				Expect(err).NotTo(HaveOccurred())
				Expect(changed).To(BeTrue())

				_, model, updates, query, args := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Transaction{}))
				Expect(updates).To(HaveKeyWithValue("status", repository.StatusConfirmed))
				Expect(updates).To(HaveKeyWithValue("block_number", uint64(123)))
				Expect(updates).To(HaveKeyWithValue("block_timestamp", blockTimestamp))
				Expect(query).To(Equal("tx_hash = ? AND status = ?"))
				Expect(args).To(Equal([]any{"0xabc", repository.StatusPending}))
			})
		})

		When("the record is already terminal", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("reports no transition", func() {
				changed, err := repo.MarkConfirmed(ctx, "0xabc", 123, blockTimestamp)

				Expect(err).NotTo(HaveOccurred())
				Expect(changed).To(BeFalse())
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, fakeErr)
			})

			It("returns the error", func() {
				_, err := repo.MarkConfirmed(ctx, "0xabc", 123, blockTimestamp)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("MarkFailed", func() {
		BeforeEach(func() {
			fakeStorage.UpdateWhereReturns(1, nil)
		})

		It("uses the same compare-and-set guard", func() {
			changed, err := repo.MarkFailed(ctx, "0xabc")

			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())

			_, _, updates, query, args := fakeStorage.UpdateWhereArgsForCall(0)
			Expect(updates).To(HaveKeyWithValue("status", repository.StatusFailed))
			Expect(updates).NotTo(HaveKey("block_number"))
			Expect(query).To(Equal("tx_hash = ? AND status = ?"))
			Expect(args).To(Equal([]any{"0xabc", repository.StatusPending}))
		})
	})

	Describe("IncrementStats", func() {
		BeforeEach(func() {
			fakeStorage.UpdateWhereReturns(1, nil)
		})

		It("targets the singleton row with only the non-zero deltas", func() {
			err := repo.IncrementStats(ctx, repository.StatsDelta{Volume: 2.5, Fees: 0.0025})

			Expect(err).NotTo(HaveOccurred())

			_, model, updates, query, args := fakeStorage.UpdateWhereArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Stats{}))
			Expect(updates).To(HaveKey("total_volume"))
			Expect(updates).To(HaveKey("total_fees"))
			Expect(updates).To(HaveKey("updated_at"))
			Expect(updates).NotTo(HaveKey("total_users"))
			Expect(updates).NotTo(HaveKey("total_transactions"))
			Expect(query).To(Equal("id = ?"))
			Expect(args).To(Equal([]any{"1"}))
		})
	})

	Describe("GetTransactionByID", func() {
		When("the transaction is missing", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns transaction not found", func() {
				_, err := repo.GetTransactionByID(ctx, "tx-1")
				Expect(err).To(MatchError(repository.ErrTransactionNotFound))
			})
		})
	})

	Describe("GetTransactionsByAddress", func() {
		It("matches both transfer directions", func() {
			_, err := repo.GetTransactionsByAddress(ctx, "0xabc")

			Expect(err).NotTo(HaveOccurred())
			_, _, query, args := fakeStorage.FindArgsForCall(0)
			Expect(query).To(Equal("from_address = ? OR to_address = ?"))
			Expect(args).To(Equal([]any{"0xabc", "0xabc"}))
		})
	})

	Describe("GetTransactionsByUser", func() {
		BeforeEach(func() {
			fakeStorage.CountReturns(25, nil)
		})

		It("applies the page window and reports the total", func() {
			_, total, err := repo.GetTransactionsByUser(ctx, "user-1", 10, 20)

			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(int64(25)))

			Expect(fakeStorage.FindPageCallCount()).To(Equal(1))
			_, _, limit, offset, query, args := fakeStorage.FindPageArgsForCall(0)
			Expect(limit).To(Equal(10))
			Expect(offset).To(Equal(20))
			Expect(query).To(Equal("user_id = ?"))
			Expect(args).To(Equal([]any{"user-1"}))

			_, _, countQuery, countArgs := fakeStorage.CountArgsForCall(0)
			Expect(countQuery).To(Equal("user_id = ?"))
			Expect(countArgs).To(Equal([]any{"user-1"}))
		})

		When("the count fails", func() {
			BeforeEach(func() {
				fakeStorage.CountReturns(0, fakeErr)
			})

			It("returns the error", func() {
				_, _, err := repo.GetTransactionsByUser(ctx, "user-1", 10, 0)
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUserByID", func() {
		When("the user is missing", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("returns user not found", func() {
				_, err := repo.GetUserByID(ctx, "user-1")
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("UpdateUser", func() {
		var update repository.UserUpdate

		BeforeEach(func() {
			email := "user@example.com"
			premium := true
			update = repository.UserUpdate{Email: &email, IsPremium: &premium}
			fakeStorage.UpdateWhereReturns(1, nil)
		})

		It("updates only the provided fields and refreshes last login", func() {
			_, err := repo.UpdateUser(ctx, "user-1", update)

			Expect(err).NotTo(HaveOccurred())

			_, model, updates, query, args := fakeStorage.UpdateWhereArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
			Expect(updates).To(HaveKeyWithValue("email", "user@example.com"))
			Expect(updates).To(HaveKeyWithValue("is_premium", true))
			Expect(updates).To(HaveKey("last_login"))
			Expect(updates).NotTo(HaveKey("device_id"))
			Expect(query).To(Equal("id = ?"))
			Expect(args).To(Equal([]any{"user-1"}))
		})

		It("reads the record back after the update", func() {
			_, err := repo.UpdateUser(ctx, "user-1", update)

			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
			_, column, value, _ := fakeStorage.GetOneByArgsForCall(0)
			Expect(column).To(Equal("id"))
			Expect(value).To(Equal("user-1"))
		})

		When("no row matches the id", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("returns user not found", func() {
				_, err := repo.UpdateUser(ctx, "ghost", update)
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("ListUsers", func() {
		It("returns every user", func() {
			fakeStorage.FindStub = func(ctx context.Context, dest any, query string, args ...any) error {
				users := dest.(*[]repository.User)
				*users = []repository.User{{ID: "user-1"}, {ID: "user-2"}}
				return nil
			}

			users, err := repo.ListUsers(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))
		})
	})

	Describe("UserCreationTimes", func() {
		It("extracts the creation timestamps", func() {
			created := time.Now()
			fakeStorage.FindStub = func(ctx context.Context, dest any, query string, args ...any) error {
				users := dest.(*[]repository.User)
				*users = []repository.User{{CreatedAt: created}}
				return nil
			}

			times, err := repo.UserCreationTimes(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(times).To(Equal([]time.Time{created}))
		})
	})
})
