package db_test

import (
	"context"
	"database/sql"

	"biowallet/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})

		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Insert", func() {
		When("records are present", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"$`).
					WithArgs("Alice", 1, "Bob", 2).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

				mock.ExpectCommit()
			})

			It("should save records without errors", func() {
				err := testDB.Insert(context.Background(), &[]Test{
					{ID: 1, Username: "Alice"},
					{ID: 2, Username: "Bob"},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the slice is empty", func() {
			It("issues no statement at all", func() {
				err := testDB.Insert(context.Background(), &[]Test{})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
						AddRow(1, "Alice"))
			})

			It("should return the correct record", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.ID).To(Equal(uint(1)))
				Expect(result.Username).To(Equal("Alice"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY "tests"\."id" LIMIT \$2.*`).
					WithArgs("Ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return ErrNotFound", func() {
				var result Test
				err := testDB.GetOneBy(context.Background(), "username", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("UpdateWhere", func() {
		When("a row matches the query", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectExec(`^UPDATE "tests" SET .*WHERE username = \$[0-9]+$`).
					WillReturnResult(sqlmock.NewResult(0, 1))

				mock.ExpectCommit()
			})

			It("reports one row affected", func() {
				rows, err := testDB.UpdateWhere(context.Background(), &Test{},
					map[string]any{"username": "Updated"}, "username = ?", "Alice")

				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(1)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches the query", func() {
			BeforeEach(func() {
				mock.ExpectBegin()

				mock.ExpectExec(`^UPDATE "tests" SET .*WHERE username = \$[0-9]+$`).
					WillReturnResult(sqlmock.NewResult(0, 0))

				mock.ExpectCommit()
			})

			It("reports zero rows affected without error", func() {
				rows, err := testDB.UpdateWhere(context.Background(), &Test{},
					map[string]any{"username": "Updated"}, "username = ?", "Ghost")

				Expect(err).NotTo(HaveOccurred())
				Expect(rows).To(Equal(int64(0)))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("FindPage", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT \* FROM "tests" WHERE username = \$1 ORDER BY created_at DESC LIMIT \$2 OFFSET \$3`).
				WithArgs("Alice", 10, 20).
				WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
					AddRow(1, "Alice").
					AddRow(2, "Alice"))
		})

		It("applies the window newest first", func() {
			var results []Test
			err := testDB.FindPage(context.Background(), &results, 10, 20, "username = ?", "Alice")

			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(HaveLen(2))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Count", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`SELECT count\(\*\) FROM "tests".*`).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		})

		It("counts matching rows", func() {
			count, err := testDB.Count(context.Background(), &Test{}, "username = ?", "Alice")

			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(3)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})
})
