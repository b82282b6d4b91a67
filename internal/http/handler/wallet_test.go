package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"biowallet/internal/biometric"
	"biowallet/internal/core"
	"biowallet/internal/ethereum"
	"biowallet/internal/http/handler"
	"biowallet/internal/http/handler/fake"
	"biowallet/internal/ledger"
	"biowallet/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("WalletHandler", func() {
	var (
		wh            *handler.WalletHandler
		fakeService   *fake.WalletService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.WalletService)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		wh = handler.NewWalletHandler(fakeLogger, fakeValidator, fakeService)
	})

	attestationJSON := `{"deviceCompatible":true,"biometricEnrolled":true,"biometricTypes":["FACE"],"succeeded":true,"cancelled":false}`

	Describe("HandleRegister", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"deviceId":"device-1","attestation":` + attestationJSON + `}`)
			req = httptest.NewRequest("POST", "/wallet/register", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.RegisterWalletReturns(core.WalletInfo{
				UserID:        "user-1",
				Address:       "0x52908400098527886E0F7030069857D2E4169EE7",
				BiometricType: "FACE",
				Token:         "session.token",
			}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleRegister(w, req)
		})

		When("registration succeeds", func() {
			It("returns 201 with the wallet info", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring("0x52908400098527886E0F7030069857D2E4169EE7"))
				Expect(w.Body.String()).To(ContainSubstring("session.token"))

				Expect(fakeService.RegisterWalletCallCount()).To(Equal(1))
				_, _, deviceID := fakeService.RegisterWalletArgsForCall(0)
				Expect(deviceID).To(Equal("device-1"))
			})
		})

		When("the payload is malformed", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.RegisterWalletCallCount()).To(Equal(0))
			})
		})

		When("the device is already registered", func() {
			BeforeEach(func() {
				fakeService.RegisterWalletReturns(core.WalletInfo{}, biometric.ErrAlreadyRegistered)
			})

			It("returns 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the user cancels the ceremony", func() {
			BeforeEach(func() {
				fakeService.RegisterWalletReturns(core.WalletInfo{}, biometric.ErrUserCancelled)
			})

			It("returns 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.RegisterWalletReturns(core.WalletInfo{}, fakeErr)
			})

			It("returns 500 without leaking the error", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"attestation":` + attestationJSON + `}`)
			req = httptest.NewRequest("POST", "/wallet/login", body)
		})

		JustBeforeEach(func() {
			wh.HandleLogin(w, req)
		})

		When("login succeeds", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.WalletInfo{Token: "session.token"}, nil)
			})

			It("returns 200 with a session", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("session.token"))
			})
		})

		When("no wallet exists for the device", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.WalletInfo{}, core.ErrWalletNotFound)
			})

			It("returns 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleSend", func() {
		sendBody := `{"fromAddress":"0x8617E340B3D01FA5F11F306F4090FD50E238070D","toAddress":"0x52908400098527886E0F7030069857D2E4169EE7","amount":1.5,"attestation":` + attestationJSON + `}`

		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/wallet/send", strings.NewReader(sendBody))
			req.Header.Set("AUTH_TOKEN", "session.token")

			fakeService.SubmitTransferReturns(repository.Transaction{
				TxHash: "0xdeadbeef",
				Status: repository.StatusPending,
			}, nil)
		})

		JustBeforeEach(func() {
			wh.HandleSend(w, req)
		})

		When("the transfer is accepted", func() {
			It("returns the pending record", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("0xdeadbeef"))
				Expect(w.Body.String()).To(ContainSubstring(repository.StatusPending))

				Expect(fakeService.SubmitTransferCallCount()).To(Equal(1))
				_, token, _, transfer := fakeService.SubmitTransferArgsForCall(0)
				Expect(token).To(Equal("session.token"))
				Expect(transfer.Amount).To(Equal(1.5))
				Expect(transfer.ToAddress).To(Equal("0x52908400098527886E0F7030069857D2E4169EE7"))
			})
		})

		When("the auth token header is missing", func() {
			BeforeEach(func() {
				req.Header.Del("AUTH_TOKEN")
			})

			It("returns 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.SubmitTransferCallCount()).To(Equal(0))
			})
		})

		When("the amount is invalid", func() {
			BeforeEach(func() {
				fakeService.SubmitTransferReturns(repository.Transaction{}, core.ErrInvalidAmount)
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the session is invalid", func() {
			BeforeEach(func() {
				fakeService.SubmitTransferReturns(repository.Transaction{}, core.ErrSessionInvalid)
			})

			It("returns 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})

		When("the network rejects the broadcast", func() {
			BeforeEach(func() {
				fakeService.SubmitTransferReturns(repository.Transaction{}, core.ErrBroadcastRejected)
			})

			It("returns 502", func() {
				Expect(w.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})

	Describe("HandleGetBalance", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/wallet/0x52908400098527886E0F7030069857D2E4169EE7/balance", nil)
			req.SetPathValue("address", "0x52908400098527886E0F7030069857D2E4169EE7")
			fakeService.WalletBalanceReturns(1.25, nil)
		})

		It("returns the balance for the address", func() {
			wh.HandleGetBalance(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("1.25"))

			_, address := fakeService.WalletBalanceArgsForCall(0)
			Expect(address).To(Equal("0x52908400098527886E0F7030069857D2E4169EE7"))
		})
	})

	Describe("HandleGetTransaction", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/transactions/tx-1", nil)
			req.SetPathValue("id", "tx-1")
		})

		When("the transaction is missing", func() {
			BeforeEach(func() {
				fakeService.TransactionByIDReturns(repository.Transaction{}, repository.ErrTransactionNotFound)
			})

			It("returns 404", func() {
				wh.HandleGetTransaction(w, req)
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleGetMyTransactions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/wallet/my/transactions", nil)
		})

		When("the auth token header is missing", func() {
			It("returns 401", func() {
				wh.HandleGetMyTransactions(w, req)

				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.UserTransactionsCallCount()).To(Equal(0))
			})
		})

		When("the session is valid", func() {
			BeforeEach(func() {
				req.Header.Set("AUTH_TOKEN", "session.token")
				fakeService.UserTransactionsReturns([]repository.Transaction{{TxHash: "0x1"}}, 21, nil)
			})

			It("returns the first page with the default window and the total", func() {
				wh.HandleGetMyTransactions(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("0x1"))
				Expect(w.Body.String()).To(ContainSubstring(`"total":21`))
				_, token, limit, offset := fakeService.UserTransactionsArgsForCall(0)
				Expect(token).To(Equal("session.token"))
				Expect(limit).To(Equal(10))
				Expect(offset).To(Equal(0))
			})
		})

		When("a page window is requested", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/wallet/my/transactions?limit=5&offset=15", nil)
				req.Header.Set("AUTH_TOKEN", "session.token")
			})

			It("passes the window through", func() {
				wh.HandleGetMyTransactions(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				_, _, limit, offset := fakeService.UserTransactionsArgsForCall(0)
				Expect(limit).To(Equal(5))
				Expect(offset).To(Equal(15))
			})
		})

		When("the limit parameter is not a positive integer", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/wallet/my/transactions?limit=all", nil)
				req.Header.Set("AUTH_TOKEN", "session.token")
			})

			It("returns 400", func() {
				wh.HandleGetMyTransactions(w, req)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UserTransactionsCallCount()).To(Equal(0))
			})
		})

		When("the offset parameter is negative", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/wallet/my/transactions?offset=-1", nil)
				req.Header.Set("AUTH_TOKEN", "session.token")
			})

			It("returns 400", func() {
				wh.HandleGetMyTransactions(w, req)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UserTransactionsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleGetChainTransaction", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/chain/transactions/0xabc", nil)
			req.SetPathValue("txHash", "0xabc")
		})

		When("the node does not know the hash", func() {
			BeforeEach(func() {
				fakeService.ChainTransactionReturns(ethereum.TransferEvent{}, false, ethereum.ErrTxNotFound)
			})

			It("returns 404", func() {
				wh.HandleGetChainTransaction(w, req)
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the node lookup fails", func() {
			BeforeEach(func() {
				fakeService.ChainTransactionReturns(ethereum.TransferEvent{}, false, fakeErr)
			})

			It("returns 500 instead of reporting the transaction missing", func() {
				wh.HandleGetChainTransaction(w, req)
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleGetUser", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/users/user-1", nil)
			req.SetPathValue("id", "user-1")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeService.UserByIDReturns(repository.User{
					ID:            "user-1",
					WalletAddress: "0x52908400098527886E0F7030069857D2E4169EE7",
				}, nil)
			})

			It("returns the user", func() {
				wh.HandleGetUser(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("0x52908400098527886E0F7030069857D2E4169EE7"))
				_, id := fakeService.UserByIDArgsForCall(0)
				Expect(id).To(Equal("user-1"))
			})
		})

		When("the user is missing", func() {
			BeforeEach(func() {
				fakeService.UserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns 404", func() {
				wh.HandleGetUser(w, req)
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleUpdateUser", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"email":"user@example.com","isPremium":true}`)
			req = httptest.NewRequest("PUT", "/users/user-1", body)
			req.SetPathValue("id", "user-1")
		})

		When("the update succeeds", func() {
			BeforeEach(func() {
				fakeService.UpdateUserReturns(repository.User{
					ID:    "user-1",
					Email: "user@example.com",
				}, nil)
			})

			It("returns the updated user", func() {
				wh.HandleUpdateUser(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("user@example.com"))

				_, id, update := fakeService.UpdateUserArgsForCall(0)
				Expect(id).To(Equal("user-1"))
				Expect(*update.Email).To(Equal("user@example.com"))
				Expect(*update.IsPremium).To(BeTrue())
				Expect(update.DeviceID).To(BeNil())
			})
		})

		When("the payload is malformed", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("returns 400", func() {
				wh.HandleUpdateUser(w, req)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UpdateUserCallCount()).To(Equal(0))
			})
		})

		When("the user is missing", func() {
			BeforeEach(func() {
				fakeService.UpdateUserReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns 404", func() {
				wh.HandleUpdateUser(w, req)
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleGetUsers", func() {
		It("lists every user", func() {
			fakeService.UsersReturns([]repository.User{
				{ID: "user-1"}, {ID: "user-2"},
			}, nil)

			req = httptest.NewRequest("GET", "/users", nil)
			wh.HandleGetUsers(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("user-1"))
			Expect(w.Body.String()).To(ContainSubstring("user-2"))
		})
	})

	Describe("HandleGetStats", func() {
		It("returns the aggregate totals", func() {
			fakeService.StatsReturns(ledger.Totals{
				Stats:       repository.Stats{TotalUsers: 10, TotalVolume: 12.5},
				NewUsers24h: 3,
			}, nil)

			req = httptest.NewRequest("GET", "/admin/stats", nil)
			wh.HandleGetStats(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("12.5"))
		})
	})

	Describe("HandleGetDailyStats", func() {
		It("defaults to a seven day window", func() {
			req = httptest.NewRequest("GET", "/admin/stats/daily", nil)
			wh.HandleGetDailyStats(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, days := fakeService.DailyStatsArgsForCall(0)
			Expect(days).To(Equal(7))
		})

		It("rejects a non-numeric days parameter", func() {
			req = httptest.NewRequest("GET", "/admin/stats/daily?days=soon", nil)
			wh.HandleGetDailyStats(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeService.DailyStatsCallCount()).To(Equal(0))
		})
	})

	Describe("HandleGetUserGrowth", func() {
		It("defaults to monthly buckets", func() {
			req = httptest.NewRequest("GET", "/admin/stats/growth", nil)
			wh.HandleGetUserGrowth(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, period := fakeService.UserGrowthArgsForCall(0)
			Expect(period).To(Equal(ledger.PeriodMonth))
		})

		It("rejects unknown periods", func() {
			req = httptest.NewRequest("GET", "/admin/stats/growth?period=hour", nil)
			wh.HandleGetUserGrowth(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeService.UserGrowthCallCount()).To(Equal(0))
		})
	})

	Describe("HandleGetVolumeSeries", func() {
		It("passes the requested period through", func() {
			req = httptest.NewRequest("GET", "/admin/stats/volume?period=week", nil)
			wh.HandleGetVolumeSeries(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, period := fakeService.VolumeSeriesArgsForCall(0)
			Expect(period).To(Equal(ledger.PeriodWeek))
		})
	})
})
