package core_test

import (
	"context"
	"errors"
	"math"
	"math/big"
	"time"

	"biowallet/internal/biometric"
	"biowallet/internal/core"
	"biowallet/internal/core/fake"
	"biowallet/internal/keyderiv"
	"biowallet/internal/repository"
	tokenIssuer "biowallet/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Engine", func() {
	var (
		fakeGate    *fake.Gate
		fakeDeriver *fake.Deriver
		fakeSecrets *fake.SecretStore
		fakeRepo    *fake.Repository
		fakeNode    *fake.NodeService
		fakeTracker *fake.Tracker
		fakeLedger  *fake.Ledger
		fakeJWT     *fake.JWTIssuer
		fakeLogger  *zap.SugaredLogger
		ctx         context.Context

		engine *core.Engine

		deviceSecret string
		keypair      *keyderiv.Keypair
		proof        *biometric.Proof
		genToken     *jwt.Token

		fakeErr error
	)

	newProof := func() *biometric.Proof {
		return &biometric.Proof{
			Kind:      biometric.CeremonyLogin,
			Biometric: biometric.KindFace,
			IssuedAt:  time.Now(),
			SecretRef: biometric.DeviceSecretKey,
		}
	}

	BeforeEach(func() {
		fakeGate = new(fake.Gate)
		fakeDeriver = new(fake.Deriver)
		fakeSecrets = new(fake.SecretStore)
		fakeRepo = new(fake.Repository)
		fakeNode = new(fake.NodeService)
		fakeTracker = new(fake.Tracker)
		fakeLedger = new(fake.Ledger)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		engine = core.NewEngine(
			fakeLogger,
			fakeGate,
			fakeDeriver,
			fakeSecrets,
			fakeRepo,
			fakeNode,
			fakeTracker,
			fakeLedger,
			fakeJWT,
			"sepolia")

		deviceSecret = "device-secret-uuid"
		fakeSecrets.GetReturns(deviceSecret, true, nil)

		// a real keypair so the signing path exercises an actual key
		var err error
		keypair, err = keyderiv.NewDeriver().Derive(newProof(), deviceSecret)
		Expect(err).NotTo(HaveOccurred())

		proof = newProof()
		fakeGate.BeginCeremonyReturns(proof, nil)
		fakeDeriver.DeriveReturns(keypair, nil)

		genToken = jwt.New(jwt.SigningMethodHS512)
		fakeJWT.GenerateReturns(genToken)
		fakeJWT.SignReturns("signed.session.token", nil)

		fakeErr = errors.New("fake error")
	})

	Describe("RegisterWallet", func() {
		var (
			info core.WalletInfo
			err  error
		)

		JustBeforeEach(func() {
			info, err = engine.RegisterWallet(ctx, nil, "device-1")
		})

		When("the ceremony succeeds", func() {
			BeforeEach(func() {
				proof.Kind = biometric.CeremonyRegister
			})

			It("creates the user and returns a session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(info.Address).To(Equal(keypair.Address))
				Expect(info.Token).To(Equal("signed.session.token"))
				Expect(info.UserID).NotTo(BeEmpty())

				Expect(fakeGate.BeginCeremonyCallCount()).To(Equal(1))
				_, kind, _ := fakeGate.BeginCeremonyArgsForCall(0)
				Expect(kind).To(Equal(biometric.CeremonyRegister))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.WalletAddress).To(Equal(keypair.Address))
				Expect(user.DeviceID).To(Equal("device-1"))
				Expect(user.BiometricType).To(Equal(string(biometric.KindFace)))

				Expect(fakeLedger.ApplyUserCreatedCallCount()).To(Equal(1))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenIssuer.TokenInfo{
					WalletAddress: keypair.Address,
					Subject:       user.ID,
					Expiration:    24,
				}))
			})
		})

		When("the ceremony fails", func() {
			BeforeEach(func() {
				fakeGate.BeginCeremonyReturns(nil, biometric.ErrAlreadyRegistered)
			})

			It("returns the gate error without touching the repository", func() {
				Expect(err).To(MatchError(biometric.ErrAlreadyRegistered))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the user already exists", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrUserExists)
			})

			It("returns the repository error", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("counting the new user fails", func() {
			BeforeEach(func() {
				fakeLedger.ApplyUserCreatedReturns(fakeErr)
			})

			It("still registers the wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(info.Token).To(Equal("signed.session.token"))
			})
		})
	})

	Describe("Login", func() {
		var (
			info core.WalletInfo
			err  error
		)

		JustBeforeEach(func() {
			info, err = engine.Login(ctx, nil)
		})

		When("the derived wallet is registered", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByAddressReturns(repository.User{
					ID:            "user-1",
					WalletAddress: keypair.Address,
					BiometricType: "FACE",
				}, nil)
			})

			It("re-derives the same wallet and returns a session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(info.UserID).To(Equal("user-1"))
				Expect(info.Address).To(Equal(keypair.Address))
				Expect(info.Token).To(Equal("signed.session.token"))

				_, address := fakeRepo.GetUserByAddressArgsForCall(0)
				Expect(address).To(Equal(keypair.Address))
			})
		})

		When("no wallet is registered for the derived address", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByAddressReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns wallet not found", func() {
				Expect(err).To(MatchError(core.ErrWalletNotFound))
			})
		})
	})

	Describe("SubmitTransfer", func() {
		var (
			req    core.TransferRequest
			record repository.Transaction
			err    error

			unsigned *types.Transaction
			chainID  *big.Int
		)

		BeforeEach(func() {
			chainID = big.NewInt(11155111)
			to := common.HexToAddress("0x52908400098527886E0F7030069857D2E4169EE7")
			unsigned = types.NewTx(&types.DynamicFeeTx{
				ChainID:   chainID,
				Nonce:     0,
				GasTipCap: big.NewInt(1_000_000_000),
				GasFeeCap: big.NewInt(30_000_000_000),
				Gas:       21000,
				To:        &to,
				Value:     big.NewInt(1_000_000_000_000_000_000),
			})

			req = core.TransferRequest{
				FromAddress: keypair.Address,
				ToAddress:   "0x52908400098527886E0F7030069857D2E4169EE7",
				Amount:      10.0,
			}

			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user-1"}, nil)
			fakeNode.PrepareTransferReturns(unsigned, chainID, nil)
			fakeNode.BroadcastReturns("0xdeadbeef", nil)
		})

		JustBeforeEach(func() {
			record, err = engine.SubmitTransfer(ctx, "session.token", nil, req)
		})

		When("the transfer is valid", func() {
			It("signs, broadcasts and records a pending transaction", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(record.TxHash).To(Equal("0xdeadbeef"))
				Expect(record.Status).To(Equal(repository.StatusPending))
				Expect(record.Type).To(Equal(repository.TypeSend))
				Expect(record.Amount).To(Equal(10.0))
				Expect(record.Fee).To(Equal(10.0 * core.FeeRate))
				Expect(record.FromAddress).To(Equal(keypair.Address))
				Expect(record.UserID).To(Equal("user-1"))
				Expect(record.Network).To(Equal("sepolia"))

				Expect(fakeNode.PrepareTransferCallCount()).To(Equal(1))
				_, from, to, amount := fakeNode.PrepareTransferArgsForCall(0)
				Expect(from).To(Equal(keypair.Address))
				Expect(to).To(Equal(req.ToAddress))
				Expect(amount).To(Equal(10.0))

				Expect(fakeNode.BroadcastCallCount()).To(Equal(1))
				_, signed := fakeNode.BroadcastArgsForCall(0)
				sender, senderErr := types.Sender(types.NewLondonSigner(chainID), signed)
				Expect(senderErr).NotTo(HaveOccurred())
				Expect(sender.Hex()).To(Equal(keypair.Address))

				Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(1))
				Expect(fakeLedger.ApplyTransactionSubmittedCallCount()).To(Equal(1))

				Expect(fakeTracker.TrackCallCount()).To(Equal(1))
				tracked := fakeTracker.TrackArgsForCall(0)
				Expect(tracked).To(Equal(record))
			})
		})

		When("the amount is not positive", func() {
			BeforeEach(func() {
				req.Amount = 0
			})

			It("rejects the transfer before any ceremony or broadcast", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
				Expect(fakeGate.BeginCeremonyCallCount()).To(Equal(0))
				Expect(fakeNode.PrepareTransferCallCount()).To(Equal(0))
			})
		})

		When("the amount is NaN", func() {
			BeforeEach(func() {
				req.Amount = math.NaN()
			})

			It("rejects the transfer", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
			})
		})

		When("the destination address is malformed", func() {
			BeforeEach(func() {
				req.ToAddress = "not-an-address"
			})

			It("rejects the transfer", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
				Expect(fakeNode.PrepareTransferCallCount()).To(Equal(0))
			})
		})

		When("the session token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("rejects the transfer without a ceremony", func() {
				Expect(err).To(MatchError(core.ErrSessionInvalid))
				Expect(fakeGate.BeginCeremonyCallCount()).To(Equal(0))
			})
		})

		When("the from address is not the derived wallet", func() {
			BeforeEach(func() {
				req.FromAddress = "0x8617E340B3D01FA5F11F306F4090FD50E238070D"
			})

			It("rejects the transfer before preparing it", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
				Expect(fakeNode.PrepareTransferCallCount()).To(Equal(0))
			})
		})

		When("the broadcast is rejected by the network", func() {
			BeforeEach(func() {
				fakeNode.BroadcastReturns("", fakeErr)
			})

			It("returns broadcast rejected and records nothing", func() {
				Expect(err).To(MatchError(core.ErrBroadcastRejected))
				Expect(fakeRepo.SaveTransactionCallCount()).To(Equal(0))
				Expect(fakeTracker.TrackCallCount()).To(Equal(0))
				Expect(fakeLedger.ApplyTransactionSubmittedCallCount()).To(Equal(0))
			})
		})

		When("counting the submission fails", func() {
			BeforeEach(func() {
				fakeLedger.ApplyTransactionSubmittedReturns(fakeErr)
			})

			It("still submits and tracks the transfer", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeTracker.TrackCallCount()).To(Equal(1))
			})
		})
	})

	Describe("WalletBalance", func() {
		It("rejects malformed addresses", func() {
			_, err := engine.WalletBalance(ctx, "bogus")
			Expect(err).To(MatchError(core.ErrInvalidAddress))
			Expect(fakeNode.BalanceCallCount()).To(Equal(0))
		})

		It("returns the node balance", func() {
			fakeNode.BalanceReturns(1.25, nil)

			balance, err := engine.WalletBalance(ctx, keypair.Address)

			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(Equal(1.25))
		})
	})

	Describe("WalletTransactions", func() {
		It("requires the wallet to exist", func() {
			fakeRepo.GetUserByAddressReturns(repository.User{}, repository.ErrUserNotFound)

			_, err := engine.WalletTransactions(ctx, keypair.Address)
			Expect(err).To(MatchError(core.ErrWalletNotFound))
		})

		It("returns the stored transactions", func() {
			fakeRepo.GetUserByAddressReturns(repository.User{ID: "user-1"}, nil)
			fakeRepo.GetTransactionsByAddressReturns([]repository.Transaction{
				{TxHash: "0x1"}, {TxHash: "0x2"},
			}, nil)

			transactions, err := engine.WalletTransactions(ctx, keypair.Address)

			Expect(err).NotTo(HaveOccurred())
			Expect(transactions).To(HaveLen(2))
			_, address := fakeRepo.GetTransactionsByAddressArgsForCall(0)
			Expect(address).To(Equal(keypair.Address))
		})
	})

	Describe("UserTransactions", func() {
		It("rejects invalid sessions", func() {
			fakeJWT.ValidateReturns(nil, fakeErr)

			_, _, err := engine.UserTransactions(ctx, "bad.token", 10, 0)
			Expect(err).To(MatchError(core.ErrSessionInvalid))
		})

		It("lists one page for the session subject with the total", func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user-1"}, nil)
			fakeRepo.GetTransactionsByUserReturns([]repository.Transaction{{TxHash: "0x1"}}, 12, nil)

			transactions, total, err := engine.UserTransactions(ctx, "session.token", 5, 10)

			Expect(err).NotTo(HaveOccurred())
			Expect(transactions).To(HaveLen(1))
			Expect(total).To(Equal(int64(12)))
			_, userID, limit, offset := fakeRepo.GetTransactionsByUserArgsForCall(0)
			Expect(userID).To(Equal("user-1"))
			Expect(limit).To(Equal(5))
			Expect(offset).To(Equal(10))
		})
	})

	Describe("UserByID", func() {
		It("returns the stored user", func() {
			fakeRepo.GetUserByIDReturns(repository.User{ID: "user-1"}, nil)

			user, err := engine.UserByID(ctx, "user-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal("user-1"))
		})

		It("propagates user not found", func() {
			fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)

			_, err := engine.UserByID(ctx, "ghost")
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})
	})

	Describe("UpdateUser", func() {
		It("passes the field updates through", func() {
			email := "user@example.com"
			fakeRepo.UpdateUserReturns(repository.User{ID: "user-1", Email: email}, nil)

			user, err := engine.UpdateUser(ctx, "user-1", repository.UserUpdate{Email: &email})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email).To(Equal(email))
			_, id, update := fakeRepo.UpdateUserArgsForCall(0)
			Expect(id).To(Equal("user-1"))
			Expect(*update.Email).To(Equal(email))
		})

		It("propagates user not found", func() {
			fakeRepo.UpdateUserReturns(repository.User{}, repository.ErrUserNotFound)

			_, err := engine.UpdateUser(ctx, "ghost", repository.UserUpdate{})
			Expect(err).To(MatchError(repository.ErrUserNotFound))
		})
	})

	Describe("Users", func() {
		It("lists every user", func() {
			fakeRepo.ListUsersReturns([]repository.User{{ID: "a"}, {ID: "b"}}, nil)

			users, err := engine.Users(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(2))
		})
	})

	Describe("OnChainHistory", func() {
		It("rejects malformed addresses", func() {
			_, err := engine.OnChainHistory(ctx, "bogus")
			Expect(err).To(MatchError(core.ErrInvalidAddress))
		})

		It("scans the recent blocks for the address", func() {
			_, err := engine.OnChainHistory(ctx, keypair.Address)

			Expect(err).NotTo(HaveOccurred())
			Expect(fakeNode.HistoryCallCount()).To(Equal(1))
			_, address, lookback := fakeNode.HistoryArgsForCall(0)
			Expect(address).To(Equal(keypair.Address))
			Expect(lookback).To(Equal(uint64(10)))
		})
	})
})
