package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"biowallet/internal/ethereum"
	"biowallet/internal/ethereum/fake"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("NodeService", func() {
	var (
		service    *ethereum.NodeService
		fakeClient *fake.EthClient
		fakeLogger *zap.SugaredLogger
		ctx        context.Context
		chainID    *big.Int
		testErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()
		chainID = big.NewInt(11155111)
		testErr = errors.New("test error")

		fakeClient.NetworkIDReturns(chainID, nil)

		service = ethereum.NewNodeService(fakeLogger, fakeClient)
	})

	Describe("PrepareTransfer", func() {
		BeforeEach(func() {
			fakeClient.PendingNonceAtReturns(7, nil)
			fakeClient.SuggestGasTipCapReturns(big.NewInt(2_000_000_000), nil)
			fakeClient.HeaderByNumberReturns(&types.Header{
				Number:  big.NewInt(100),
				BaseFee: big.NewInt(10_000_000_000),
			}, nil)
		})

		It("builds a dynamic fee transfer with headroom over the base fee", func() {
			tx, gotChainID, err := service.PrepareTransfer(ctx,
				"0x8617E340B3D01FA5F11F306F4090FD50E238070D",
				"0x52908400098527886E0F7030069857D2E4169EE7",
				1.5)

			Expect(err).NotTo(HaveOccurred())
			Expect(gotChainID).To(Equal(chainID))
			Expect(tx.Type()).To(Equal(uint8(types.DynamicFeeTxType)))
			Expect(tx.Nonce()).To(Equal(uint64(7)))
			Expect(tx.Gas()).To(Equal(uint64(21000)))
			Expect(tx.GasTipCap()).To(Equal(big.NewInt(2_000_000_000)))
			// 2*baseFee + tip
			Expect(tx.GasFeeCap()).To(Equal(big.NewInt(22_000_000_000)))
			Expect(tx.Value()).To(Equal(ethereum.EthToWei(1.5)))
			Expect(tx.To().Hex()).To(Equal("0x52908400098527886E0F7030069857D2E4169EE7"))
		})

		It("caches the chain id across calls", func() {
			_, _, err := service.PrepareTransfer(ctx, "0x8617E340B3D01FA5F11F306F4090FD50E238070D", "0x52908400098527886E0F7030069857D2E4169EE7", 1)
			Expect(err).NotTo(HaveOccurred())
			_, _, err = service.PrepareTransfer(ctx, "0x8617E340B3D01FA5F11F306F4090FD50E238070D", "0x52908400098527886E0F7030069857D2E4169EE7", 1)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeClient.NetworkIDCallCount()).To(Equal(1))
		})

		When("the node rejects the nonce query", func() {
			BeforeEach(func() {
				fakeClient.PendingNonceAtReturns(0, testErr)
			})

			It("returns the error", func() {
				_, _, err := service.PrepareTransfer(ctx, "0x8617E340B3D01FA5F11F306F4090FD50E238070D", "0x52908400098527886E0F7030069857D2E4169EE7", 1)
				Expect(err).To(MatchError(testErr))
			})
		})
	})

	Describe("Broadcast", func() {
		var signed *types.Transaction

		BeforeEach(func() {
			privateKey, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())

			to := common.HexToAddress("0x52908400098527886E0F7030069857D2E4169EE7")
			unsigned := types.NewTx(&types.DynamicFeeTx{
				ChainID:   chainID,
				Nonce:     0,
				GasTipCap: big.NewInt(1),
				GasFeeCap: big.NewInt(2),
				Gas:       21000,
				To:        &to,
				Value:     big.NewInt(1),
			})
			signed, err = types.SignTx(unsigned, types.NewLondonSigner(chainID), privateKey)
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns the transaction hash", func() {
			hash, err := service.Broadcast(ctx, signed)

			Expect(err).NotTo(HaveOccurred())
			Expect(hash).To(Equal(signed.Hash().Hex()))
			Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
		})

		When("the node rejects the transaction", func() {
			BeforeEach(func() {
				fakeClient.SendTransactionReturns(testErr)
			})

			It("returns the error", func() {
				_, err := service.Broadcast(ctx, signed)
				Expect(err).To(MatchError(testErr))
			})
		})
	})

	Describe("Balance", func() {
		It("converts wei to major units", func() {
			fakeClient.BalanceAtReturns(ethereum.EthToWei(1.5), nil)

			balance, err := service.Balance(ctx, "0x8617E340B3D01FA5F11F306F4090FD50E238070D")

			Expect(err).NotTo(HaveOccurred())
			Expect(balance).To(BeNumerically("~", 1.5, 1e-12))
		})
	})

	Describe("WatchOnce", func() {
		var received chan ethereum.Receipt

		BeforeEach(func() {
			received = make(chan ethereum.Receipt, 2)
		})

		When("the receipt reports success", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status:      types.ReceiptStatusSuccessful,
					BlockNumber: big.NewInt(99),
				}, nil)
			})

			It("delivers a successful receipt exactly once", func() {
				service.WatchOnce(ctx, "0xabc", func(r ethereum.Receipt) {
					received <- r
				})

				var receipt ethereum.Receipt
				Eventually(received, time.Second).Should(Receive(&receipt))
				Expect(receipt.TxHash).To(Equal("0xabc"))
				Expect(receipt.Success).To(BeTrue())
				Expect(receipt.BlockNumber).To(Equal(uint64(99)))

				Consistently(received, 100*time.Millisecond).ShouldNot(Receive())
			})
		})

		When("the receipt reports a revert", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{
					Status:      types.ReceiptStatusFailed,
					BlockNumber: big.NewInt(100),
				}, nil)
			})

			It("delivers a failed receipt", func() {
				service.WatchOnce(ctx, "0xabc", func(r ethereum.Receipt) {
					received <- r
				})

				var receipt ethereum.Receipt
				Eventually(received, time.Second).Should(Receive(&receipt))
				Expect(receipt.Success).To(BeFalse())
			})
		})

		When("the transaction never lands and the context is cancelled", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, geth.NotFound)
			})

			It("stops without delivering anything", func() {
				watchCtx, cancel := context.WithCancel(ctx)

				service.WatchOnce(watchCtx, "0xabc", func(r ethereum.Receipt) {
					received <- r
				})
				cancel()

				Consistently(received, 200*time.Millisecond).ShouldNot(Receive())
			})
		})
	})

	Describe("Transaction", func() {
		It("recovers the sender and reports pending state", func() {
			privateKey, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			sender := crypto.PubkeyToAddress(privateKey.PublicKey)

			to := common.HexToAddress("0x52908400098527886E0F7030069857D2E4169EE7")
			unsigned := types.NewTx(&types.DynamicFeeTx{
				ChainID:   chainID,
				Nonce:     3,
				GasTipCap: big.NewInt(1),
				GasFeeCap: big.NewInt(2),
				Gas:       21000,
				To:        &to,
				Value:     ethereum.EthToWei(0.5),
			})
			signed, err := types.SignTx(unsigned, types.NewLondonSigner(chainID), privateKey)
			Expect(err).NotTo(HaveOccurred())

			fakeClient.TransactionByHashReturns(signed, true, nil)

			event, pending, err := service.Transaction(ctx, signed.Hash().Hex())

			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(BeTrue())
			Expect(event.TxHash).To(Equal(signed.Hash().Hex()))
			Expect(event.From).To(Equal(sender.Hex()))
			Expect(event.To).To(Equal(to.Hex()))
			Expect(event.Amount).To(BeNumerically("~", 0.5, 1e-12))
		})

		When("the node does not know the hash", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(nil, false, geth.NotFound)
			})

			It("returns ErrTxNotFound", func() {
				_, _, err := service.Transaction(ctx, "0xdeadbeef")
				Expect(err).To(MatchError(ethereum.ErrTxNotFound))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(nil, false, testErr)
			})

			It("returns the underlying error, not ErrTxNotFound", func() {
				_, _, err := service.Transaction(ctx, "0xdeadbeef")
				Expect(err).To(MatchError(testErr))
				Expect(errors.Is(err, ethereum.ErrTxNotFound)).To(BeFalse())
			})
		})
	})

	Describe("History", func() {
		It("returns transfers touching the address from recent blocks", func() {
			privateKey, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			sender := crypto.PubkeyToAddress(privateKey.PublicKey)

			target := common.HexToAddress("0x52908400098527886E0F7030069857D2E4169EE7")
			other := common.HexToAddress("0x8617E340B3D01FA5F11F306F4090FD50E238070D")

			signer := types.NewLondonSigner(chainID)
			txToTarget, err := types.SignTx(types.NewTx(&types.DynamicFeeTx{
				ChainID: chainID, Nonce: 0, GasTipCap: big.NewInt(1), GasFeeCap: big.NewInt(2),
				Gas: 21000, To: &target, Value: ethereum.EthToWei(1),
			}), signer, privateKey)
			Expect(err).NotTo(HaveOccurred())
			txToOther, err := types.SignTx(types.NewTx(&types.DynamicFeeTx{
				ChainID: chainID, Nonce: 1, GasTipCap: big.NewInt(1), GasFeeCap: big.NewInt(2),
				Gas: 21000, To: &other, Value: ethereum.EthToWei(2),
			}), signer, privateKey)
			Expect(err).NotTo(HaveOccurred())

			block := types.NewBlockWithHeader(&types.Header{Number: big.NewInt(1)}).
				WithBody(types.Body{Transactions: []*types.Transaction{txToTarget, txToOther}})

			fakeClient.BlockNumberReturns(1, nil)
			fakeClient.BlockByNumberReturns(block, nil)

			events, err := service.History(ctx, target.Hex(), 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(events).To(HaveLen(1))
			Expect(events[0].TxHash).To(Equal(txToTarget.Hash().Hex()))
			Expect(events[0].From).To(Equal(sender.Hex()))
			Expect(events[0].BlockNumber).To(Equal(uint64(1)))
		})
	})

	Describe("unit conversion", func() {
		It("round-trips major units through wei", func() {
			Expect(ethereum.EthToWei(1.5).String()).To(Equal("1500000000000000000"))
			Expect(ethereum.WeiToEth(ethereum.EthToWei(2.25))).To(BeNumerically("~", 2.25, 1e-12))
		})

		It("converts amounts without a clean binary representation exactly", func() {
			Expect(ethereum.EthToWei(0.1).String()).To(Equal("100000000000000000"))
			Expect(ethereum.EthToWei(0.000000000000000001).String()).To(Equal("1"))
			Expect(ethereum.EthToWei(123.456).String()).To(Equal("123456000000000000000"))
		})
	})
})
