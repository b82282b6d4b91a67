package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

const transferGasLimit = 21000

// ErrTxNotFound distinguishes a transaction the node does not know about from
// an RPC failure.
var ErrTxNotFound error = errors.New("transaction not found on chain")

const defaultPollInterval = 5 * time.Second

// NodeService wraps the Ethereum RPC client with the operations the wallet
// engine consumes: preparing and broadcasting transfers, balance reads and
// one-shot finality watches.
type NodeService struct {
	logs         *zap.SugaredLogger
	client       EthClient
	pollInterval time.Duration

	mu            sync.Mutex
	cachedChainID *big.Int
}

func NewNodeService(logger *zap.SugaredLogger, client EthClient) *NodeService {
	return &NodeService{
		logs:         logger,
		client:       client,
		pollInterval: defaultPollInterval,
	}
}

// PrepareTransfer builds an unsigned dynamic-fee transfer with a fresh nonce
// and current fee caps, and returns it together with the chain ID the caller
// needs for signing.
func (s *NodeService) PrepareTransfer(ctx context.Context, from string, to string, amount float64) (*types.Transaction, *big.Int, error) {
	chainID, err := s.chainID(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("get chain id: %w", err)
	}

	fromAddr := common.HexToAddress(from)
	nonce, err := s.client.PendingNonceAt(ctx, fromAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("pending nonce: %w", err)
	}

	tip, err := s.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("suggest gas tip cap: %w", err)
	}

	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("latest header: %w", err)
	}

	// twice the base fee leaves headroom for the next blocks
	feeCap := new(big.Int).Add(
		new(big.Int).Mul(header.BaseFee, big.NewInt(2)),
		tip,
	)

	toAddr := common.HexToAddress(to)
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       transferGasLimit,
		To:        &toAddr,
		Value:     EthToWei(amount),
	})

	return tx, chainID, nil
}

func (s *NodeService) Broadcast(ctx context.Context, signed *types.Transaction) (string, error) {
	if err := s.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	return signed.Hash().Hex(), nil
}

func (s *NodeService) Balance(ctx context.Context, address string) (float64, error) {
	wei, err := s.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return 0, fmt.Errorf("balance at: %w", err)
	}
	return WeiToEth(wei), nil
}

// WatchOnce polls for the transaction receipt and invokes the callback
// exactly once when the network reports finality. The watch runs until the
// context is cancelled.
func (s *NodeService) WatchOnce(ctx context.Context, txHash string, callback func(Receipt)) {
	go func() {
		hash := common.HexToHash(txHash)
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		for {
			receipt, err := s.client.TransactionReceipt(ctx, hash)
			if err == nil {
				callback(Receipt{
					TxHash:      txHash,
					Success:     receipt.Status == types.ReceiptStatusSuccessful,
					BlockNumber: receipt.BlockNumber.Uint64(),
					ObservedAt:  time.Now(),
				})
				return
			}
			if !errors.Is(err, geth.NotFound) {
				s.logs.Errorw("receipt poll failed", "txHash", txHash, "error", err)
			}

			select {
			case <-ctx.Done():
				s.logs.Infow("receipt watch stopped", "txHash", txHash)
				return
			case <-ticker.C:
			}
		}
	}()
}

func (s *NodeService) BlockNumber(ctx context.Context) (uint64, error) {
	n, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("block number: %w", err)
	}
	return n, nil
}

// Transaction looks a single transaction up by hash.
func (s *NodeService) Transaction(ctx context.Context, txHash string) (TransferEvent, bool, error) {
	tx, pending, err := s.client.TransactionByHash(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, geth.NotFound) {
			return TransferEvent{}, false, ErrTxNotFound
		}
		return TransferEvent{}, false, fmt.Errorf("transaction by hash: %w", err)
	}

	chainID, err := s.chainID(ctx)
	if err != nil {
		return TransferEvent{}, false, fmt.Errorf("get chain id: %w", err)
	}

	event, err := s.toEvent(tx, chainID, 0)
	if err != nil {
		return TransferEvent{}, false, err
	}
	return event, pending, nil
}

// History scans the most recent blocks for transfers touching the address.
func (s *NodeService) History(ctx context.Context, address string, lookback uint64) ([]TransferEvent, error) {
	latest, err := s.client.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("block number: %w", err)
	}

	chainID, err := s.chainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}

	addr := common.HexToAddress(address)
	events := []TransferEvent{}

	for i := uint64(0); i < lookback && i <= latest; i++ {
		block, err := s.client.BlockByNumber(ctx, new(big.Int).SetUint64(latest-i))
		if err != nil {
			return events, fmt.Errorf("block %d: %w", latest-i, err)
		}

		for _, tx := range block.Transactions() {
			event, err := s.toEvent(tx, chainID, block.NumberU64())
			if err != nil {
				s.logs.Errorw("skipping unreadable transaction", "txHash", tx.Hash().Hex(), "error", err)
				continue
			}
			if event.From == addr.Hex() || event.To == addr.Hex() {
				events = append(events, event)
			}
		}
	}

	return events, nil
}

func (s *NodeService) toEvent(tx *types.Transaction, chainID *big.Int, blockNumber uint64) (TransferEvent, error) {
	signer := types.LatestSignerForChainID(chainID)
	from, err := types.Sender(signer, tx)
	if err != nil {
		return TransferEvent{}, fmt.Errorf("recover sender: %w", err)
	}

	var to string
	if tx.To() != nil {
		to = tx.To().Hex()
	}

	return TransferEvent{
		TxHash:      tx.Hash().Hex(),
		From:        from.Hex(),
		To:          to,
		Amount:      WeiToEth(tx.Value()),
		BlockNumber: blockNumber,
	}, nil
}

func (s *NodeService) chainID(ctx context.Context) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cachedChainID != nil {
		return s.cachedChainID, nil
	}

	chainID, err := s.client.NetworkID(ctx)
	if err != nil {
		return nil, err
	}
	s.cachedChainID = chainID
	return chainID, nil
}

// EthToWei converts a major-unit amount to the smallest unit. The conversion
// goes through the amount's shortest decimal representation so round decimal
// inputs map to exact wei values. Amount arithmetic above this boundary stays
// in major units.
func EthToWei(amount float64) *big.Int {
	text := strconv.FormatFloat(amount, 'f', -1, 64)

	whole, frac, _ := strings.Cut(text, ".")
	if len(frac) > 18 {
		frac = frac[:18]
	}
	frac += strings.Repeat("0", 18-len(frac))

	wei, ok := new(big.Int).SetString(whole+frac, 10)
	if !ok {
		return big.NewInt(0)
	}
	return wei
}

func WeiToEth(wei *big.Int) float64 {
	f := new(big.Float).SetInt(wei)
	f.Quo(f, big.NewFloat(1e18))
	eth, _ := f.Float64()
	return eth
}
