package ethereum

import "time"

// Receipt is the finality notification delivered to a WatchOnce callback.
type Receipt struct {
	TxHash      string
	Success     bool
	BlockNumber uint64
	ObservedAt  time.Time
}

// TransferEvent is an on-chain transaction touching a watched address.
type TransferEvent struct {
	TxHash      string
	From        string
	To          string
	Amount      float64
	BlockNumber uint64
}
