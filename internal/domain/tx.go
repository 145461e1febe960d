package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// TxStatus is where a submitted transaction ended up.
type TxStatus string

const (
	// TxSubmitted means the node accepted the transaction but we didn't wait for it.
	TxSubmitted TxStatus = "submitted"
	// TxConfirmed means a receipt with status 1 was observed.
	TxConfirmed TxStatus = "confirmed"
	// TxRejected means the node refused it or the receipt reports a revert.
	TxRejected TxStatus = "rejected"
	// TxTimedOut means the wait deadline passed before a receipt showed up.
	TxTimedOut TxStatus = "timed-out"
)

// Submission is a transaction the node accepted into its pool.
type Submission struct {
	Hash    common.Hash
	Method  string
	From    common.Address
	Nonce   uint64
	ChainID uint64
	// ContractAddress is set for contract creations.
	ContractAddress *common.Address
}

// TxResult is the outcome of submitting and waiting for a transaction.
type TxResult struct {
	Status          TxStatus
	Hash            common.Hash
	Method          string
	ChainID         uint64
	BlockNumber     uint64
	GasUsed         uint64
	ContractAddress *common.Address
	Logs            []LogEntry
	Err             error
}

// LogEntry is a raw log from a transaction receipt.
type LogEntry struct {
	Address common.Address
	Topics  []common.Hash
	Data    []byte
}

// Event is a receipt log decoded against the contract ABI.
type Event struct {
	Name   string
	Params []NamedValue
}

func (e Event) String() string {
	parts := make([]string, len(e.Params))
	for i, p := range e.Params {
		parts[i] = p.Name + "=" + formatValue(p.Value)
	}
	return e.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Confirmed reports whether the transaction made it into a block successfully.
func (r *TxResult) Confirmed() bool {
	return r != nil && r.Status == TxConfirmed
}

// AsError returns nil for confirmed transactions and a *TxError otherwise.
func (r *TxResult) AsError() error {
	if r.Confirmed() {
		return nil
	}
	return &TxError{Result: r}
}
