package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidSandwichID is returned when a sandwich id is not a 32-byte hex value
	ErrInvalidSandwichID = errors.New("invalid sandwich id")

	// ErrMissingCredential is returned when no signing key is configured for the network
	ErrMissingCredential = errors.New("missing signing credential")

	// ErrInvalidCredential is returned when the configured signing key can't be parsed
	ErrInvalidCredential = errors.New("invalid signing credential")

	// ErrChainIDMismatch is returned when the RPC endpoint serves a different chain than configured
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrUnsupportedVersion is returned for contract ABI versions we don't know how to call
	ErrUnsupportedVersion = errors.New("unsupported contract version")

	// ErrTxRejected is returned when a transaction reverted or was refused by the node
	ErrTxRejected = errors.New("transaction rejected")

	// ErrTxTimedOut is returned when a transaction was broadcast but not confirmed in time
	ErrTxTimedOut = errors.New("transaction not confirmed in time")

	// ErrAborted is returned when the user declines a confirmation prompt
	ErrAborted = errors.New("aborted by user")
)

// RevertError carries the reason a contract call or transaction reverted.
type RevertError struct {
	Method string
	Reason string
	Err    error
}

func (e *RevertError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s reverted", e.Method)
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	if e.Err != nil && e.Reason == "" {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *RevertError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTxRejected}
	}
	return []error{ErrTxRejected, e.Err}
}

// TxError reports a transaction that didn't reach confirmation.
type TxError struct {
	Result *TxResult
}

func (e *TxError) Error() string {
	r := e.Result
	switch r.Status {
	case TxTimedOut:
		return fmt.Sprintf("transaction %s submitted but not confirmed before deadline", r.Hash.Hex())
	case TxRejected:
		if r.Err != nil {
			return fmt.Sprintf("transaction %s rejected: %v", r.Hash.Hex(), r.Err)
		}
		return fmt.Sprintf("transaction %s rejected (status 0 in block %d)", r.Hash.Hex(), r.BlockNumber)
	default:
		return fmt.Sprintf("transaction %s is %s", r.Hash.Hex(), r.Status)
	}
}

func (e *TxError) Unwrap() error {
	switch e.Result.Status {
	case TxTimedOut:
		return ErrTxTimedOut
	case TxRejected:
		return ErrTxRejected
	default:
		return e.Result.Err
	}
}
