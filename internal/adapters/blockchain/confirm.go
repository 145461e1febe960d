package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// ReceiptWaiter polls the node for a receipt until it shows up or the wait times out
type ReceiptWaiter struct {
	dialer   *Dialer
	timeout  time.Duration
	interval time.Duration
	log      *slog.Logger
}

// NewReceiptWaiter creates a waiter using the configured confirm timeout and poll interval
func NewReceiptWaiter(dialer *Dialer, cfg *config.RuntimeConfig, log *slog.Logger) *ReceiptWaiter {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &ReceiptWaiter{
		dialer:   dialer,
		timeout:  cfg.ConfirmTimeout,
		interval: interval,
		log:      log.With("component", "ReceiptWaiter"),
	}
}

// WaitForConfirmation never returns nil; failures are reported in the result
func (w *ReceiptWaiter) WaitForConfirmation(ctx context.Context, sub *domain.Submission) *domain.TxResult {
	result := &domain.TxResult{
		Status:          domain.TxSubmitted,
		Hash:            sub.Hash,
		Method:          sub.Method,
		ChainID:         sub.ChainID,
		ContractAddress: sub.ContractAddress,
	}

	backend, _, err := w.dialer.Backend(ctx)
	if err != nil {
		result.Err = err
		return result
	}

	waitCtx := ctx
	if w.timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	receipt, err := w.poll(waitCtx, backend, sub)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			result.Status = domain.TxTimedOut
			result.Err = fmt.Errorf("no receipt for %s after %s", sub.Hash.Hex(), w.timeout)
		default:
			result.Err = err
		}
		return result
	}

	if receipt.BlockNumber != nil {
		result.BlockNumber = receipt.BlockNumber.Uint64()
	}
	result.GasUsed = receipt.GasUsed
	for _, l := range receipt.Logs {
		result.Logs = append(result.Logs, domain.LogEntry{Address: l.Address, Topics: l.Topics, Data: l.Data})
	}
	if sub.ContractAddress != nil && receipt.ContractAddress != (common.Address{}) {
		addr := receipt.ContractAddress
		result.ContractAddress = &addr
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		result.Status = domain.TxRejected
		result.Err = fmt.Errorf("%s reverted in block %d", sub.Method, result.BlockNumber)
		return result
	}

	result.Status = domain.TxConfirmed
	return result
}

func (w *ReceiptWaiter) poll(ctx context.Context, backend Backend, sub *domain.Submission) (*types.Receipt, error) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log := w.log.With("hash", sub.Hash.Hex())
	for {
		receipt, err := backend.TransactionReceipt(ctx, sub.Hash)
		if err == nil {
			return receipt, nil
		}

		if errors.Is(err, ethereum.NotFound) {
			log.Debug("transaction not yet mined")
		} else if ctx.Err() == nil {
			log.Debug("receipt retrieval failed", "error", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

var _ usecase.TxConfirmer = (*ReceiptWaiter)(nil)
