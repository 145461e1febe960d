package render

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
)

var (
	labelStyle   = color.New(color.Faint)
	addressStyle = color.New(color.FgWhite)
	hashStyle    = color.New(color.FgCyan)
	keyStyle     = color.New(color.FgYellow)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats the final error line of a failed command
func FormatError(message string) string {
	return color.New(color.FgRed).Sprintf("Error: %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatIDs prints sandwich ids the way a bytes32[] result prints
func FormatIDs(ids []domain.SandwichID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.Hex()
	}
	return strings.Join(parts, ",")
}

// FormatAddresses prints a list of addresses comma separated
func FormatAddresses(addrs []common.Address) string {
	parts := make([]string, len(addrs))
	for i, a := range addrs {
		parts[i] = a.Hex()
	}
	return strings.Join(parts, ",")
}

// explorerLink builds an explorer URL for an address or transaction
func explorerLink(base, kind, value string) string {
	if base == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(base, "/"), kind, value)
}

// txLines prints the receipt details under a result line
func txLines(tx *domain.TxResult) []string {
	if tx == nil {
		return nil
	}
	lines := []string{
		fmt.Sprintf("  %s %s", labelStyle.Sprint("Tx:"), hashStyle.Sprint(tx.Hash.Hex())),
	}
	if tx.BlockNumber != 0 {
		lines = append(lines, fmt.Sprintf("  %s %d", labelStyle.Sprint("Block:"), tx.BlockNumber))
	}
	if tx.GasUsed != 0 {
		lines = append(lines, fmt.Sprintf("  %s %d", labelStyle.Sprint("Gas used:"), tx.GasUsed))
	}
	return lines
}
