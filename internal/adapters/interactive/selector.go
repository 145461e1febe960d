package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// SelectorAdapter handles interactive selection and confirmation
type SelectorAdapter struct {
	nonInteractive bool
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{nonInteractive: cfg.NonInteractive || cfg.JSON}
}

// Interactive reports whether prompts can be shown
func (s *SelectorAdapter) Interactive() bool {
	return !s.nonInteractive
}

// Confirm asks a yes/no question. Non-interactive runs are implicitly confirmed.
func (s *SelectorAdapter) Confirm(ctx context.Context, prompt string) (bool, error) {
	if s.nonInteractive {
		return true, nil
	}

	p := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}

	_, err := p.Run()
	switch {
	case err == nil:
		return true, nil
	case err == promptui.ErrAbort:
		return false, nil
	case err == promptui.ErrInterrupt:
		return false, domain.ErrAborted
	default:
		return false, fmt.Errorf("confirmation failed: %w", err)
	}
}

// SelectOption picks one of the options and returns its index
func (s *SelectorAdapter) SelectOption(ctx context.Context, prompt string, options []string) (int, error) {
	if s.nonInteractive {
		return -1, fmt.Errorf("interactive selection not available in non-interactive mode")
	}
	if len(options) == 0 {
		return -1, fmt.Errorf("nothing to select: %w", domain.ErrNotFound)
	}
	if len(options) == 1 {
		return 0, nil
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, / to search, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
			return -1, domain.ErrAborted
		}
		return -1, fmt.Errorf("selection cancelled: %w", err)
	}

	return index, nil
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.Confirmer = (*SelectorAdapter)(nil)
	_ usecase.Selector  = (*SelectorAdapter)(nil)
)
