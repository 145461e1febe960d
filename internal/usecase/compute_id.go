package usecase

import (
	"context"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
)

// ComputeIDResult pairs a seed with its sandwich id
type ComputeIDResult struct {
	Seed string
	ID   domain.SandwichID
}

// ComputeID derives sandwich ids offline
type ComputeID struct{}

// NewComputeID creates a new ComputeID use case
func NewComputeID() *ComputeID {
	return &ComputeID{}
}

// Run executes the use case
func (uc *ComputeID) Run(ctx context.Context, seeds []string) []ComputeIDResult {
	results := make([]ComputeIDResult, len(seeds))
	for i, seed := range seeds {
		results[i] = ComputeIDResult{Seed: seed, ID: domain.IDFromSeed(seed)}
	}
	return results
}
