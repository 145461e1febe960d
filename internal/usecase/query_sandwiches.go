package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
)

// QueryParticipatedParams contains parameters for getParticipatedSandwiches
type QueryParticipatedParams struct {
	Contract ResolveContractParams
	// Participant defaults to the signer's address
	Participant string
}

// QueryParticipatedResult holds the ids returned by the contract
type QueryParticipatedResult struct {
	Contract    domain.ContractRef
	Participant common.Address
	Sandwiches  []domain.SandwichID
}

// QueryParticipated is a read-only call, nothing is submitted
type QueryParticipated struct {
	resolver  *ResolveContract
	signers   SignerProvider
	contracts SandwichContracts
	sink      ProgressSink
}

// NewQueryParticipated creates a new QueryParticipated use case
func NewQueryParticipated(resolver *ResolveContract, signers SignerProvider, contracts SandwichContracts, sink ProgressSink) *QueryParticipated {
	return &QueryParticipated{
		resolver:  resolver,
		signers:   signers,
		contracts: contracts,
		sink:      sink,
	}
}

// Run executes the use case
func (uc *QueryParticipated) Run(ctx context.Context, params QueryParticipatedParams) (*QueryParticipatedResult, error) {
	ref, err := uc.resolver.Run(ctx, params.Contract)
	if err != nil {
		return nil, err
	}

	var participant common.Address
	if params.Participant != "" {
		if participant, err = domain.ParseAddress(params.Participant); err != nil {
			return nil, err
		}
	} else {
		signer, err := uc.signers.Signer(ctx)
		if err != nil {
			return nil, fmt.Errorf("no participant given and no signer available: %w", err)
		}
		participant = signer.Address()
	}

	contract, err := uc.contracts.At(ctx, ref)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageQuerying, Message: "Querying participated sandwiches", Spinner: true})
	ids, err := contract.GetParticipatedSandwiches(ctx, participant)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, fmt.Errorf("getParticipatedSandwiches failed: %w", err)
	}

	return &QueryParticipatedResult{
		Contract:    ref,
		Participant: participant,
		Sandwiches:  ids,
	}, nil
}

// QueryDetailsParams contains parameters for getSandwichDetails
type QueryDetailsParams struct {
	Contract ResolveContractParams
	ID       string
	Seed     string
}

// QueryDetailsResult holds the raw record returned by the contract
type QueryDetailsResult struct {
	Contract domain.ContractRef
	ID       domain.SandwichID
	Record   *domain.SandwichRecord
}

// QueryDetails is a read-only call, nothing is submitted
type QueryDetails struct {
	resolver  *ResolveContract
	signers   SignerProvider
	contracts SandwichContracts
	selector  Selector
	sink      ProgressSink
}

// NewQueryDetails creates a new QueryDetails use case
func NewQueryDetails(resolver *ResolveContract, signers SignerProvider, contracts SandwichContracts, selector Selector, sink ProgressSink) *QueryDetails {
	return &QueryDetails{
		resolver:  resolver,
		signers:   signers,
		contracts: contracts,
		selector:  selector,
		sink:      sink,
	}
}

// Run executes the use case. Without an id, interactive runs offer the
// signer's participated sandwiches to pick from.
func (uc *QueryDetails) Run(ctx context.Context, params QueryDetailsParams) (*QueryDetailsResult, error) {
	var (
		id    domain.SandwichID
		picky bool
	)
	switch {
	case params.ID != "" && params.Seed != "":
		return nil, fmt.Errorf("pass either an id or --seed, not both")
	case params.ID != "":
		var err error
		if id, err = domain.ParseSandwichID(params.ID); err != nil {
			return nil, err
		}
	case params.Seed != "":
		id = domain.IDFromSeed(params.Seed)
	case uc.selector != nil && uc.selector.Interactive():
		picky = true
	default:
		return nil, fmt.Errorf("a sandwich id is required")
	}

	ref, err := uc.resolver.Run(ctx, params.Contract)
	if err != nil {
		return nil, err
	}

	contract, err := uc.contracts.At(ctx, ref)
	if err != nil {
		return nil, err
	}

	if picky {
		if id, err = uc.pick(ctx, contract); err != nil {
			return nil, err
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageQuerying, Message: "Querying sandwich " + id.Hex(), Spinner: true})
	record, err := contract.GetSandwichDetails(ctx, id)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return nil, fmt.Errorf("getSandwichDetails failed: %w", err)
	}

	return &QueryDetailsResult{
		Contract: ref,
		ID:       id,
		Record:   record,
	}, nil
}

func (uc *QueryDetails) pick(ctx context.Context, contract SandwichContract) (domain.SandwichID, error) {
	signer, err := uc.signers.Signer(ctx)
	if err != nil {
		return domain.SandwichID{}, fmt.Errorf("a sandwich id is required: %w", err)
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageQuerying, Message: "Querying participated sandwiches", Spinner: true})
	ids, err := contract.GetParticipatedSandwiches(ctx, signer.Address())
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
	if err != nil {
		return domain.SandwichID{}, fmt.Errorf("getParticipatedSandwiches failed: %w", err)
	}
	if len(ids) == 0 {
		return domain.SandwichID{}, fmt.Errorf("a sandwich id is required, %s has not participated in any sandwich", signer.Address().Hex())
	}

	options := make([]string, len(ids))
	for i, id := range ids {
		options[i] = id.Hex()
	}
	index, err := uc.selector.SelectOption(ctx, "Select a sandwich", options)
	if err != nil {
		return domain.SandwichID{}, err
	}
	return ids[index], nil
}
