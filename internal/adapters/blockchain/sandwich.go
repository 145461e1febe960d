package blockchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/models"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// SandwichContractsAdapter binds and deploys EarthSandwichNFT through go-ethereum
type SandwichContractsAdapter struct {
	dialer    *Dialer
	artifacts usecase.ArtifactRepository
	log       *slog.Logger
}

// NewSandwichContractsAdapter creates a new contracts adapter
func NewSandwichContractsAdapter(dialer *Dialer, artifacts usecase.ArtifactRepository, log *slog.Logger) *SandwichContractsAdapter {
	return &SandwichContractsAdapter{
		dialer:    dialer,
		artifacts: artifacts,
		log:       log.With("component", "SandwichContracts"),
	}
}

// At binds a handle to a deployed instance, checking there is code at the address
func (a *SandwichContractsAdapter) At(ctx context.Context, ref domain.ContractRef) (usecase.SandwichContract, error) {
	backend, chainID, err := a.dialer.Backend(ctx)
	if err != nil {
		return nil, err
	}

	code, err := backend.CodeAt(ctx, ref.Address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check code at %s: %w", ref.Address.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("no contract code at %s on chain %s: %w", ref.Address.Hex(), chainID, domain.ErrNotFound)
	}

	parsed, err := a.abiFor(ctx, ref)
	if err != nil {
		return nil, err
	}

	return &sandwichContract{
		ref:     ref,
		abi:     parsed,
		bound:   bind.NewBoundContract(ref.Address, *parsed, backend, backend, backend),
		chainID: chainID,
	}, nil
}

// Deploy sends the creation transaction with initialOwner as the only constructor argument
func (a *SandwichContractsAdapter) Deploy(ctx context.Context, signer usecase.Signer, artifact *models.Artifact, owner common.Address) (*domain.Submission, error) {
	tx, ok := signer.(transactor)
	if !ok {
		return nil, fmt.Errorf("signer %T can't sign transactions", signer)
	}

	bytecode, err := artifact.CreationCode()
	if err != nil {
		return nil, err
	}

	parsed, err := a.deployABI(artifact)
	if err != nil {
		return nil, err
	}

	backend, chainID, err := a.dialer.Backend(ctx)
	if err != nil {
		return nil, err
	}

	opts, err := tx.TransactOpts(ctx, chainID)
	if err != nil {
		return nil, err
	}

	a.log.Debug("deploying", "artifact", artifact.ContractName, "owner", owner.Hex(), "chainId", chainID)
	address, deployTx, _, err := bind.DeployContract(opts, *parsed, bytecode, backend, owner)
	if err != nil {
		return nil, wrapRevert("constructor", err)
	}

	return &domain.Submission{
		Hash:            deployTx.Hash(),
		Method:          "constructor",
		From:            opts.From,
		Nonce:           deployTx.Nonce(),
		ChainID:         chainID.Uint64(),
		ContractAddress: &address,
	}, nil
}

// deployABI prefers the artifact's own ABI so its constructor is used verbatim
func (a *SandwichContractsAdapter) deployABI(artifact *models.Artifact) (*abi.ABI, error) {
	if artifact.HasABI() {
		parsed, err := ArtifactABI(artifact)
		if err != nil {
			return nil, err
		}
		if len(parsed.Constructor.Inputs) != 1 {
			return nil, fmt.Errorf("%s constructor takes %d arguments, expected a single initialOwner address", artifact.ContractName, len(parsed.Constructor.Inputs))
		}
		return parsed, nil
	}
	return EmbeddedABI(domain.ContractV1)
}

// abiFor picks the on-disk artifact ABI when it matches the reference's version
func (a *SandwichContractsAdapter) abiFor(ctx context.Context, ref domain.ContractRef) (*abi.ABI, error) {
	if a.artifacts != nil && ref.Artifact != "" {
		artifact, err := a.artifacts.GetArtifact(ctx, ref.Artifact)
		switch {
		case err == nil && artifact.HasABI():
			parsed, err := ArtifactABI(artifact)
			if err == nil && speaksVersion(parsed, ref.Version) {
				return parsed, nil
			}
			a.log.Debug("artifact ABI doesn't match version, using embedded ABI", "artifact", ref.Artifact, "version", ref.Version)
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			a.log.Debug("artifact lookup failed, using embedded ABI", "artifact", ref.Artifact, "error", err)
		}
	}
	return EmbeddedABI(ref.Version)
}

// sandwichContract is a handle bound to one address and ABI version
type sandwichContract struct {
	ref     domain.ContractRef
	abi     *abi.ABI
	bound   *bind.BoundContract
	chainID *big.Int
}

func (c *sandwichContract) Ref() domain.ContractRef {
	return c.ref
}

// InitiateSandwich submits the call matching the sandwich variant
func (c *sandwichContract) InitiateSandwich(ctx context.Context, signer usecase.Signer, sandwich domain.Sandwich) (*domain.Submission, error) {
	if sandwich.Version() != c.ref.Version {
		return nil, fmt.Errorf("%w: %s sandwich sent to a %s contract", domain.ErrUnsupportedVersion, sandwich.Version(), c.ref.Version)
	}

	tx, ok := signer.(transactor)
	if !ok {
		return nil, fmt.Errorf("signer %T can't sign transactions", signer)
	}

	var args []interface{}
	switch s := sandwich.(type) {
	case domain.SandwichV1:
		args = []interface{}{s.Name, [32]byte(s.ID), s.Participants}
	case domain.SandwichV2:
		args = []interface{}{s.Name, s.Participants}
	default:
		return nil, fmt.Errorf("%w: %T", domain.ErrUnsupportedVersion, sandwich)
	}

	opts, err := tx.TransactOpts(ctx, c.chainID)
	if err != nil {
		return nil, err
	}

	sent, err := c.bound.Transact(opts, "initiateSandwich", args...)
	if err != nil {
		return nil, wrapRevert("initiateSandwich", err)
	}

	return &domain.Submission{
		Hash:    sent.Hash(),
		Method:  "initiateSandwich",
		From:    opts.From,
		Nonce:   sent.Nonce(),
		ChainID: c.chainID.Uint64(),
	}, nil
}

// GetParticipatedSandwiches is a read-only eth_call
func (c *sandwichContract) GetParticipatedSandwiches(ctx context.Context, participant common.Address) ([]domain.SandwichID, error) {
	var out []interface{}
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "getParticipatedSandwiches", participant); err != nil {
		return nil, wrapRevert("getParticipatedSandwiches", err)
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("getParticipatedSandwiches returned %d values, expected 1", len(out))
	}

	raw, ok := abi.ConvertType(out[0], new([][32]byte)).(*[][32]byte)
	if !ok {
		return nil, fmt.Errorf("getParticipatedSandwiches returned %T, expected bytes32[]", out[0])
	}

	ids := make([]domain.SandwichID, len(*raw))
	for i, id := range *raw {
		ids[i] = domain.SandwichID(id)
	}
	return ids, nil
}

// GetSandwichDetails is a read-only eth_call returning the outputs as-is
func (c *sandwichContract) GetSandwichDetails(ctx context.Context, id domain.SandwichID) (*domain.SandwichRecord, error) {
	var out []interface{}
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, "getSandwichDetails", [32]byte(id)); err != nil {
		return nil, wrapRevert("getSandwichDetails", err)
	}

	outputs := c.abi.Methods["getSandwichDetails"].Outputs
	record := &domain.SandwichRecord{Values: make([]domain.NamedValue, len(out))}
	for i, v := range out {
		name := ""
		if i < len(outputs) {
			name = outputs[i].Name
		}
		record.Values[i] = domain.NamedValue{Name: name, Value: v}
	}
	return record, nil
}

// DecodeEvents decodes the receipt logs this instance emitted
func (c *sandwichContract) DecodeEvents(logs []domain.LogEntry) []domain.Event {
	return decodeEvents(c.abi, c.ref.Address, logs)
}

var _ usecase.SandwichContracts = (*SandwichContractsAdapter)(nil)
