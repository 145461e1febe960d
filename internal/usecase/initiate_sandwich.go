package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
)

// InitiateSandwichParams contains parameters for initiating a sandwich
type InitiateSandwichParams struct {
	Contract ResolveContractParams

	Name string
	// ID is an explicit 0x-prefixed id, IDSeed derives one. v1 contracts only.
	ID     string
	IDSeed string

	Participants     []string
	ParticipantsFile string
}

// InitiateSandwichResult contains the outcome of initiateSandwich
type InitiateSandwichResult struct {
	Contract domain.ContractRef
	Sandwich domain.Sandwich
	Tx       *domain.TxResult
	Events   []domain.Event
}

// ID returns the sandwich id for v1 sandwiches
func (r *InitiateSandwichResult) ID() (domain.SandwichID, bool) {
	if v1, ok := r.Sandwich.(domain.SandwichV1); ok {
		return v1.ID, true
	}
	return domain.SandwichID{}, false
}

// InitiateSandwich submits initiateSandwich and waits for it to be mined
type InitiateSandwich struct {
	resolver     *ResolveContract
	signers      SignerProvider
	contracts    SandwichContracts
	confirmer    TxConfirmer
	participants ParticipantsReader
	sink         ProgressSink
	log          *slog.Logger
}

// NewInitiateSandwich creates a new InitiateSandwich use case
func NewInitiateSandwich(
	resolver *ResolveContract,
	signers SignerProvider,
	contracts SandwichContracts,
	confirmer TxConfirmer,
	participants ParticipantsReader,
	sink ProgressSink,
	log *slog.Logger,
) *InitiateSandwich {
	return &InitiateSandwich{
		resolver:     resolver,
		signers:      signers,
		contracts:    contracts,
		confirmer:    confirmer,
		participants: participants,
		sink:         sink,
		log:          log.With("component", "InitiateSandwich"),
	}
}

// Run executes the use case
func (uc *InitiateSandwich) Run(ctx context.Context, params InitiateSandwichParams) (*InitiateSandwichResult, error) {
	ref, err := uc.resolver.Run(ctx, params.Contract)
	if err != nil {
		return nil, err
	}

	participants, err := uc.collectParticipants(ctx, params)
	if err != nil {
		return nil, err
	}

	sandwich, err := BuildSandwich(ref.Version, params.Name, params.ID, params.IDSeed, participants)
	if err != nil {
		return nil, err
	}

	signer, err := uc.signers.Signer(ctx)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageResolving, Message: "Binding " + ref.String(), Spinner: true})
	contract, err := uc.contracts.At(ctx, ref)
	if err != nil {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageSubmitting, Message: "Submitting initiateSandwich", Spinner: true})
	sub, err := contract.InitiateSandwich(ctx, signer, sandwich)
	if err != nil {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, fmt.Errorf("initiateSandwich failed: %w", err)
	}
	uc.log.Debug("initiateSandwich submitted", "tx", sub.Hash.Hex(), "contract", ref.Address.Hex())

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageConfirming, Message: "Waiting for confirmation of " + sub.Hash.Hex(), Spinner: true})
	txResult := uc.confirmer.WaitForConfirmation(ctx, sub)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	result := &InitiateSandwichResult{
		Contract: ref,
		Sandwich: sandwich,
		Tx:       txResult,
	}
	if txResult.Confirmed() {
		result.Events = contract.DecodeEvents(txResult.Logs)
	}
	return result, txResult.AsError()
}

func (uc *InitiateSandwich) collectParticipants(ctx context.Context, params InitiateSandwichParams) ([]common.Address, error) {
	raw := append([]string{}, params.Participants...)
	if params.ParticipantsFile != "" {
		fromFile, err := uc.participants.ReadParticipants(ctx, params.ParticipantsFile)
		if err != nil {
			return nil, err
		}
		raw = append(raw, fromFile...)
	}
	return ParseParticipants(raw)
}

// ParseParticipants converts hex strings to addresses, dropping duplicates
// but keeping first-seen order
func ParseParticipants(raw []string) ([]common.Address, error) {
	addrs := make([]common.Address, 0, len(raw))
	for _, s := range raw {
		addr, err := domain.ParseAddress(s)
		if err != nil {
			return nil, fmt.Errorf("participant: %w", err)
		}
		addrs = append(addrs, addr)
	}
	return lo.Uniq(addrs), nil
}

// BuildSandwich picks the variant matching the contract's ABI version. Name
// and participants go to the contract as given, an empty name or list included.
func BuildSandwich(version domain.ContractVersion, name, id, seed string, participants []common.Address) (domain.Sandwich, error) {
	switch version {
	case domain.ContractV1:
		var sid domain.SandwichID
		switch {
		case id != "" && seed != "":
			return nil, fmt.Errorf("--id and --id-seed are mutually exclusive")
		case id != "":
			var err error
			if sid, err = domain.ParseSandwichID(id); err != nil {
				return nil, err
			}
		case seed != "":
			sid = domain.IDFromSeed(seed)
		default:
			return nil, fmt.Errorf("v1 contracts need a sandwich id: pass --id or --id-seed")
		}
		return domain.SandwichV1{Name: name, ID: sid, Participants: participants}, nil
	case domain.ContractV2:
		if id != "" || seed != "" {
			return nil, fmt.Errorf("v2 contracts assign the sandwich id themselves, drop --id/--id-seed")
		}
		return domain.SandwichV2{Name: name, Participants: participants}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedVersion, version)
	}
}
