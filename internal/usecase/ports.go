package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/models"
)

// Signer is an account able to authorize state-changing calls
type Signer interface {
	Address() common.Address
}

// SignerProvider yields the signer of the selected network. It must fail
// before anything touches the network when the key is missing or malformed.
type SignerProvider interface {
	Signer(ctx context.Context) (Signer, error)
}

// SandwichContract is a handle to one deployed EarthSandwichNFT instance
type SandwichContract interface {
	Ref() domain.ContractRef
	InitiateSandwich(ctx context.Context, signer Signer, sandwich domain.Sandwich) (*domain.Submission, error)
	GetParticipatedSandwiches(ctx context.Context, participant common.Address) ([]domain.SandwichID, error)
	GetSandwichDetails(ctx context.Context, id domain.SandwichID) (*domain.SandwichRecord, error)
	// DecodeEvents decodes the logs this contract emitted; logs it can't decode are skipped
	DecodeEvents(logs []domain.LogEntry) []domain.Event
}

// SandwichContracts builds contract handles and deploys new instances
type SandwichContracts interface {
	At(ctx context.Context, ref domain.ContractRef) (SandwichContract, error)
	Deploy(ctx context.Context, signer Signer, artifact *models.Artifact, owner common.Address) (*domain.Submission, error)
}

// TxConfirmer waits for a submitted transaction to be mined
type TxConfirmer interface {
	WaitForConfirmation(ctx context.Context, sub *domain.Submission) *domain.TxResult
}

// ArtifactRepository loads compiled contracts by name
type ArtifactRepository interface {
	GetArtifact(ctx context.Context, name string) (*models.Artifact, error)
}

// DeploymentRepository handles persistence of deployments
type DeploymentRepository interface {
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
	ListDeployments(ctx context.Context, filter models.DeploymentFilter) ([]*models.Deployment, error)
	LatestDeployment(ctx context.Context, network, version string) (*models.Deployment, error)
}

// ParticipantsReader reads participant addresses from a file
type ParticipantsReader interface {
	ReadParticipants(ctx context.Context, path string) ([]string, error)
}

// NetworkResolver resolves configured networks
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, name string) (*config.Network, error)
}

// ChainInspector queries the chain behind a network
type ChainInspector interface {
	ChainID(ctx context.Context, network *config.Network) (uint64, error)
}

// Confirmer asks the user before broadcasting
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// FileWriter handles the files written by init
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content string) error
	FileExists(ctx context.Context, path string) (bool, error)
	EnsureDirectory(ctx context.Context, path string) error
	EncodeProjectFile(project *config.ProjectFile) (string, error)
}

// Selector lets the user pick from a list
type Selector interface {
	Interactive() bool
	SelectOption(ctx context.Context, prompt string, options []string) (int, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// Progress stages
const (
	StageResolving  = "resolving"
	StageSubmitting = "submitting"
	StageConfirming = "confirming"
	StageQuerying   = "querying"
	StageCompleted  = "completed"
)
