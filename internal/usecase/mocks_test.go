package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/models"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

var (
	signerAddr  = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	contractV1  = common.HexToAddress("0xC51C514a5e082A59ed94Eb92947cd7cad26b93fc")
	deployedV2  = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	participant = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	txHash      = common.HexToHash("0x6a1d1ef0c1b9e6de4f4a7e3a0f9d6f2b9f4f6c1d2e3f4a5b6c7d8e9f0a1b2c3d")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		ProjectRoot: "/project",
		DataDir:     "/project/.sandwich",
		NetworkName: "lukso",
		Network: &config.Network{
			Name:       "lukso",
			RPCURL:     "https://rpc.l14.lukso.network/",
			ChainID:    22,
			PrivateKey: "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
		},
		Compiler: config.CompilerConfig{Version: "0.8.17", Optimizer: config.OptimizerConfig{Runs: 200}},
		Contracts: map[string]config.ContractConfig{
			"v1": {Artifact: "EarthSandwichNFT", Address: contractV1.Hex(), Version: "v1", Network: "lukso"},
			"v2": {Artifact: "EarthSandwichNFT", Version: "v2"},
		},
		DefaultContract: "v1",
	}
}

type fakeSigner struct {
	addr common.Address
}

func (s fakeSigner) Address() common.Address { return s.addr }

// MockSignerProvider is a mock implementation of SignerProvider
type MockSignerProvider struct {
	mock.Mock
}

func (m *MockSignerProvider) Signer(ctx context.Context) (usecase.Signer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.Signer), args.Error(1)
}

// MockSandwichContracts is a mock implementation of SandwichContracts
type MockSandwichContracts struct {
	mock.Mock
}

func (m *MockSandwichContracts) At(ctx context.Context, ref domain.ContractRef) (usecase.SandwichContract, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(usecase.SandwichContract), args.Error(1)
}

func (m *MockSandwichContracts) Deploy(ctx context.Context, signer usecase.Signer, artifact *models.Artifact, owner common.Address) (*domain.Submission, error) {
	args := m.Called(ctx, signer, artifact, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

// MockSandwichContract is a mock implementation of SandwichContract
type MockSandwichContract struct {
	mock.Mock
}

func (m *MockSandwichContract) Ref() domain.ContractRef {
	return m.Called().Get(0).(domain.ContractRef)
}

func (m *MockSandwichContract) InitiateSandwich(ctx context.Context, signer usecase.Signer, sandwich domain.Sandwich) (*domain.Submission, error) {
	args := m.Called(ctx, signer, sandwich)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

func (m *MockSandwichContract) GetParticipatedSandwiches(ctx context.Context, p common.Address) ([]domain.SandwichID, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SandwichID), args.Error(1)
}

func (m *MockSandwichContract) GetSandwichDetails(ctx context.Context, id domain.SandwichID) (*domain.SandwichRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SandwichRecord), args.Error(1)
}

func (m *MockSandwichContract) DecodeEvents(logs []domain.LogEntry) []domain.Event {
	args := m.Called(logs)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Event)
}

// MockTxConfirmer is a mock implementation of TxConfirmer
type MockTxConfirmer struct {
	mock.Mock
}

func (m *MockTxConfirmer) WaitForConfirmation(ctx context.Context, sub *domain.Submission) *domain.TxResult {
	return m.Called(ctx, sub).Get(0).(*domain.TxResult)
}

// MockArtifactRepository is a mock implementation of ArtifactRepository
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) GetArtifact(ctx context.Context, name string) (*models.Artifact, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artifact), args.Error(1)
}

// MockDeploymentStore is a mock implementation of DeploymentRepository
type MockDeploymentStore struct {
	mock.Mock
}

func (m *MockDeploymentStore) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	return m.Called(ctx, deployment).Error(0)
}

func (m *MockDeploymentStore) ListDeployments(ctx context.Context, filter models.DeploymentFilter) ([]*models.Deployment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deployment), args.Error(1)
}

func (m *MockDeploymentStore) LatestDeployment(ctx context.Context, network, version string) (*models.Deployment, error) {
	args := m.Called(ctx, network, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

// MockParticipantsReader is a mock implementation of ParticipantsReader
type MockParticipantsReader struct {
	mock.Mock
}

func (m *MockParticipantsReader) ReadParticipants(ctx context.Context, path string) ([]string, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// MockSelector is a mock implementation of Selector
type MockSelector struct {
	mock.Mock
}

func (m *MockSelector) Interactive() bool {
	return m.Called().Bool(0)
}

func (m *MockSelector) SelectOption(ctx context.Context, prompt string, options []string) (int, error) {
	args := m.Called(ctx, prompt, options)
	return args.Int(0), args.Error(1)
}

// MockNetworkResolver is a mock implementation of NetworkResolver
type MockNetworkResolver struct {
	mock.Mock
}

func (m *MockNetworkResolver) GetNetworks(ctx context.Context) []string {
	return m.Called(ctx).Get(0).([]string)
}

func (m *MockNetworkResolver) ResolveNetwork(ctx context.Context, name string) (*config.Network, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.Network), args.Error(1)
}

// MockChainInspector is a mock implementation of ChainInspector
type MockChainInspector struct {
	mock.Mock
}

func (m *MockChainInspector) ChainID(ctx context.Context, network *config.Network) (uint64, error) {
	args := m.Called(ctx, network)
	return args.Get(0).(uint64), args.Error(1)
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, content string) error {
	return m.Called(ctx, path, content).Error(0)
}

func (m *MockFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileWriter) EnsureDirectory(ctx context.Context, path string) error {
	return m.Called(ctx, path).Error(0)
}

func (m *MockFileWriter) EncodeProjectFile(project *config.ProjectFile) (string, error) {
	args := m.Called(project)
	return args.String(0), args.Error(1)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}
