package adapters

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/earth-sandwich/sandwich-cli/internal/adapters/blockchain"
	internalconfig "github.com/earth-sandwich/sandwich-cli/internal/adapters/config"
	"github.com/earth-sandwich/sandwich-cli/internal/adapters/fs"
	"github.com/earth-sandwich/sandwich-cli/internal/adapters/interactive"
	"github.com/earth-sandwich/sandwich-cli/internal/adapters/progress"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// ProvideDialer provides the per-invocation chain connection and closes it on cleanup
func ProvideDialer(cfg *config.RuntimeConfig, log *slog.Logger) (*blockchain.Dialer, func()) {
	dialer := blockchain.NewDialer(cfg, log)
	return dialer, dialer.Close
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewRegistryStoreAdapter,
	wire.Bind(new(usecase.DeploymentRepository), new(*fs.RegistryStoreAdapter)),

	fs.NewContractIndexerAdapter,
	wire.Bind(new(usecase.ArtifactRepository), new(*fs.ContractIndexerAdapter)),

	fs.NewParticipantsFileAdapter,
	wire.Bind(new(usecase.ParticipantsReader), new(*fs.ParticipantsFileAdapter)),

	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.Selector), new(*interactive.SelectorAdapter)),

	progress.NewProgressSink,
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// BlockchainSet provides go-ethereum backed implementations
var BlockchainSet = wire.NewSet(
	ProvideDialer,

	blockchain.NewSignerAdapter,
	wire.Bind(new(usecase.SignerProvider), new(*blockchain.SignerAdapter)),

	blockchain.NewSandwichContractsAdapter,
	wire.Bind(new(usecase.SandwichContracts), new(*blockchain.SandwichContractsAdapter)),

	blockchain.NewReceiptWaiter,
	wire.Bind(new(usecase.TxConfirmer), new(*blockchain.ReceiptWaiter)),

	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ChainInspector), new(*blockchain.CheckerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
)
