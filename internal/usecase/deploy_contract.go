package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/config"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/models"
)

// DeployContractParams contains parameters for deploying EarthSandwichNFT
type DeployContractParams struct {
	// Artifact is the compiled contract name, defaults to EarthSandwichNFT
	Artifact string
	// Owner is the initialOwner constructor argument, defaults to the signer
	Owner string
	// Version is the ABI version recorded for the new instance. Without it the
	// version is read from the artifact's initiateSandwich signature.
	Version string
	// SkipConfirm skips the interactive broadcast prompt
	SkipConfirm bool
}

// DeployContractResult contains the outcome of a deployment
type DeployContractResult struct {
	Network    string
	Artifact   string
	Owner      common.Address
	Deployer   common.Address
	Tx         *domain.TxResult
	Deployment *models.Deployment
}

// DeployContract deploys a new contract instance and records it in the registry
type DeployContract struct {
	config      *config.RuntimeConfig
	signers     SignerProvider
	artifacts   ArtifactRepository
	contracts   SandwichContracts
	confirmer   TxConfirmer
	deployments DeploymentRepository
	prompt      Confirmer
	sink        ProgressSink
	log         *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	signers SignerProvider,
	artifacts ArtifactRepository,
	contracts SandwichContracts,
	confirmer TxConfirmer,
	deployments DeploymentRepository,
	prompt Confirmer,
	sink ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:      cfg,
		signers:     signers,
		artifacts:   artifacts,
		contracts:   contracts,
		confirmer:   confirmer,
		deployments: deployments,
		prompt:      prompt,
		sink:        sink,
		log:         log.With("component", "DeployContract"),
	}
}

// Run executes the use case
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	if uc.config.Network == nil {
		return nil, fmt.Errorf("network %q is not configured: %w", uc.config.NetworkName, domain.ErrNotFound)
	}

	var requested domain.ContractVersion
	if params.Version != "" {
		var err error
		if requested, err = domain.ParseContractVersion(params.Version); err != nil {
			return nil, err
		}
	}

	// Credentials first: a bad key must never reach the deploy call
	signer, err := uc.signers.Signer(ctx)
	if err != nil {
		return nil, err
	}

	owner := signer.Address()
	if params.Owner != "" {
		if owner, err = domain.ParseAddress(params.Owner); err != nil {
			return nil, fmt.Errorf("owner: %w", err)
		}
	}

	artifactName := params.Artifact
	if artifactName == "" {
		artifactName = domain.DefaultArtifact
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageResolving, Message: "Loading artifact " + artifactName, Spinner: true})
	artifact, err := uc.artifacts.GetArtifact(ctx, artifactName)
	if err != nil {
		return nil, err
	}
	uc.checkCompiler(artifact)

	version, err := artifactVersion(artifact, requested)
	if err != nil {
		return nil, err
	}

	if !params.SkipConfirm {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageResolving, Message: "Artifact " + artifactName + " loaded"})
		ok, err := uc.prompt.Confirm(ctx, fmt.Sprintf("Deploy %s to %s with owner %s?", artifactName, uc.config.Network.Name, owner.Hex()))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrAborted
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageSubmitting, Message: "Submitting deployment", Spinner: true})
	sub, err := uc.contracts.Deploy(ctx, signer, artifact, owner)
	if err != nil {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})
		return nil, fmt.Errorf("failed to deploy %s: %w", artifactName, err)
	}
	uc.log.Debug("deployment submitted", "tx", sub.Hash.Hex(), "nonce", sub.Nonce)

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageConfirming, Message: "Waiting for confirmation of " + sub.Hash.Hex(), Spinner: true})
	txResult := uc.confirmer.WaitForConfirmation(ctx, sub)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: StageCompleted})

	result := &DeployContractResult{
		Network:  uc.config.Network.Name,
		Artifact: artifactName,
		Owner:    owner,
		Deployer: signer.Address(),
		Tx:       txResult,
	}
	if err := txResult.AsError(); err != nil {
		return result, err
	}

	if txResult.ContractAddress == nil {
		txResult.ContractAddress = sub.ContractAddress
	}
	if txResult.ContractAddress == nil {
		return result, fmt.Errorf("deployment %s confirmed without a contract address", txResult.Hash.Hex())
	}

	deployment := &models.Deployment{
		ID:          models.DeploymentID(uc.config.Network.Name, string(version), txResult.ContractAddress.Hex()),
		Network:     uc.config.Network.Name,
		ChainID:     txResult.ChainID,
		Contract:    artifactName,
		Version:     string(version),
		Address:     txResult.ContractAddress.Hex(),
		TxHash:      txResult.Hash.Hex(),
		BlockNumber: txResult.BlockNumber,
		GasUsed:     txResult.GasUsed,
		Owner:       owner.Hex(),
		Deployer:    signer.Address().Hex(),
		Compiler: models.CompilerInfo{
			Version:          uc.config.Compiler.Version,
			OptimizerEnabled: uc.config.Compiler.Optimizer.Enabled,
			OptimizerRuns:    uc.config.Compiler.Optimizer.Runs,
		},
		CreatedAt: time.Now().UTC(),
	}
	result.Deployment = deployment

	// The contract exists on-chain at this point, a registry failure is only a warning
	if err := uc.deployments.SaveDeployment(ctx, deployment); err != nil {
		uc.log.Warn("failed to record deployment", "error", err)
		uc.sink.Error(fmt.Sprintf("Deployment confirmed but not recorded: %v", err))
	}

	return result, nil
}

// checkCompiler warns when the artifact was built with a different solc than configured
func (uc *DeployContract) checkCompiler(artifact *models.Artifact) {
	built := artifact.CompilerVersion()
	want := uc.config.Compiler.Version
	if built == "" || want == "" {
		return
	}
	if !strings.HasPrefix(built, want) {
		uc.log.Warn("artifact compiler differs from configured compiler", "artifact", built, "configured", want)
	}
}

// artifactVersion settles the ABI version recorded for a deployment. An
// explicit version must agree with the artifact's ABI when it has one.
func artifactVersion(artifact *models.Artifact, requested domain.ContractVersion) (domain.ContractVersion, error) {
	n, found, err := artifact.MethodInputs("initiateSandwich")
	if err != nil {
		return "", err
	}
	detected, known := domain.VersionForInitiateInputs(n)

	switch {
	case !found || !known:
		if requested != "" {
			return requested, nil
		}
		return domain.ContractV1, nil
	case requested != "" && requested != detected:
		return "", fmt.Errorf("%w: %s has the %s initiateSandwich, not %s", domain.ErrUnsupportedVersion, artifact.ContractName, detected, requested)
	default:
		return detected, nil
	}
}
