package blockchain

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/domain/models"
)

//go:embed abi/*.json
var abiFS embed.FS

var (
	abiCache   = map[domain.ContractVersion]*abi.ABI{}
	abiCacheMu sync.Mutex
)

// EmbeddedABI returns the bundled EarthSandwichNFT ABI for a version
func EmbeddedABI(version domain.ContractVersion) (*abi.ABI, error) {
	abiCacheMu.Lock()
	defer abiCacheMu.Unlock()

	if parsed, ok := abiCache[version]; ok {
		return parsed, nil
	}

	data, err := abiFS.ReadFile(fmt.Sprintf("abi/EarthSandwichNFT.%s.json", version))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedVersion, version)
	}
	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded %s ABI: %w", version, err)
	}
	abiCache[version] = &parsed
	return &parsed, nil
}

// ArtifactABI parses the ABI of a compiled artifact
func ArtifactABI(artifact *models.Artifact) (*abi.ABI, error) {
	parsed, err := abi.JSON(bytes.NewReader(artifact.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", artifact.ContractName, err)
	}
	return &parsed, nil
}

// speaksVersion checks that an ABI's initiateSandwich matches a version's signature
func speaksVersion(parsed *abi.ABI, version domain.ContractVersion) bool {
	method, ok := parsed.Methods["initiateSandwich"]
	if !ok {
		return false
	}
	spoken, ok := domain.VersionForInitiateInputs(len(method.Inputs))
	return ok && spoken == version
}

// dataError is implemented by JSON-RPC errors carrying revert data
type dataError interface {
	ErrorData() interface{}
}

// wrapRevert turns node errors about reverted execution into *domain.RevertError
func wrapRevert(method string, err error) error {
	if err == nil {
		return nil
	}

	var de dataError
	if errors.As(err, &de) {
		if hexData, ok := de.ErrorData().(string); ok {
			reason := ""
			if data, decErr := hexutil.Decode(hexData); decErr == nil {
				if unpacked, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
					reason = unpacked
				}
			}
			return &domain.RevertError{Method: method, Reason: reason, Err: err}
		}
	}

	if strings.Contains(err.Error(), "execution reverted") {
		return &domain.RevertError{Method: method, Err: err}
	}
	return err
}
