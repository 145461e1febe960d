package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Artifact is a compiled contract as written by Hardhat or Foundry.
//
// Hardhat stores bytecode as a plain hex string while Foundry nests it in an
// object, so Bytecode accepts both shapes.
type Artifact struct {
	ContractName string           `json:"contractName"`
	SourceName   string           `json:"sourceName"`
	ABI          json.RawMessage  `json:"abi"`
	Bytecode     BytecodeObject   `json:"bytecode"`
	Metadata     ArtifactMetadata `json:"metadata"`

	// Path is where the artifact was loaded from.
	Path string `json:"-"`
}

// BytecodeObject represents bytecode information in an artifact
type BytecodeObject struct {
	Object         string         `json:"object"`
	LinkReferences map[string]any `json:"linkReferences,omitempty"`
}

// UnmarshalJSON accepts either "0x..." or {"object": "0x..."}.
func (b *BytecodeObject) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		b.Object = s
		return nil
	}
	type plain BytecodeObject
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("bytecode is neither a string nor an object: %w", err)
	}
	*b = BytecodeObject(obj)
	return nil
}

// ArtifactMetadata is the part of the solc metadata we care about. Foundry
// embeds it as an object; Hardhat leaves it out.
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
}

// UnmarshalJSON tolerates metadata given as a JSON string.
func (m *ArtifactMetadata) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" {
			return nil
		}
		data = []byte(s)
	}
	type plain ArtifactMetadata
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}
	*m = ArtifactMetadata(obj)
	return nil
}

// CreationCode decodes the creation bytecode.
func (a *Artifact) CreationCode() ([]byte, error) {
	code := strings.TrimSpace(a.Bytecode.Object)
	if code == "" || code == "0x" {
		return nil, fmt.Errorf("artifact %s has no bytecode (abstract contract or interface?)", a.ContractName)
	}
	if !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}
	if strings.Contains(code, "__") {
		return nil, fmt.Errorf("artifact %s has unlinked library references", a.ContractName)
	}
	b, err := hexutil.Decode(code)
	if err != nil {
		return nil, fmt.Errorf("failed to decode bytecode of %s: %w", a.ContractName, err)
	}
	return b, nil
}

// HasABI reports whether the artifact carries a non-empty ABI.
func (a *Artifact) HasABI() bool {
	trimmed := strings.TrimSpace(string(a.ABI))
	return trimmed != "" && trimmed != "null" && trimmed != "[]"
}

// CompilerVersion returns the solc version without the commit suffix, e.g. "0.8.17".
func (a *Artifact) CompilerVersion() string {
	v := a.Metadata.Compiler.Version
	if i := strings.Index(v, "+"); i >= 0 {
		v = v[:i]
	}
	return v
}

// MethodInputs returns how many inputs a method takes in the artifact's ABI.
// found is false when the ABI is empty or has no such method.
func (a *Artifact) MethodInputs(name string) (n int, found bool, err error) {
	if !a.HasABI() {
		return 0, false, nil
	}
	parsed, err := abi.JSON(bytes.NewReader(a.ABI))
	if err != nil {
		return 0, false, fmt.Errorf("failed to parse ABI of %s: %w", a.ContractName, err)
	}
	method, ok := parsed.Methods[name]
	if !ok {
		return 0, false, nil
	}
	return len(method.Inputs), true, nil
}
