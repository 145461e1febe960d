package domain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ContractVersion selects which EarthSandwichNFT ABI a contract reference speaks.
type ContractVersion string

const (
	// ContractV1 takes an explicit sandwich id in initiateSandwich.
	ContractV1 ContractVersion = "v1"
	// ContractV2 assigns the id on-chain.
	ContractV2 ContractVersion = "v2"
)

// ParseContractVersion accepts "v1"/"v2" (case-insensitive, "1"/"2" too).
func ParseContractVersion(s string) (ContractVersion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "v1", "1":
		return ContractV1, nil
	case "v2", "2":
		return ContractV2, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: v1, v2)", ErrUnsupportedVersion, s)
	}
}

// VersionForInitiateInputs maps the input count of initiateSandwich to the
// ABI version with that signature.
func VersionForInitiateInputs(n int) (ContractVersion, bool) {
	switch n {
	case 3:
		return ContractV1, true
	case 2:
		return ContractV2, true
	default:
		return "", false
	}
}

// SandwichID is the 32-byte identifier of a sandwich.
type SandwichID [32]byte

// IDFromSeed derives an id as keccak256 of the seed's UTF-8 bytes.
func IDFromSeed(seed string) SandwichID {
	return SandwichID(crypto.Keccak256Hash([]byte(seed)))
}

// ParseSandwichID parses a 0x-prefixed 32-byte hex string.
func ParseSandwichID(s string) (SandwichID, error) {
	var id SandwichID
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if len(raw) != 64 {
		return id, fmt.Errorf("%w: %q must be 32 bytes of hex", ErrInvalidSandwichID, s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return id, fmt.Errorf("%w: %q: %v", ErrInvalidSandwichID, s, err)
	}
	copy(id[:], b)
	return id, nil
}

func (id SandwichID) Hex() string {
	return common.Hash(id).Hex()
}

func (id SandwichID) String() string {
	return id.Hex()
}

// Sandwich is the argument set of initiateSandwich. The concrete type decides
// which contract ABI version it can be sent to.
type Sandwich interface {
	Version() ContractVersion
	SandwichName() string
	SandwichParticipants() []common.Address
}

// SandwichV1 is initiateSandwich(string name, bytes32 id, address[] participants).
type SandwichV1 struct {
	Name         string
	ID           SandwichID
	Participants []common.Address
}

func (SandwichV1) Version() ContractVersion                 { return ContractV1 }
func (s SandwichV1) SandwichName() string                   { return s.Name }
func (s SandwichV1) SandwichParticipants() []common.Address { return s.Participants }

// SandwichV2 is initiateSandwich(string name, address[] participants).
type SandwichV2 struct {
	Name         string
	Participants []common.Address
}

func (SandwichV2) Version() ContractVersion                 { return ContractV2 }
func (s SandwichV2) SandwichName() string                   { return s.Name }
func (s SandwichV2) SandwichParticipants() []common.Address { return s.Participants }

// ParseAddress converts a hex string into an address, rejecting anything that
// isn't 20 bytes of hex.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// NamedValue is one output of a contract call.
type NamedValue struct {
	Name  string
	Value any
}

// SandwichRecord is the raw result of getSandwichDetails, in ABI output order.
type SandwichRecord struct {
	Values []NamedValue
}

// String prints the values comma separated, the way a tuple result prints.
func (r *SandwichRecord) String() string {
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		parts[i] = formatValue(v.Value)
	}
	return strings.Join(parts, ",")
}

func formatValue(v any) string {
	switch val := v.(type) {
	case common.Address:
		return val.Hex()
	case [32]byte:
		return common.Hash(val).Hex()
	case []common.Address:
		parts := make([]string, len(val))
		for i, a := range val {
			parts[i] = a.Hex()
		}
		return strings.Join(parts, ",")
	case [][32]byte:
		parts := make([]string, len(val))
		for i, h := range val {
			parts[i] = common.Hash(h).Hex()
		}
		return strings.Join(parts, ",")
	case []byte:
		return "0x" + hex.EncodeToString(val)
	default:
		return fmt.Sprint(val)
	}
}
