package fs

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

// ParticipantsFileAdapter reads participant lists from YAML files
type ParticipantsFileAdapter struct{}

// NewParticipantsFileAdapter creates a new participants reader
func NewParticipantsFileAdapter() *ParticipantsFileAdapter {
	return &ParticipantsFileAdapter{}
}

type participantsDocument struct {
	Participants []string `yaml:"participants"`
}

// ReadParticipants accepts either a top-level sequence of addresses or a
// mapping with a participants key. Addresses are validated by the caller.
func (a *ParticipantsFileAdapter) ReadParticipants(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read participants file: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse participants file %s: %w", path, err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var list []string
		if err := root.Decode(&list); err != nil {
			return nil, fmt.Errorf("participants file %s: %w", path, err)
		}
		return list, nil
	case yaml.MappingNode:
		var doc participantsDocument
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("participants file %s: %w", path, err)
		}
		return doc.Participants, nil
	default:
		return nil, fmt.Errorf("participants file %s must be a list of addresses or have a participants key", path)
	}
}

// Ensure the adapter implements the interface
var _ usecase.ParticipantsReader = (*ParticipantsFileAdapter)(nil)
