package blockchain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
)

// decodeEvents decodes the logs emitted by emitter against the contract ABI.
// Logs from other addresses or with unknown signatures are skipped.
func decodeEvents(parsed *abi.ABI, emitter common.Address, logs []domain.LogEntry) []domain.Event {
	var events []domain.Event
	for _, log := range logs {
		if log.Address != emitter || len(log.Topics) == 0 {
			continue
		}
		event, err := decodeLog(parsed, log)
		if err != nil || event == nil {
			continue
		}
		events = append(events, *event)
	}
	return events
}

// decodeLog returns nil when no ABI event matches the first topic
func decodeLog(parsed *abi.ABI, log domain.LogEntry) (*domain.Event, error) {
	event, err := parsed.EventByID(log.Topics[0])
	if err != nil {
		return nil, nil
	}

	values := make(map[string]interface{})

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(indexed) > 0 {
		if err := abi.ParseTopicsIntoMap(values, indexed, log.Topics[1:]); err != nil {
			return nil, fmt.Errorf("failed to parse topics of %s: %w", event.Name, err)
		}
	}

	if len(log.Data) > 0 {
		if err := event.Inputs.NonIndexed().UnpackIntoMap(values, log.Data); err != nil {
			return nil, fmt.Errorf("failed to unpack data of %s: %w", event.Name, err)
		}
	}

	decoded := &domain.Event{Name: event.RawName}
	for _, input := range event.Inputs {
		if v, ok := values[input.Name]; ok {
			decoded.Params = append(decoded.Params, domain.NamedValue{Name: input.Name, Value: v})
		}
	}
	return decoded, nil
}
