package render

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/earth-sandwich/sandwich-cli/internal/domain"
	"github.com/earth-sandwich/sandwich-cli/internal/usecase"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

var (
	contractAddr = common.HexToAddress("0xC51C514a5e082A59ed94Eb92947cd7cad26b93fc")
	alice        = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	bob          = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	txHash       = common.HexToHash("0xabc1")
)

func TestInitiateRendererV1(t *testing.T) {
	id := domain.IDFromSeed("earth")
	result := &usecase.InitiateSandwichResult{
		Contract: domain.ContractRef{Address: contractAddr, Version: domain.ContractV1},
		Sandwich: domain.SandwichV1{Name: "Earth", ID: id, Participants: []common.Address{alice, bob}},
		Tx:       &domain.TxResult{Status: domain.TxConfirmed, Hash: txHash, BlockNumber: 7, GasUsed: 21000},
	}

	var buf bytes.Buffer
	require.NoError(t, NewInitiateRenderer(&buf, false).Render(result))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Equal(t, "Sandwich 'Earth' initiated with ID: "+id.Hex(), string(lines[0]))
	assert.Equal(t, "  Participants: "+alice.Hex()+","+bob.Hex(), string(lines[1]))
	assert.Contains(t, buf.String(), "Tx: "+txHash.Hex())
	assert.Contains(t, buf.String(), "Block: 7")
	assert.Contains(t, buf.String(), "Gas used: 21000")
	assert.NotContains(t, buf.String(), "Event:")
}

func TestInitiateRendererV2WithEvents(t *testing.T) {
	result := &usecase.InitiateSandwichResult{
		Contract: domain.ContractRef{Address: contractAddr, Version: domain.ContractV2},
		Sandwich: domain.SandwichV2{Name: "Earth", Participants: []common.Address{alice}},
		Tx:       &domain.TxResult{Status: domain.TxConfirmed, Hash: txHash},
		Events: []domain.Event{{
			Name:   "SandwichInitiated",
			Params: []domain.NamedValue{{Name: "participant", Value: alice}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewInitiateRenderer(&buf, false).Render(result))
	assert.Contains(t, buf.String(), "Sandwich 'Earth' initiated\n")
	assert.NotContains(t, buf.String(), "with ID")
	assert.Contains(t, buf.String(), "Event: SandwichInitiated(participant="+alice.Hex()+")")

	buf.Reset()
	require.NoError(t, NewInitiateRenderer(&buf, true).Render(result))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "Earth", out["name"])
	assert.Equal(t, "v2", out["version"])
	assert.Equal(t, float64(1), out["participants"])
	assert.NotContains(t, out, "id")
	assert.Len(t, out["events"], 1)
}

func TestParticipatedRenderer(t *testing.T) {
	ids := []domain.SandwichID{domain.IDFromSeed("a"), domain.IDFromSeed("b")}
	result := &usecase.QueryParticipatedResult{Participant: alice, Sandwiches: ids}

	var buf bytes.Buffer
	require.NoError(t, NewParticipatedRenderer(&buf, false).Render(result))
	assert.Equal(t, "Participated Sandwiches: "+ids[0].Hex()+","+ids[1].Hex()+"\n", buf.String())

	buf.Reset()
	require.NoError(t, NewParticipatedRenderer(&buf, false).Render(&usecase.QueryParticipatedResult{Participant: alice}))
	assert.Equal(t, "Participated Sandwiches: \n", buf.String())

	buf.Reset()
	require.NoError(t, NewParticipatedRenderer(&buf, true).Render(result))
	var out struct {
		Participant string   `json:"participant"`
		Sandwiches  []string `json:"sandwiches"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, alice.Hex(), out.Participant)
	assert.Equal(t, []string{ids[0].Hex(), ids[1].Hex()}, out.Sandwiches)
}

func TestDetailsRenderer(t *testing.T) {
	id := domain.IDFromSeed("earth")
	result := &usecase.QueryDetailsResult{
		ID: id,
		Record: &domain.SandwichRecord{Values: []domain.NamedValue{
			{Name: "name", Value: "Earth"},
			{Name: "participants", Value: []common.Address{alice, bob}},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, NewDetailsRenderer(&buf, false).Render(result))
	assert.Equal(t, "Sandwich Details: Earth,"+alice.Hex()+","+bob.Hex()+"\n", buf.String())

	buf.Reset()
	require.NoError(t, NewDetailsRenderer(&buf, true).Render(result))
	var out struct {
		ID      string         `json:"id"`
		Details map[string]any `json:"details"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, id.Hex(), out.ID)
	assert.Equal(t, "Earth", out.Details["name"])
	assert.Len(t, out.Details["participants"], 2)
}
