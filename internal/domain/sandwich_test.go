package domain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromSeed(t *testing.T) {
	tests := []struct {
		seed string
		want string
	}{
		{"", "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"hello", "0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
	}

	for _, tt := range tests {
		t.Run(tt.seed, func(t *testing.T) {
			assert.Equal(t, tt.want, IDFromSeed(tt.seed).Hex())
		})
	}
}

func TestParseSandwichID(t *testing.T) {
	valid := "0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"prefixed", valid, false},
		{"unprefixed", valid[2:], false},
		{"upper prefix", "0X" + valid[2:], false},
		{"surrounding space", "  " + valid + "\n", false},
		{"too short", "0x1234", true},
		{"too long", valid + "00", true},
		{"not hex", "0x" + "zz" + valid[4:], true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseSandwichID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSandwichID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, valid, id.Hex())
		})
	}
}

func TestParseContractVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    ContractVersion
		wantErr bool
	}{
		{"v1", ContractV1, false},
		{"V2", ContractV2, false},
		{"1", ContractV1, false},
		{" 2 ", ContractV2, false},
		{"v3", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseContractVersion(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionForInitiateInputs(t *testing.T) {
	v, ok := VersionForInitiateInputs(3)
	assert.True(t, ok)
	assert.Equal(t, ContractV1, v)

	v, ok = VersionForInitiateInputs(2)
	assert.True(t, ok)
	assert.Equal(t, ContractV2, v)

	for _, n := range []int{0, 1, 4} {
		_, ok := VersionForInitiateInputs(n)
		assert.False(t, ok, n)
	}
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress(" 0x5B38Da6a701c568545dCfcB03FcB875f56beddC4 ")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"), addr)

	for _, bad := range []string{"", "0x1234", "not-an-address", "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4aa"} {
		_, err := ParseAddress(bad)
		assert.ErrorIs(t, err, ErrInvalidAddress, bad)
	}
}

func TestSandwichVariants(t *testing.T) {
	participants := []common.Address{common.HexToAddress("0x01"), common.HexToAddress("0x02")}

	var s Sandwich = SandwichV1{Name: "one", ID: IDFromSeed("one"), Participants: participants}
	assert.Equal(t, ContractV1, s.Version())
	assert.Equal(t, "one", s.SandwichName())
	assert.Equal(t, participants, s.SandwichParticipants())

	s = SandwichV2{Name: "two", Participants: participants[:1]}
	assert.Equal(t, ContractV2, s.Version())
	assert.Equal(t, "two", s.SandwichName())
	assert.Len(t, s.SandwichParticipants(), 1)
}

func TestSandwichRecordString(t *testing.T) {
	owner := common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	record := &SandwichRecord{Values: []NamedValue{
		{Name: "name", Value: "Earth Sandwich"},
		{Name: "participants", Value: []common.Address{owner}},
		{Name: "count", Value: big.NewInt(2)},
		{Name: "done", Value: true},
	}}

	assert.Equal(t, "Earth Sandwich,0x5B38Da6a701c568545dCfcB03FcB875f56beddC4,2,true", record.String())
}

func TestFormatValue(t *testing.T) {
	id := IDFromSeed("hello")
	assert.Equal(t, id.Hex(), formatValue([32]byte(id)))
	assert.Equal(t, id.Hex()+","+id.Hex(), formatValue([][32]byte{id, id}))
	assert.Equal(t, "0x0102", formatValue([]byte{1, 2}))
	assert.Equal(t, "42", formatValue(uint64(42)))
}
