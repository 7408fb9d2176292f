package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slatehq/slate-sdk/domain/entities"
	"github.com/slatehq/slate-sdk/host"
)

var (
	ownerID   = entities.DeriveIdentity([]byte("test/program/greeting"))
	addressID = entities.DeriveIdentity([]byte("test/account/greeting"))
)

func validGenesis() string {
	return fmt.Sprintf(`
accounts:
  - address: %s
    owner: %s
    size: 4
`, addressID, ownerID)
}

func TestParse_Valid(t *testing.T) {
	g, err := Parse([]byte(validGenesis()))
	require.NoError(t, err)

	require.Len(t, g.Accounts, 1)
	assert.Equal(t, addressID.String(), g.Accounts[0].Address)
	assert.Equal(t, ownerID.String(), g.Accounts[0].Owner)
	assert.Equal(t, 4, g.Accounts[0].Size)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "not yaml",
			yaml: "{{nope",
		},
		{
			name: "no accounts",
			yaml: "accounts: []",
		},
		{
			name: "missing owner",
			yaml: fmt.Sprintf("accounts:\n  - address: %s\n    size: 4\n", addressID),
		},
		{
			name: "bad hex data",
			yaml: fmt.Sprintf("accounts:\n  - address: %s\n    owner: %s\n    data: zz\n", addressID, ownerID),
		},
		{
			name: "neither size nor data",
			yaml: fmt.Sprintf("accounts:\n  - address: %s\n    owner: %s\n", addressID, ownerID),
		},
		{
			name: "both size and data",
			yaml: fmt.Sprintf("accounts:\n  - address: %s\n    owner: %s\n    size: 4\n    data: \"00000000\"\n", addressID, ownerID),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genesis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validGenesis()), 0o600))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, g.Accounts, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read genesis file")
}

func TestGenesis_Apply_SizeForm(t *testing.T) {
	g, err := Parse([]byte(validGenesis()))
	require.NoError(t, err)

	rt := host.NewRuntime()
	require.NoError(t, g.Apply(rt))

	account, err := rt.Account(addressID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, account.Owner)
	assert.Equal(t, make([]byte, 4), account.Data)
}

func TestGenesis_Apply_DataForm(t *testing.T) {
	yaml := fmt.Sprintf("accounts:\n  - address: %s\n    owner: %s\n    data: \"0c000000\"\n", addressID, ownerID)
	g, err := Parse([]byte(yaml))
	require.NoError(t, err)

	rt := host.NewRuntime()
	require.NoError(t, g.Apply(rt))

	account, err := rt.Account(addressID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0c, 0x00, 0x00, 0x00}, account.Data)
}

func TestGenesis_Apply_BadIdentity(t *testing.T) {
	g := &Genesis{Accounts: []AccountSpec{{Address: "tooshort", Owner: ownerID.String(), Size: 4}}}

	err := g.Apply(host.NewRuntime())
	assert.ErrorContains(t, err, "account 0")
}
