package transactions

import (
	"bytes"
	"io"
	"testing"

	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/config"
	"fjacquet/finboard/internal/container"
	"fjacquet/finboard/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	t.Helper()
	c, err := container.NewContainerWithLogger(config.Default(), logging.NewMockLogger())
	require.NoError(t, err)
	root.SetContainer(c)
	t.Cleanup(func() {
		_ = c.Close()
		root.SetContainer(nil)
	})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flags.Reset()
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetErr(io.Discard)
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return buf.String(), err
}

func TestTransactionsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "transactions", Cmd.Use)
	assert.NotNil(t, Cmd.RunE)
	for _, name := range []string{"tab", "date", "category", "account", "search"} {
		assert.NotNil(t, Cmd.Flags().Lookup(name), name)
	}
}

func TestTransactionsCommand_ListsSeed(t *testing.T) {
	setup(t)

	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Spotify")
	assert.Contains(t, out, "KFC")
	assert.Contains(t, out, "9 transaction(s), 0 filter(s) active")
}

func TestTransactionsCommand_Filters(t *testing.T) {
	setup(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"income tab", []string{"--tab", "income"}, "2 transaction(s)"},
		{"expenses tab", []string{"--tab", "expenses"}, "7 transaction(s)"},
		{"date", []string{"--date", "Apr 20, 2025"}, "1 transaction(s), 1 filter(s) active"},
		{"category", []string{"--category", "Shopping"}, "2 transaction(s), 1 filter(s) active"},
		{"account and tab", []string{"--account", "Opay", "--tab", "expenses"}, "2 transaction(s), 1 filter(s) active"},
		{"search", []string{"--search", "PAYMENT"}, "2 transaction(s)"},
		{"no match", []string{"--date", "2024-01-01"}, "0 transaction(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestTransactionsCommand_InvalidTab(t *testing.T) {
	setup(t)
	_, err := run(t, "--tab", "savings")
	assert.Error(t, err)
}

func TestTransactionsCommand_NoContainer(t *testing.T) {
	root.SetContainer(nil)
	_, err := run(t)
	assert.Error(t, err)
}
