package export

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/config"
	"fjacquet/finboard/internal/container"
	"fjacquet/finboard/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, delimiter string) {
	t.Helper()
	cfg := config.Default()
	cfg.CSV.Delimiter = delimiter
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
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
	output = ""
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetErr(io.Discard)
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return buf.String(), err
}

func TestExportCommand_Flags(t *testing.T) {
	outputFlag := Cmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.NotNil(t, Cmd.Flags().Lookup("tab"))
}

func TestExportCommand_WritesFilteredCSV(t *testing.T) {
	setup(t, ",")
	file := filepath.Join(t.TempDir(), "out", "income.csv")

	out, err := run(t, "--tab", "income", "-o", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 transaction(s)")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Merchant,Account,Category,Date,Amount", lines[0])
	assert.Equal(t, "4,Salary Payment,Opay,Income,2025-04-25,15000.00", lines[1])
}

func TestExportCommand_Delimiter(t *testing.T) {
	setup(t, ";")
	file := filepath.Join(t.TempDir(), "all.csv")

	_, err := run(t, "--output", file, "--category", "Food")
	require.NoError(t, err)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "9;KFC;Zenith Bank;Food;2025-04-30;-3500.00")
}

func TestExportCommand_RequiresOutput(t *testing.T) {
	setup(t, ",")
	_, err := run(t)
	assert.Error(t, err)
}

func TestExportCommand_RejectsNonCSVOutput(t *testing.T) {
	setup(t, ",")
	file := filepath.Join(t.TempDir(), "out.json")

	_, err := run(t, "-o", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
	assert.NoFileExists(t, file)
}
