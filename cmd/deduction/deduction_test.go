package deduction

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"testing"

	"fjacquet/finboard/cmd/root"
	"fjacquet/finboard/internal/config"
	"fjacquet/finboard/internal/container"
	"fjacquet/finboard/internal/logging"
	"fjacquet/finboard/internal/parsererror"

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
	salaryFlag = ""
	var buf bytes.Buffer
	Cmd.SetOut(&buf)
	Cmd.SetErr(io.Discard)
	Cmd.SetArgs(args)
	err := Cmd.Execute()
	return buf.String(), err
}

func TestDeductionCommand_SeedSalary(t *testing.T) {
	setup(t)

	out, err := run(t)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`Bank Deduction\s+20%\s+20000.00 NGN`), out)
	assert.Regexp(t, regexp.MustCompile(`Final amount\s+80000.00 NGN`), out)
}

func TestDeductionCommand_SalaryFlag(t *testing.T) {
	setup(t)

	out, err := run(t, "--salary", "N250,000")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`Final amount\s+200000.00 NGN`), out)
}

func TestDeductionCommand_NegativeSalary(t *testing.T) {
	setup(t)

	_, err := run(t, "--salary=-5")
	var cfgErr *parsererror.InvalidConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "salary", cfgErr.Parameter)
}
