package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_DerivedLoggersShareEntries(t *testing.T) {
	root := NewMockLogger()
	child := root.WithField(FieldAccount, "Opay").WithError(errors.New("boom"))

	root.Info("root entry")
	child.Warn("child entry", F(FieldCount, 2))

	entries := root.GetEntries()
	require.Len(t, entries, 2)

	warn := root.GetEntriesByLevel("WARN")
	require.Len(t, warn, 1)
	v, ok := warn[0].FieldValue(FieldAccount)
	assert.True(t, ok)
	assert.Equal(t, "Opay", v)
	assert.EqualError(t, warn[0].Error, "boom")

	assert.True(t, root.HasEntry("INFO", "root entry"))
	root.Clear()
	assert.Empty(t, root.GetEntries())
}
