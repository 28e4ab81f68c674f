package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryOpHasSignature(t *testing.T) {
	seen := make(map[string]bool)
	for op := Op(0); op < opCount; op++ {
		sig := op.Signature()
		require.NotEmpty(t, sig.Name, "op %d has no signature", int(op))
		assert.False(t, seen[sig.Name], "duplicate name %s", sig.Name)
		seen[sig.Name] = true

		got, ok := LookupOp(sig.Name)
		require.True(t, ok)
		assert.Equal(t, op, got)
	}
	assert.Len(t, Ops(), int(opCount))
}

func TestLookupOpUnknown(t *testing.T) {
	_, ok := LookupOp("unknown_function")
	assert.False(t, ok)
	assert.Equal(t, "Op(-1)", Op(-1).String())
}

func TestSignatureString(t *testing.T) {
	assert.Equal(t, "count(rows) list", OpCount.Signature().String())
	assert.Equal(t, "diff(rows, rows, column<number|num2>) list", OpDiff.Signature().String())
	assert.Equal(t, "date(integer, integer, integer) date", OpDate.Signature().String())
}
