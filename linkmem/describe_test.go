package linkmem

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	out := Describe(sourceRecord())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 12)
	assert.Equal(t, "name: TestLink", lines[0])
	assert.Equal(t, "description: TestLink is a test of the Link plugin.", lines[1])
	assert.Equal(t, "version: 2", lines[2])
	assert.Equal(t, "tick: 42", lines[3])
	assert.Equal(t, `context (len 3): 010203 "\x01\x02\x03"`, lines[4])
	assert.Equal(t, "identity: abc", lines[5])
	assert.Equal(t, "avatar position: (1, 2, 3)", lines[6])
	assert.Equal(t, "avatar front: (0, 0, 1)", lines[7])
	assert.Equal(t, "avatar top: (0, 1, 0)", lines[8])
	assert.Equal(t, "camera position: (4, 5, 6)", lines[9])
	assert.Equal(t, "camera top: (-1, 0.5, 0.25)", lines[11])
}

func TestDescribeClampsContext(t *testing.T) {
	rec := new(LinkRecord)
	rec.ContextLength = 1000

	assert.Contains(t, Describe(rec), "context (len 1000): ")
	assert.Len(t, rec.Context(), ContextCapacity)
}

func TestWriteDescription(t *testing.T) {
	rec := sourceRecord()

	var buf bytes.Buffer
	n, err := WriteDescription(&buf, rec)

	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), n)
	assert.Equal(t, Describe(rec), buf.String())
}
