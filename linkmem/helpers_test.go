package linkmem

import (
	"os"
	"testing"

	"github.com/edsrzf/mmap-go"
	"github.com/stretchr/testify/require"
	"github.com/webbmaffian/go-linkmem/internal/utils"
)

const testUID = 1000

func testOptions(t *testing.T) []Option {
	return []Option{WithDir(t.TempDir()), WithUID(testUID)}
}

// createSegment plays the external producer: it writes rec as the initial
// content of the segment "{name}.{uid}".
func createSegment(t *testing.T, opts []Option, name string, rec *LinkRecord) string {
	t.Helper()

	if rec == nil {
		rec = new(LinkRecord)
	}

	b, err := New(name, ReadOnly, opts...)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(b.Path(), utils.PointerToBytes(rec), 0600))

	return b.Path()
}

func bind(t *testing.T, opts []Option, name string, mode Mode) *Binding {
	t.Helper()

	b, err := New(name, mode, opts...)
	require.NoError(t, err)
	require.NoError(t, b.Bind())

	t.Cleanup(func() {
		b.Close()
	})

	return b
}

// failMapping makes every mapping fail with err until the test ends.
func failMapping(t *testing.T, err error) {
	t.Helper()

	orig := mapRegion
	mapRegion = func(*os.File, int, int, int, int64) (mmap.MMap, error) {
		return nil, err
	}

	t.Cleanup(func() {
		mapRegion = orig
	})
}
