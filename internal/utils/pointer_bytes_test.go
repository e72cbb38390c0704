package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	A uint32
	B uint32
}

func TestBytesToPointer(t *testing.T) {
	b := make([]byte, 12)

	p, ok := BytesToPointer[pair](b)
	require.True(t, ok)

	p.A = 7
	p.B = 9

	assert.Equal(t, PointerToBytes(p), b[:8])
	assert.NotEqual(t, make([]byte, 8), b[:8])
}

func TestBytesToPointerTooShort(t *testing.T) {
	p, ok := BytesToPointer[pair](make([]byte, 7))
	assert.False(t, ok)
	assert.Nil(t, p)

	p, ok = BytesToPointer[pair](nil)
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestPointerToBytesLength(t *testing.T) {
	var p pair
	assert.Len(t, PointerToBytes(&p), 8)
}
