package linkmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWideStringRoundTrip(t *testing.T) {
	buf := make([]WChar, 16)

	SetWideString(buf, "héllo wörld")
	assert.Equal(t, "héllo wörld", WideString(buf))

	SetWideString(buf, "hi")
	assert.Equal(t, "hi", WideString(buf))
	assert.Equal(t, make([]WChar, 14), buf[2:])
}

func TestSetWideStringTruncates(t *testing.T) {
	buf := make([]WChar, 4)

	SetWideString(buf, "abcdef")
	assert.Equal(t, "abc", WideString(buf))
	assert.Zero(t, buf[3])
}

func TestSetWideStringStopsAtNul(t *testing.T) {
	buf := make([]WChar, 8)

	SetWideString(buf, "ab\x00cd")
	assert.Equal(t, "ab", WideString(buf))
}

func TestWideStringInvalidRune(t *testing.T) {
	buf := []WChar{'a', 0xD800, 0x110000, 'b'}
	assert.Equal(t, "a��b", WideString(buf))
}

func TestWideStringUnterminated(t *testing.T) {
	assert.Equal(t, "abc", WideString([]WChar{'a', 'b', 'c'}))
	assert.Empty(t, WideString(nil))
}

func TestCopyWide(t *testing.T) {
	src := []WChar{'a', 'b', 0, 'z'}
	dst := []WChar{9, 9, 9, 9, 9}

	copyWide(dst, src)
	assert.Equal(t, []WChar{'a', 'b', 0, 0, 0}, dst)

	short := make([]WChar, 2)
	copyWide(short, []WChar{'a', 'b', 'c'})
	assert.Equal(t, []WChar{'a', 0}, short)
}
