package linkmem

import (
	"strings"
	"unicode/utf8"
)

// WideString decodes buf up to the first NUL. Code points that are not
// valid runes decode as U+FFFD.
func WideString(buf []WChar) string {
	var sb strings.Builder

	for _, c := range buf {
		if c == 0 {
			break
		}

		r := rune(c)

		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// SetWideString encodes s into buf, truncating so that at least one NUL
// terminator always fits. The rest of buf is zeroed.
func SetWideString(buf []WChar, s string) {
	if len(buf) == 0 {
		return
	}

	var i int

	for _, r := range s {
		if i == len(buf)-1 || r == 0 {
			break
		}

		buf[i] = WChar(r)
		i++
	}

	clear(buf[i:])
}

// copyWide copies src into dst up to the first NUL and zero-pads the rest,
// like wcsncpy. The last element of dst is always NUL.
func copyWide(dst, src []WChar) {
	if len(dst) == 0 {
		return
	}

	n := min(len(dst)-1, len(src))
	var i int

	for ; i < n && src[i] != 0; i++ {
		dst[i] = src[i]
	}

	clear(dst[i:])
}
