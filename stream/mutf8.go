package stream

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/arloliu/anvil/errs"
)

// MaxStringLength is the largest encoded string the 16-bit length prefix can describe.
const MaxStringLength = 0xFFFF

// MUTF8Len returns the number of bytes s occupies in modified UTF-8.
func MUTF8Len(s string) int {
	n := 0
	for _, r := range s {
		n += runeLen(r)
	}

	return n
}

func runeLen(r rune) int {
	switch {
	case r >= 0x01 && r <= 0x7F:
		return 1
	case r == 0 || (r >= 0x80 && r <= 0x7FF):
		return 2
	case r > 0xFFFF:
		return 6
	default:
		return 3
	}
}

// AppendMUTF8 appends the modified UTF-8 encoding of s to dst.
// Invalid UTF-8 in s is encoded as U+FFFD.
func AppendMUTF8(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r >= 0x01 && r <= 0x7F:
			dst = append(dst, byte(r))
		case r == 0 || (r >= 0x80 && r <= 0x7FF):
			dst = append(dst, 0xC0|byte(r>>6)&0x1F, 0x80|byte(r)&0x3F)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			dst = appendUnit(dst, hi)
			dst = appendUnit(dst, lo)
		default:
			dst = appendUnit(dst, r)
		}
	}

	return dst
}

func appendUnit(dst []byte, u rune) []byte {
	return append(dst, 0xE0|byte(u>>12)&0x0F, 0x80|byte(u>>6)&0x3F, 0x80|byte(u)&0x3F)
}

// DecodeMUTF8 decodes modified UTF-8 bytes into a Go string.
//
// Surrogate pairs are joined into a single code point; an unpaired
// surrogate decodes as U+FFFD. Truncated or invalid sequences yield an
// error wrapping errs.ErrMalformedData.
func DecodeMUTF8(b []byte) (string, error) {
	out := make([]byte, 0, len(b))

	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			out = append(out, c)
			i++
		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", fmt.Errorf("%w: invalid 2-byte sequence at offset %d", errs.ErrMalformedData, i)
			}
			out = utf8.AppendRune(out, rune(c&0x1F)<<6|rune(b[i+1]&0x3F))
			i += 2
		case c&0xF0 == 0xE0:
			u, ok := unitAt(b, i)
			if !ok {
				return "", fmt.Errorf("%w: invalid 3-byte sequence at offset %d", errs.ErrMalformedData, i)
			}
			i += 3

			if utf16.IsSurrogate(u) {
				if lo, ok := unitAt(b, i); ok {
					if r := utf16.DecodeRune(u, lo); r != utf8.RuneError {
						out = utf8.AppendRune(out, r)
						i += 3

						continue
					}
				}
				u = utf8.RuneError
			}
			out = utf8.AppendRune(out, u)
		default:
			return "", fmt.Errorf("%w: invalid lead byte 0x%02x at offset %d", errs.ErrMalformedData, c, i)
		}
	}

	return string(out), nil
}

// unitAt decodes the 3-byte sequence starting at b[i] into a UTF-16 code unit.
func unitAt(b []byte, i int) (rune, bool) {
	if i+2 >= len(b) || b[i]&0xF0 != 0xE0 || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
		return 0, false
	}

	return rune(b[i]&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F), true
}
