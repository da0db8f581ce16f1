// Package hexescape renders byte sequences as shell-style \xHH escape strings
// and decodes such strings back into bytes.
//
// The decode direction accepts the full escape repertoire a browser's
// "copy as cURL" may emit inside $'...' quoting, following Python's
// latin1/unicode_escape round trip: \u and \U escapes and literal runes must
// fall in U+0000..U+00FF, octal escapes take up to three digits and reject a
// trailing decimal digit, and unrecognized escapes pass through literally.
package hexescape

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Escape renders every byte of data as \x followed by two lowercase hex
// digits, concatenated in byte order with no separators.
func Escape(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data) * 4)
	for _, b := range data {
		sb.WriteString(`\x`)
		sb.WriteByte(hexDigits[b>>4])
		sb.WriteByte(hexDigits[b&0x0f])
	}
	return sb.String()
}

// Unescape decodes an escaped string, as produced by Escape or captured from
// a shell $'...' argument, back into raw bytes.
func Unescape(s string) ([]byte, error) {
	var out bytes.Buffer
	in := []byte(s)
	i := 0
	for i < len(in) {
		if in[i] != '\\' {
			r, size := utf8.DecodeRune(in[i:])
			if r == utf8.RuneError && size == 1 {
				return nil, fmt.Errorf("hexescape: invalid UTF-8 sequence for a literal character at byte index %d", i)
			}
			if r > 0xff {
				return nil, fmt.Errorf("hexescape: literal character %U (%q) is outside Latin-1 range and was not escaped", r, r)
			}
			out.WriteByte(byte(r))
			i += size
			continue
		}

		i++ // past the backslash
		if i >= len(in) {
			return nil, errors.New("hexescape: trailing backslash")
		}
		c := in[i]
		switch c {
		case 'n':
			out.WriteByte('\n')
			i++
		case 'r':
			out.WriteByte('\r')
			i++
		case 't':
			out.WriteByte('\t')
			i++
		case 'b':
			out.WriteByte('\b')
			i++
		case 'f':
			out.WriteByte('\f')
			i++
		case 'v':
			out.WriteByte('\v')
			i++
		case 'a':
			out.WriteByte('\a')
			i++
		case '\\':
			out.WriteByte('\\')
			i++
		case '\'':
			out.WriteByte('\'')
			i++
		case '"':
			out.WriteByte('"')
			i++
		case 'x':
			i++
			if i+1 >= len(in) {
				return nil, fmt.Errorf("hexescape: incomplete hex escape \\x (need 2 digits, got %q)", string(in[i:]))
			}
			val, err := hex.DecodeString(string(in[i : i+2]))
			if err != nil {
				return nil, fmt.Errorf("hexescape: invalid hex escape \\x%s: %w", string(in[i:i+2]), err)
			}
			out.WriteByte(val[0])
			i += 2
		case 'u':
			i++
			b, err := codepoint(in, i, 4)
			if err != nil {
				return nil, err
			}
			out.WriteByte(b)
			i += 4
		case 'U':
			i++
			b, err := codepoint(in, i, 8)
			if err != nil {
				return nil, err
			}
			out.WriteByte(b)
			i += 8
		case '0', '1', '2', '3', '4', '5', '6', '7':
			b, n, err := octal(in, i)
			if err != nil {
				return nil, err
			}
			out.WriteByte(b)
			i += n
		default:
			// unrecognized escape: keep both characters literally
			out.WriteByte('\\')
			out.WriteByte(c)
			i++
		}
	}
	return out.Bytes(), nil
}

// codepoint parses the width hex digits of a \u or \U escape starting at
// in[i] and enforces the Latin-1 range.
func codepoint(in []byte, i, width int) (byte, error) {
	if i+width-1 >= len(in) {
		return 0, fmt.Errorf("hexescape: incomplete unicode escape (need %d digits, got %q)", width, string(in[i:]))
	}
	code, err := strconv.ParseInt(string(in[i:i+width]), 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hexescape: invalid unicode escape %s: %w", string(in[i:i+width]), err)
	}
	if code > 0xff {
		return 0, fmt.Errorf("hexescape: unicode escape U+%04X is outside Latin-1 range (U+0000-U+00FF)", code)
	}
	return byte(code), nil
}

// octal parses an octal escape of up to three digits starting at in[i]. A
// decimal digit directly after the consumed run invalidates the whole escape,
// matching unicode_escape's strictness (\08 and \79 are errors, \0a is not).
func octal(in []byte, i int) (byte, int, error) {
	start := i
	for i-start < 3 && i < len(in) && in[i] >= '0' && in[i] <= '7' {
		i++
	}
	if i < len(in) && in[i] >= '0' && in[i] <= '9' {
		return 0, 0, fmt.Errorf("hexescape: invalid octal escape \\%s", string(in[start:i+1]))
	}
	val, err := strconv.ParseInt(string(in[start:i]), 8, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("hexescape: invalid octal escape \\%s: %w", string(in[start:i]), err)
	}
	if val > 0xff {
		return 0, 0, fmt.Errorf("hexescape: octal escape \\%s (value %d) is too large for a byte", string(in[start:i]), val)
	}
	return byte(val), i - start, nil
}

// Repr renders b the way Python displays a bytes literal. Used for log
// previews of decoded payloads.
func Repr(b []byte) string {
	var sb strings.Builder
	sb.WriteString("b'")
	for _, c := range b {
		switch {
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\'':
			sb.WriteString(`\'`)
		case c == '\\':
			sb.WriteString(`\\`)
		case c >= 32 && c < 127:
			sb.WriteByte(c)
		default:
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0f])
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}
