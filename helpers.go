package ansimarkup

import (
	"strings"

	"github.com/unilibs/uniwidth"
)

// StripANSI removes escape sequences from s, keeping only printable text.
// CSI sequences run to their final byte (any terminator, not just SGR's
// 'm'), OSC sequences to ESC\ or BEL.
func StripANSI(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	i := 0
	for i < len(s) {
		if s[i] != escByte || i+1 >= len(s) {
			out.WriteByte(s[i])
			i++
			continue
		}

		switch s[i+1] {
		case '[':
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			if j < len(s) {
				j++
			}
			i = j
		case ']':
			j := i + 2
			for j < len(s) {
				if s[j] == 0x07 {
					j++
					break
				}
				if s[j] == escByte && j+1 < len(s) && s[j+1] == '\\' {
					j += 2
					break
				}
				j++
			}
			i = j
		default:
			i += 2
		}
	}

	return out.String()
}

// RealLength returns the display width of s once a terminal has consumed
// its escape sequences: wide runes (CJK, emoji) count 2, zero-width runes
// count 0.
func RealLength(s string) int {
	return uniwidth.StringWidth(StripANSI(s))
}

// EscapeANSI makes escape characters visible as "\x1b", for diagnostics.
func EscapeANSI(s string) string {
	return strings.ReplaceAll(s, "\x1b", `\x1b`)
}

// Escape backslash-escapes every opening bracket so the text survives a
// markup parse as literal.
func Escape(markup string) string {
	return strings.ReplaceAll(markup, "[", `\[`)
}
