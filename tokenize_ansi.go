package ansimarkup

import (
	"iter"
	"strconv"
	"strings"
)

const escByte = 0x1b

// classifyCode derives a code token's attribute once, at construction.
func classifyCode(code string) Attribute {
	switch {
	case strings.HasPrefix(code, "38;"):
		return AttrColor
	case strings.HasPrefix(code, "48;"):
		return AttrBackgroundColor
	case code == "0":
		return AttrClear
	}

	if isDigits(code) {
		if n, err := strconv.Atoi(code); err == nil && n < len(styleNames) {
			return AttrStyle
		}
	}
	if isUnsetValue(code) {
		return AttrClear
	}
	return AttrNone
}

// scanSGRPayload reads an SGR payload starting right after "ESC[". It
// accepts only digits and semicolons terminated by 'm'; anything else is
// not an SGR sequence and stays literal text.
func scanSGRPayload(text string, from int) (payload string, end int, ok bool) {
	i := from
	for i < len(text) {
		c := text[i]
		if c == 'm' {
			return text[from:i], i + 1, true
		}
		if (c < '0' || c > '9') && c != ';' {
			return "", 0, false
		}
		i++
	}
	return "", 0, false
}

// TokenizeANSI lexes text containing ANSI escape sequences into a lazy
// token stream.
//
// SGR sequences (ESC[...m with a digits-and-semicolons payload) become code
// tokens; everything else, including OSC sequences (ESC]...ESC\) and CSI
// sequences with other terminators such as cursor positioning, passes
// through as plain text. A code token identical to the immediately
// preceding one is suppressed, so the stream never carries two adjacent
// equal codes.
//
// The sequence is finite and restartable; callers may stop consuming at any
// point. Lexing itself cannot fail, but the iterator is an iter.Seq2 to
// match TokenizeMarkup.
func TokenizeANSI(text string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		pos := 0
		i := 0
		prevCode := ""
		prevWasCode := false

		for i < len(text) {
			if text[i] != escByte || i+1 >= len(text) {
				i++
				continue
			}

			switch text[i+1] {
			case '[':
				payload, end, ok := scanSGRPayload(text, i+2)
				if !ok {
					i += 2
					continue
				}

				if i > pos {
					if !yield(newPlain(pos, i, text[pos:i]), nil) {
						return
					}
					prevWasCode = false
				}

				if !prevWasCode || prevCode != payload {
					token, err := newCode(i, end, payload, classifyCode(payload))
					if err != nil {
						yield(Token{}, err)
						return
					}
					if !yield(token, nil) {
						return
					}
				}
				prevCode = payload
				prevWasCode = true

				pos = end
				i = end
			case ']':
				// OSC: recognized but passed through as literal text.
				rest := strings.Index(text[i+2:], "\x1b\\")
				if rest < 0 {
					i += 2
					continue
				}
				i += 2 + rest + 2
			default:
				i++
			}
		}

		if pos < len(text) {
			yield(newPlain(pos, len(text), text[pos:]), nil)
		}
	}
}
