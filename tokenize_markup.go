package ansimarkup

import (
	"iter"
	"strconv"
	"strings"
)

// isTagStart reports whether c can open a tag body: lowercase letters,
// digits, and the '!', '#', '@', '/' sigils.
func isTagStart(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '!' || c == '#' || c == '@' || c == '/':
		return true
	}
	return false
}

// markupTagToken resolves one tag word into a code token. Interpretations
// are tried in order: style name, unset tag, named color, numeric/hex color.
func markupTagToken(start, end int, tag, source string) (Token, error) {
	if index := styleIndex(tag); index >= 0 {
		attr := AttrStyle
		if tag == "/" {
			attr = AttrClear
		}
		return newCode(start, end, strconv.Itoa(index), attr)
	}

	if code, ok := unsetMap[tag]; ok {
		return newCode(start, end, code, AttrClear)
	}

	if fragment, ok, err := resolveNamedColor(tag); err != nil {
		return Token{}, err
	} else if ok {
		return newCode(start, end, fragment.code, fragment.attribute())
	}

	if fragment, ok, err := resolveColor(tag); err != nil {
		return Token{}, err
	} else if ok {
		return newCode(start, end, fragment.code, fragment.attribute())
	}

	return Token{}, &UnrecognizedTagError{Tag: tag, Source: source}
}

// TokenizeMarkup lexes bracketed markup into a lazy token stream.
//
// A bracket group is zero or more backslashes followed by "[", a body whose
// first character is a lowercase letter, digit, or one of "!#@/", and the
// nearest "]" on the same line. Backslashed groups are escaped: the bracket
// text (minus the backslashes) is emitted as one plain token with
// AttrEscaped and its contents are not interpreted. Otherwise the body
// splits on whitespace and each word resolves to a code token; a word that
// matches nothing stops the stream with an UnrecognizedTagError.
//
// Text outside bracket groups, and brackets that do not match the grammar,
// pass through as plain tokens.
func TokenizeMarkup(text string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		pos := 0
		i := 0

		for i < len(text) {
			if text[i] != '\\' && text[i] != '[' {
				i++
				continue
			}

			start := i
			j := i
			for j < len(text) && text[j] == '\\' {
				j++
			}
			if j >= len(text) || text[j] != '[' {
				// Backslashes not followed by a bracket stay literal.
				i = j
				if j == start {
					i++
				}
				continue
			}

			if j+1 >= len(text) || !isTagStart(text[j+1]) {
				i = j + 1
				continue
			}

			closing := -1
			for k := j + 1; k < len(text); k++ {
				if text[k] == '\n' {
					break
				}
				if text[k] == ']' {
					closing = k
					break
				}
			}
			if closing < 0 {
				i = j + 1
				continue
			}
			end := closing + 1

			if start > pos {
				if !yield(newPlain(pos, start, text[pos:start]), nil) {
					return
				}
			}

			if j > start {
				// Escaped bracket: the backslashes are consumed here.
				if !yield(newEscaped(start, end, text[j:end]), nil) {
					return
				}
				pos = end
				i = end
				continue
			}

			for _, tag := range strings.Fields(text[j+1 : closing]) {
				token, err := markupTagToken(start, end, tag, text)
				if err != nil {
					yield(Token{}, err)
					return
				}
				if !yield(token, nil) {
					return
				}
			}

			pos = end
			i = end
		}

		if pos < len(text) {
			yield(newPlain(pos, len(text), text[pos:]), nil)
		}
	}
}
