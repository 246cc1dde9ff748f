package ansimarkup

import (
	"fmt"
	"strconv"
	"strings"
)

// Colors used by the pretty-printer itself: warm red for clears and escape
// markers, soft green for style names.
const (
	clearTagColor = 210
	styleTagColor = 114
)

const boldSequence = "\x1b[1m"

// boldText wraps text in a bold sequence and a reset.
func boldText(text string) string {
	return boldSequence + text + ResetSequence
}

// fgText wraps text in an 8-bit foreground color sequence and a reset.
func fgText(text string, index uint8) string {
	return fmt.Sprintf("\x1b[38;5;%dm%s%s", index, text, ResetSequence)
}

// styleBracket renders the tokens of one bracket with per-kind highlighting,
// wrapped in bold delimiters.
func styleBracket(tokens []Token) (string, error) {
	var out strings.Builder
	out.WriteString(boldText("["))

	for i, token := range tokens {
		if i > 0 {
			out.WriteString(" ")
		}

		name, err := token.Name()
		if err != nil {
			return "", err
		}

		switch token.Attr {
		case AttrClear:
			out.WriteString(fgText(name, clearTagColor))
		case AttrColor:
			// Color tags display in their own color.
			out.WriteString(token.Sequence() + name + ResetSequence)
		case AttrBackgroundColor:
			// Background tags display as the bold foreground version.
			sequence := strings.Replace(token.Sequence(), "[48", "[38", 1)
			out.WriteString(boldSequence + sequence + name + ResetSequence)
		default:
			out.WriteString(token.Sequence())
			out.WriteString(fgText(name, styleTagColor))
		}
	}

	out.WriteString(boldText("]"))
	return out.String(), nil
}

// PrettifyMarkup returns markup with its syntax highlighted: brackets in
// bold, clears and escape markers in one color, style names in another,
// color tags in the color they name. Literal text between brackets renders
// with the styles that would actually apply to it, so the output previews
// the markup while still showing every tag.
func PrettifyMarkup(markup string) (string, error) {
	var visual []Token
	var applied []string
	var out strings.Builder

	for token, err := range TokenizeMarkup(markup) {
		if err != nil {
			return "", err
		}

		if token.Kind == KindCode {
			if token.Attr == AttrClear {
				name, err := token.Name()
				if err != nil {
					return "", err
				}
				if name == "/" {
					applied = applied[:0]
				} else if code, err := strconv.Atoi(token.Value); err == nil {
					// Map the unsetter back to its setter sequence and
					// toggle that style off. 22 clears bold (1); the other
					// unsetters sit 20 above their setter.
					offset := 20
					if token.Value == "22" {
						offset = 21
					}
					sequence := fmt.Sprintf("\x1b[%dm", code-offset)
					for i, it := range applied {
						if it == sequence {
							applied = append(applied[:i], applied[i+1:]...)
							break
						}
					}
				}
			}

			applied = append(applied, token.Sequence())
			visual = append(visual, token)
			continue
		}

		if len(visual) > 0 {
			styled, err := styleBracket(visual)
			if err != nil {
				return "", err
			}
			out.WriteString(styled)
			visual = visual[:0]
		}

		text := token.Value
		if token.Attr == AttrEscaped {
			// Rendered escaped brackets keep a visible escape marker.
			text = fgText("\\"+text[:1], clearTagColor) + text[1:]
		}
		out.WriteString(strings.Join(applied, "") + text + ResetSequence)
	}

	if len(visual) > 0 {
		styled, err := styleBracket(visual)
		if err != nil {
			return "", err
		}
		out.WriteString(styled)
	}

	return out.String(), nil
}
