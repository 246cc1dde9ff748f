package ansimarkup

import (
	"strconv"
	"strings"
)

// Kind discriminates the two token payloads.
type Kind int

const (
	// KindPlain marks literal text passed through unchanged.
	KindPlain Kind = iota
	// KindCode marks a raw SGR payload (digits and ';').
	KindCode
)

// Attribute classifies a code token, or marks plain text that came from an
// escaped bracket.
type Attribute int

const (
	// AttrNone is an unclassified code.
	AttrNone Attribute = iota
	// AttrClear is the universal reset or a style unsetter.
	AttrClear
	// AttrColor is a foreground color code.
	AttrColor
	// AttrBackgroundColor is a background color code.
	AttrBackgroundColor
	// AttrStyle is a style code within the style-name range.
	AttrStyle
	// AttrEscaped marks plain text that originated from an escaped bracket
	// and must not be re-interpreted as a tag.
	AttrEscaped
)

// Token is the atomic unit produced by both tokenizers. Start and End are
// the half-open byte range of the source match, kept for diagnostics.
//
// Value holds either literal text (KindPlain) or the raw SGR payload
// (KindCode). Code tokens only exist with a syntactically valid payload;
// both tokenizers reject input that would produce anything else.
type Token struct {
	Start int
	End   int
	Kind  Kind
	Value string
	Attr  Attribute
}

// newPlain builds a literal-text token.
func newPlain(start, end int, text string) Token {
	return Token{Start: start, End: end, Kind: KindPlain, Value: text}
}

// newEscaped builds a literal-text token for an escaped bracket.
func newEscaped(start, end int, text string) Token {
	return Token{Start: start, End: end, Kind: KindPlain, Value: text, Attr: AttrEscaped}
}

// newCode builds a code token, rejecting payloads that are not digits and
// semicolons.
func newCode(start, end int, code string, attr Attribute) (Token, error) {
	if !validSGRPayload(code) {
		return Token{}, &MalformedCodeError{Code: code}
	}
	return Token{Start: start, End: end, Kind: KindCode, Value: code, Attr: attr}, nil
}

// validSGRPayload reports whether s contains only digits and semicolons.
// The empty payload is allowed; terminals treat ESC[m as a reset.
func validSGRPayload(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && c != ';' {
			return false
		}
	}
	return true
}

// Name inverse-maps the token to a markup tag name. Plain tokens return
// their text unchanged. Digit-only codes prefer the unset tag whose code
// matches, then the style name at that index. Color codes gain a "@" prefix
// for backgrounds and return either a registered color name or the raw
// numeric payload after the 38/48 prefix.
func (t Token) Name() (string, error) {
	if t.Kind == KindPlain {
		return t.Value, nil
	}

	if isDigits(t.Value) {
		if name, ok := unsetName(t.Value); ok {
			return name, nil
		}
		index, err := strconv.Atoi(t.Value)
		if err != nil || index >= len(styleNames) {
			return "", &MalformedCodeError{Code: t.Value}
		}
		return styleNames[index], nil
	}

	parts := strings.Split(t.Value, ";")
	if len(parts) < 3 {
		return "", &MalformedCodeError{Code: t.Value}
	}
	for _, part := range parts {
		if !isDigits(part) {
			return "", &MalformedCodeError{Code: t.Value}
		}
	}

	prefix := ""
	if parts[0] == "48" {
		prefix = "@"
	}

	if len(parts) == 3 {
		if index, err := strconv.Atoi(parts[2]); err == nil && index < 256 {
			if name, ok := PaletteName(uint8(index)); ok {
				return prefix + name, nil
			}
		}
	}

	return prefix + strings.Join(parts[2:], ";"), nil
}

// Sequence renders the token as it would be written to a terminal: plain
// text as-is, codes wrapped in ESC[...m.
func (t Token) Sequence() string {
	if t.Kind == KindPlain {
		return t.Value
	}
	return "\x1b[" + t.Value + "m"
}

// Unsetter returns the SGR code that cancels this token's effect. Colors
// and background colors each have one universal unsetter (39 and 49).
// Plain tokens have no effect to cancel and return "".
func (t Token) Unsetter() (string, error) {
	if t.Kind == KindPlain {
		return "", nil
	}

	switch t.Attr {
	case AttrClear:
		name, err := t.Name()
		if err != nil {
			return "", err
		}
		code, ok := unsetMap[name]
		if !ok {
			return "", &MissingMappingError{Name: name}
		}
		return code, nil
	case AttrColor:
		return unsetMap["/fg"], nil
	case AttrBackgroundColor:
		return unsetMap["/bg"], nil
	}

	name, err := t.Name()
	if err != nil {
		return "", err
	}
	code, ok := unsetMap["/"+name]
	if !ok {
		return "", &MissingMappingError{Name: name}
	}
	return code, nil
}

// Setter returns the SGR code of the style this unset token corresponds to.
// It is meaningful only for AttrClear tokens other than the universal reset;
// everything else returns "". "/fg" and "/bg" also return "": restoring a
// default color does not correspond to one settable style.
func (t Token) Setter() (string, error) {
	if t.Kind == KindPlain || t.Attr != AttrClear {
		return "", nil
	}
	if t.Value == "0" {
		return "", nil
	}

	name, err := t.Name()
	if err != nil {
		return "", err
	}
	if name == "/fg" || name == "/bg" {
		return "", nil
	}

	index := styleIndex(strings.TrimPrefix(name, "/"))
	if index < 0 {
		return "", &MissingMappingError{Name: name}
	}
	return strconv.Itoa(index), nil
}
