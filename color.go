package ansimarkup

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// colorFragment is a resolved SGR color payload, of the form
// {38|48};{5|2};<components>, plus the fore/background split.
type colorFragment struct {
	code       string
	background bool
}

func (f colorFragment) attribute() Attribute {
	if f.background {
		return AttrBackgroundColor
	}
	return AttrColor
}

// isColorCandidate reports whether every character of tag could belong to a
// color: digits, '#', ';', '@', or hex letters.
func isColorCandidate(tag string) bool {
	if tag == "" {
		return false
	}
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		case c == '#' || c == ';' || c == '@':
		default:
			return false
		}
	}
	return true
}

// resolveColor turns a numeric or hex color tag into an SGR fragment.
// ok=false means the tag is not a color candidate at all and the caller
// should try other interpretations; a candidate that fails to parse is a
// ColorFormatError.
func resolveColor(tag string) (colorFragment, bool, error) {
	if !isColorCandidate(tag) {
		return colorFragment{}, false, nil
	}

	prefix := "38;"
	body := tag
	if strings.HasPrefix(body, "@") {
		prefix = "48;"
		body = body[1:]
	}

	hex := strings.HasPrefix(body, "#")

	// 8-bit (256) and 24-bit (RGB) colors use different id numbers
	depth := "5;"
	if hex || strings.Count(body, ";") >= 2 {
		depth = "2;"
	}

	if hex {
		r, g, b, err := translateHex(body)
		if err != nil {
			return colorFragment{}, true, err
		}
		body = fmt.Sprintf("%d;%d;%d", r, g, b)
	} else {
		parts := strings.Split(body, ";")
		if len(parts) != 1 && len(parts) != 3 {
			return colorFragment{}, true, &ColorFormatError{Tag: tag, Reason: "want 1 or 3 components"}
		}
		for _, part := range parts {
			if !isDigits(part) {
				return colorFragment{}, true, &ColorFormatError{Tag: tag, Reason: "non-digit component"}
			}
			if n, err := strconv.Atoi(part); err != nil || n > 255 {
				return colorFragment{}, true, &ColorFormatError{Tag: tag, Reason: "component out of range"}
			}
		}
	}

	return colorFragment{code: prefix + depth + body, background: prefix == "48;"}, true, nil
}

// resolveNamedColor looks the tag up in the color-name registry and, if
// found, rewrites it as an 8-bit numeric tag resolved through resolveColor.
func resolveNamedColor(tag string) (colorFragment, bool, error) {
	name := strings.TrimPrefix(tag, "@")
	index, ok := ColorIndex(name)
	if !ok {
		return colorFragment{}, false, nil
	}

	numeric := strconv.Itoa(int(index))
	if strings.HasPrefix(tag, "@") {
		numeric = "@" + numeric
	}
	return resolveColor(numeric)
}

// translateHex converts "#RRGGBB" (or short "#RGB") to its RGB components.
func translateHex(tag string) (r, g, b uint8, err error) {
	if len(tag) != 7 && len(tag) != 4 {
		return 0, 0, 0, &ColorFormatError{Tag: tag, Reason: "not a hex color"}
	}
	c, parseErr := colorful.Hex(tag)
	if parseErr != nil {
		return 0, 0, 0, &ColorFormatError{Tag: tag, Reason: "not a hex color"}
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}
