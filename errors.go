package ansimarkup

import "fmt"

// UnrecognizedTagError reports a markup tag that matches no style name,
// unset mapping, named color, or numeric/hex color grammar.
type UnrecognizedTagError struct {
	// Tag is the offending tag word.
	Tag string
	// Source is the full markup string the tag was found in.
	Source string
}

func (e *UnrecognizedTagError) Error() string {
	return fmt.Sprintf("markup tag %q in string %q is not recognized", e.Tag, EscapeANSI(e.Source))
}

// ColorFormatError reports a color tag that looked like a color but could
// not be resolved: a malformed hex value, a component count other than 1 or
// 3, or a non-digit component.
type ColorFormatError struct {
	// Tag is the color tag that failed to resolve.
	Tag string
	// Reason describes what was wrong with it.
	Reason string
}

func (e *ColorFormatError) Error() string {
	return fmt.Sprintf("invalid color tag %q: %s", e.Tag, e.Reason)
}

// MalformedCodeError reports an SGR payload that cannot be mapped back to a
// tag name: a bare numeric code outside the style range, or a color code
// with fewer than 3 parts or non-numeric parts.
type MalformedCodeError struct {
	// Code is the raw SGR payload.
	Code string
}

func (e *MalformedCodeError) Error() string {
	return fmt.Sprintf("malformed SGR code %q", EscapeANSI(e.Code))
}

// MissingMappingError reports a style name with no registered set or unset
// code. It indicates an inconsistency in the built-in tables, not bad input.
type MissingMappingError struct {
	// Name is the style name that has no mapping.
	Name string
}

func (e *MissingMappingError) Error() string {
	return fmt.Sprintf("no set/unset mapping registered for %q", e.Name)
}
