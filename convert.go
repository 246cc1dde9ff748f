package ansimarkup

import "strings"

// ResetSequence is the universal reset, SGR 0.
const ResetSequence = "\x1b[0m"

// convertConfig holds converter settings; both default to on.
type convertConfig struct {
	ensureReset    bool
	ensureOptimize bool
}

// ConvertOption configures MarkupToANSI and ANSIToMarkup.
type ConvertOption func(*convertConfig)

// WithoutReset disables the guaranteed trailing universal reset.
func WithoutReset() ConvertOption {
	return func(c *convertConfig) {
		c.ensureReset = false
	}
}

// WithoutOptimize skips the optimizer pass in MarkupToANSI.
func WithoutOptimize() ConvertOption {
	return func(c *convertConfig) {
		c.ensureOptimize = false
	}
}

func newConvertConfig(opts []ConvertOption) convertConfig {
	config := convertConfig{ensureReset: true, ensureOptimize: true}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// MarkupToANSI renders markup into an ANSI escape-sequence string.
//
// The result always ends with the universal reset unless WithoutReset is
// given, and is passed through OptimizeANSI unless WithoutOptimize is
// given. Unrecognized tags and malformed colors fail the whole call; no
// partial output is returned.
func MarkupToANSI(markup string, opts ...ConvertOption) (string, error) {
	config := newConvertConfig(opts)

	var out strings.Builder
	for token, err := range TokenizeMarkup(markup) {
		if err != nil {
			return "", err
		}
		out.WriteString(token.Sequence())
	}

	ansi := out.String()
	if config.ensureReset && !strings.HasSuffix(ansi, ResetSequence) {
		ansi += ResetSequence
	}
	if config.ensureOptimize {
		return OptimizeANSI(ansi)
	}
	return ansi, nil
}

// ANSIToMarkup renders an ANSI escape-sequence string into markup.
//
// Consecutive code tokens batch into a single bracket, emitted when the
// next run of plain text arrives. A universal reset discards the pending
// bracket and opens a "/" bracket instead, unless nothing has been written
// yet. Literal text keeps its meaning on re-parse: a leading "[" in a text
// run is escaped. Unless WithoutReset is given, a missing trailing reset is
// appended before tokenizing so the output markup is closed.
func ANSIToMarkup(ansi string, opts ...ConvertOption) (string, error) {
	config := newConvertConfig(opts)

	if config.ensureReset && !strings.HasSuffix(ansi, ResetSequence) {
		ansi += ResetSequence
	}

	var out strings.Builder
	var bracket []string

	flush := func() {
		if len(bracket) == 0 {
			return
		}
		out.WriteString("[")
		out.WriteString(strings.Join(bracket, " "))
		out.WriteString("]")
		bracket = bracket[:0]
	}

	for token, err := range TokenizeANSI(ansi) {
		if err != nil {
			return "", err
		}

		if token.Kind == KindCode {
			if token.Value == "0" {
				bracket = bracket[:0]
				if out.Len() > 0 {
					bracket = append(bracket, "/")
				}
				continue
			}

			name, err := token.Name()
			if err != nil {
				return "", err
			}
			bracket = append(bracket, name)
			continue
		}

		flush()
		out.WriteString(strings.Replace(token.Value, "[", "\\[", 1))
	}

	flush()
	return out.String(), nil
}
