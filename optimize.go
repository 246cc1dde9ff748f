package ansimarkup

import "strings"

// OptimizeANSI canonicalizes an ANSI string without changing how it
// renders: duplicate codes collapse (the tokenizer already drops adjacent
// repeats), a style run identical to the one already in effect is not
// re-emitted, resets that would have no visible effect are dropped, and the
// result always ends with one universal reset.
//
// This is a greedy single pass: sequences are never reordered or merged
// across a text span. Applying it to its own output is a no-op.
func OptimizeANSI(ansi string) (string, error) {
	var out strings.Builder

	// pending collects code sequences since the last text run; active is
	// the last run actually written, i.e. the styles in effect in out.
	pending := ""
	active := ""

	for token, err := range TokenizeANSI(ansi) {
		if err != nil {
			return "", err
		}

		if token.Kind == KindCode {
			if token.Value == "0" {
				if active != "" {
					out.WriteString(ResetSequence)
					active = ""
				}
				pending = ""
				continue
			}
			pending += token.Sequence()
			continue
		}

		if pending != active {
			out.WriteString(pending)
			active = pending
		}
		pending = ""
		out.WriteString(token.Value)
	}

	result := out.String()
	if !strings.HasSuffix(result, ResetSequence) {
		result += ResetSequence
	}
	return result, nil
}
