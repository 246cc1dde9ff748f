// Package ansimarkup converts between a bracketed terminal markup language
// and raw ANSI SGR escape sequences, in both directions.
//
// Markup looks like this:
//
//	[bold @141 60]Hello [/italic underline]There![/]
//
// Each space-separated word inside a bracket is one tag: a style name, an
// unset tag ("/bold", "/fg", or the universal reset "/"), a named color, an
// 8-bit palette index, a 24-bit "r;g;b" triple, or a "#rrggbb" hex color.
// A leading "@" turns a color tag into a background color. Brackets are
// escapable with a backslash: "\[bold]" is literal text.
//
// # Quick Start
//
// Convert markup to ANSI and back:
//
//	ansi, err := ansimarkup.MarkupToANSI("[bold]hi[/]")
//	// "\x1b[1mhi\x1b[0m"
//
//	markup, err := ansimarkup.ANSIToMarkup("\x1b[1mhi\x1b[0m")
//	// "[bold]hi[/]"
//
// # Architecture
//
// The package is organized around these pieces:
//
//   - [Token]: the atomic unit both lexers produce - literal text or one
//     raw SGR code, classified by [Attribute]
//   - [TokenizeANSI] and [TokenizeMarkup]: lazy, restartable lexers
//   - [MarkupToANSI] and [ANSIToMarkup]: the converters
//   - [OptimizeANSI]: collapses redundant sequences without changing how
//     the string renders
//   - [PrettifyMarkup]: syntax-highlights markup for display
//
// # Tokenizers
//
// Both lexers return Go iterators (iter.Seq2), so token streams can be
// consumed partially and abandoned early:
//
//	for token, err := range ansimarkup.TokenizeMarkup("[bold]hi") {
//	    if err != nil {
//	        // unrecognized tag or malformed color
//	    }
//	    // token.Kind, token.Value, token.Attr
//	}
//
// The ANSI lexer recognizes SGR sequences (ESC[...m) and OSC sequences
// (ESC]...ESC\). Anything else - cursor positioning, other CSI sequences -
// passes through untouched as literal text. Two adjacent identical codes
// are collapsed into one token at lex time.
//
// # Colors
//
// Color tags resolve through the 256-color [Palette]: the 16 ANSI names
// ("red", "brightblue", ...) map to indices 0-15, every W3C color name maps
// to the nearest palette entry, and hex tags become 24-bit RGB sequences.
// Converting ANSI back to markup restores the 16 ANSI names exactly.
//
// # Errors
//
// All failures are synchronous and complete: a conversion either returns a
// full result or an error, never partial output. The error types are
// [UnrecognizedTagError], [ColorFormatError], [MalformedCodeError], and
// [MissingMappingError]; match them with errors.As.
//
// The package holds no cross-call state. The escape tables and palette are
// built once and never mutated, so any number of conversions may run
// concurrently.
package ansimarkup
