package ansimarkup

import (
	"errors"
	"strings"
	"testing"
)

func TestPrettifyMarkupBold(t *testing.T) {
	got, err := PrettifyMarkup("[bold]hi")
	if err != nil {
		t.Fatalf("PrettifyMarkup: %v", err)
	}

	want := "\x1b[1m[\x1b[0m" + // bold opening delimiter
		"\x1b[1m" + "\x1b[38;5;114mbold\x1b[0m" + // tag's own sequence, name in green
		"\x1b[1m]\x1b[0m" + // bold closing delimiter
		"\x1b[1mhi\x1b[0m" // text rendered with the applied style
	if got != want {
		t.Errorf("got %q, want %q", EscapeANSI(got), EscapeANSI(want))
	}
}

func TestPrettifyMarkupClearTag(t *testing.T) {
	got, err := PrettifyMarkup("[/bold]x")
	if err != nil {
		t.Fatalf("PrettifyMarkup: %v", err)
	}

	if !strings.Contains(got, "\x1b[38;5;210m/bold\x1b[0m") {
		t.Errorf("expected clear tag rendered in color 210, got %q", EscapeANSI(got))
	}
	// The unsetter itself still applies to following text.
	if !strings.Contains(got, "\x1b[22mx\x1b[0m") {
		t.Errorf("expected text under the unset sequence, got %q", EscapeANSI(got))
	}
}

func TestPrettifyMarkupClearRemovesAppliedStyle(t *testing.T) {
	got, err := PrettifyMarkup("[bold]a[/bold]b")
	if err != nil {
		t.Fatalf("PrettifyMarkup: %v", err)
	}

	// After [/bold], the bold sequence must no longer precede literal text.
	tail := got[strings.LastIndex(got, "/bold"):]
	if strings.Contains(tail, "\x1b[1mb") {
		t.Errorf("bold still applied after its unsetter: %q", EscapeANSI(got))
	}
}

func TestPrettifyMarkupColorTagShowsItsColor(t *testing.T) {
	got, err := PrettifyMarkup("[141]x")
	if err != nil {
		t.Fatalf("PrettifyMarkup: %v", err)
	}

	if !strings.Contains(got, "\x1b[38;5;141m141\x1b[0m") {
		t.Errorf("expected color tag rendered in its own color, got %q", EscapeANSI(got))
	}
}

func TestPrettifyMarkupBackgroundShownAsForeground(t *testing.T) {
	got, err := PrettifyMarkup("[@141]x")
	if err != nil {
		t.Fatalf("PrettifyMarkup: %v", err)
	}

	if !strings.Contains(got, "\x1b[1m\x1b[38;5;141m@141\x1b[0m") {
		t.Errorf("expected background tag rendered as bold foreground, got %q", EscapeANSI(got))
	}
}

func TestPrettifyMarkupUniversalResetClearsApplied(t *testing.T) {
	got, err := PrettifyMarkup("[bold]a[/]b")
	if err != nil {
		t.Fatalf("PrettifyMarkup: %v", err)
	}

	// b renders after [/]: only the reset sequence may precede it.
	index := strings.LastIndex(got, "b\x1b[0m")
	if index < 0 {
		t.Fatalf("cannot locate trailing text in %q", EscapeANSI(got))
	}
	if !strings.HasSuffix(got[:index], "\x1b[0m") {
		t.Errorf("expected b to render under the reset only, got %q", EscapeANSI(got))
	}
}

func TestPrettifyMarkupEscapedBracket(t *testing.T) {
	got, err := PrettifyMarkup(`\[bold]`)
	if err != nil {
		t.Fatalf("PrettifyMarkup: %v", err)
	}

	if !strings.Contains(got, "\x1b[38;5;210m\\[\x1b[0m") {
		t.Errorf("expected escape marker in color 210, got %q", EscapeANSI(got))
	}
	if !strings.Contains(got, "bold]") {
		t.Errorf("expected bracket body kept literal, got %q", EscapeANSI(got))
	}
}

func TestPrettifyMarkupUnrecognizedTag(t *testing.T) {
	_, err := PrettifyMarkup("[nosuchtag]")

	var unrecognized *UnrecognizedTagError
	if !errors.As(err, &unrecognized) {
		t.Fatalf("expected UnrecognizedTagError, got %v", err)
	}
}
