package ansimarkup

import (
	"errors"
	"testing"
)

func TestResolveColorPalette(t *testing.T) {
	fragment, ok, err := resolveColor("141")
	if err != nil || !ok {
		t.Fatalf("resolveColor: ok=%v err=%v", ok, err)
	}
	if fragment.code != "38;5;141" || fragment.background {
		t.Errorf("got %+v", fragment)
	}
}

func TestResolveColorBackground(t *testing.T) {
	fragment, ok, err := resolveColor("@141")
	if err != nil || !ok {
		t.Fatalf("resolveColor: ok=%v err=%v", ok, err)
	}
	if fragment.code != "48;5;141" || !fragment.background {
		t.Errorf("got %+v", fragment)
	}
}

func TestResolveColorRGB(t *testing.T) {
	fragment, ok, err := resolveColor("255;0;85")
	if err != nil || !ok {
		t.Fatalf("resolveColor: ok=%v err=%v", ok, err)
	}
	if fragment.code != "38;2;255;0;85" {
		t.Errorf("got %+v", fragment)
	}
}

func TestResolveColorHex(t *testing.T) {
	tests := []struct {
		tag  string
		code string
	}{
		{"#ff0055", "38;2;255;0;85"},
		{"#FF0055", "38;2;255;0;85"},
		{"@#ff0055", "48;2;255;0;85"},
	}

	for _, tt := range tests {
		fragment, ok, err := resolveColor(tt.tag)
		if err != nil || !ok {
			t.Fatalf("resolveColor(%q): ok=%v err=%v", tt.tag, ok, err)
		}
		if fragment.code != tt.code {
			t.Errorf("resolveColor(%q) = %q, want %q", tt.tag, fragment.code, tt.code)
		}
	}
}

func TestResolveColorNotACandidate(t *testing.T) {
	for _, tag := range []string{"bold", "xyz", "/", "", "!save"} {
		_, ok, err := resolveColor(tag)
		if ok || err != nil {
			t.Errorf("resolveColor(%q): expected ok=false err=nil, got ok=%v err=%v", tag, ok, err)
		}
	}
}

func TestResolveColorMalformed(t *testing.T) {
	for _, tag := range []string{"ab", "1;2", "1;2;3;4", "300", "#ff005"} {
		_, _, err := resolveColor(tag)
		var formatErr *ColorFormatError
		if !errors.As(err, &formatErr) {
			t.Errorf("resolveColor(%q): expected ColorFormatError, got %v", tag, err)
		}
	}
}

func TestResolveNamedColor(t *testing.T) {
	fragment, ok, err := resolveNamedColor("red")
	if err != nil || !ok {
		t.Fatalf("resolveNamedColor: ok=%v err=%v", ok, err)
	}
	if fragment.code != "38;5;1" {
		t.Errorf("got %+v", fragment)
	}

	fragment, ok, err = resolveNamedColor("@blue")
	if err != nil || !ok {
		t.Fatalf("resolveNamedColor: ok=%v err=%v", ok, err)
	}
	if fragment.code != "48;5;4" || !fragment.background {
		t.Errorf("got %+v", fragment)
	}
}

func TestResolveNamedColorUnknown(t *testing.T) {
	_, ok, err := resolveNamedColor("nosuchcolor")
	if ok || err != nil {
		t.Errorf("expected ok=false err=nil, got ok=%v err=%v", ok, err)
	}
}
