package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_EnabledAndSetWriter(t *testing.T) {
	var l Logger
	if l.Enabled() {
		t.Fatalf("expected disabled when Writer is nil")
	}

	var buf bytes.Buffer
	l.SetWriter(&buf)
	if !l.Enabled() {
		t.Fatalf("expected enabled after setting Writer")
	}
}

func TestLogger_Logf_WritesPrefixTaxonomyAndMessage(t *testing.T) {
	Init(true) // disable ANSI color for stable assertions
	t.Cleanup(func() { Init(false) })

	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "X:", PrefixColor: FgGreen}
	l.Logf("  taxonomy_1_abc  ", "msg %d", 1)

	out := buf.String()
	if out != "X: taxonomy=taxonomy_1_abc msg 1\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestLogger_Logf_EmptyID_UsesUnsaved(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "X:"}
	l.Logf("   ", "x")

	if out := buf.String(); !strings.Contains(out, "taxonomy=(unsaved)") {
		t.Fatalf("expected unsaved placeholder, got %q", out)
	}
}

func TestLogger_Logf_DefaultPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Writer: &buf}
	l.Logf("taxonomy_1", "x")

	if out := buf.String(); !strings.HasPrefix(out, "Log:") {
		t.Fatalf("expected default prefix, got %q", out)
	}
}

func TestLogger_Logf_OmitTaxonomy(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{Writer: &buf, PrefixText: "X:", OmitTaxonomy: true}
	l.Logf("taxonomy_1", "x")

	if out := buf.String(); out != "X: x\n" {
		t.Fatalf("output = %q, want %q", out, "X: x\\n")
	}
}

func TestLogger_Logf_NilReceiver_NoPanic(t *testing.T) {
	var l *Logger
	l.Logf("taxonomy_1", "x")
}

func TestColor(t *testing.T) {
	if got, want := Color("hello", FgGreen), FgGreen+"hello"+Reset; got != want {
		t.Fatalf("Color() = %q, want %q", got, want)
	}
	if got := Color("hello", ""); got != "hello" {
		t.Fatalf("Color() with empty code = %q", got)
	}

	Init(true)
	t.Cleanup(func() { Init(false) })
	if got := Color("hello", FgRed); got != "hello" {
		t.Fatalf("Color() with color disabled = %q", got)
	}
}
