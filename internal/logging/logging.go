package logging

import (
	"fmt"
	"io"
	"strings"
)

// Logger is a tiny opt-in logger used across internal packages.
// When Writer is nil, logging is disabled.
//
// The output format is:
//
//	<ColoredPrefix> taxonomy=<id> <formattedMessage>\n
//
// where <id> is trimmed and defaults to "(unsaved)".
type Logger struct {
	Writer io.Writer

	PrefixText  string
	PrefixColor string

	// OmitTaxonomy controls whether the taxonomy ID field is written.
	// When false (default), output includes: "taxonomy=<id>".
	OmitTaxonomy bool
}

func (l *Logger) SetWriter(w io.Writer) { l.Writer = w }

func (l *Logger) Enabled() bool { return l != nil && l.Writer != nil }

func (l *Logger) Logf(taxonomyID string, format string, args ...any) {
	if l == nil || l.Writer == nil {
		return
	}
	prefix := l.PrefixText
	if prefix == "" {
		prefix = "Log:"
	}
	if l.PrefixColor != "" {
		prefix = Color(prefix, l.PrefixColor)
	}
	msg := fmt.Sprintf(format, args...)
	if l.OmitTaxonomy {
		fmt.Fprintf(l.Writer, "%s %s\n", prefix, msg)
		return
	}

	id := strings.TrimSpace(taxonomyID)
	if id == "" {
		id = "(unsaved)"
	}
	fmt.Fprintf(l.Writer, "%s taxonomy=%s %s\n", prefix, id, msg)
}
