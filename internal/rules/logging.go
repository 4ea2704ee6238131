package rules

import (
	"io"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/logging"
)

var logger = &logging.Logger{PrefixText: "Rules:", PrefixColor: logging.FgCyan, OmitTaxonomy: true}

// SetLogger sets an optional destination for rule-matching logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(format string, args ...any) {
	logger.Logf("", format, args...)
}
