package evaluator

import (
	"io"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/logging"
)

var logger = &logging.Logger{PrefixText: "Evaluate:", PrefixColor: logging.FgGreen, OmitTaxonomy: true}

// SetLogger sets an optional destination for evaluation logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(format string, args ...any) {
	logger.Logf("", format, args...)
}
