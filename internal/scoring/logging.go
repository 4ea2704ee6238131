package scoring

import (
	"io"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/logging"
)

var logger = &logging.Logger{PrefixText: "Scoring:", PrefixColor: logging.FgYellow, OmitTaxonomy: true}

// SetLogger sets an optional destination for scoring logs.
// When set to nil, scoring logs are disabled.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(format string, args ...any) {
	logger.Logf("", format, args...)
}
