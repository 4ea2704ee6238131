package store

import (
	"io"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/logging"
)

var logger = &logging.Logger{PrefixText: "Store:", PrefixColor: logging.FgMagenta}

// SetLogger sets an optional destination for store logs.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(taxonomyID string, format string, args ...any) {
	logger.Logf(taxonomyID, format, args...)
}
