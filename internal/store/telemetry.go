package store

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var tracer = otel.Tracer("github.com/idlab-discover/dt-taxonomy-cli/internal/store")
var meter = otel.Meter("github.com/idlab-discover/dt-taxonomy-cli/internal/store")

const (
	// attrRecordID associates a span with the saved taxonomy it touches.
	attrRecordID = "taxonomy.id"
	// attrOperation names the store mutation that hit a write conflict.
	attrOperation = "store.op"
)

var (
	// importRejected counts import records discarded by validation.
	importRejected metric.Int64Counter
	// writeConflicts counts conditional writes that lost against another
	// writer and had to be retried.
	//
	// Each record is associated with attrOperation.
	writeConflicts metric.Int64Counter
)

func init() {
	var err error
	importRejected, err = meter.Int64Counter(
		"store.import.rejected",
		metric.WithDescription("The number of imported records discarded because they failed validation."),
	)
	if err != nil {
		panic("store: failed to init 'store.import.rejected' instrument")
	}

	writeConflicts, err = meter.Int64Counter(
		"store.write.conflicts",
		metric.WithDescription("The number of collection writes rejected because the slot revision changed."),
	)
	if err != nil {
		panic("store: failed to init 'store.write.conflicts' instrument")
	}
}

func recordRejected(ctx context.Context, n int) {
	if n == 0 {
		return
	}
	importRejected.Add(ctx, int64(n))
}

func recordConflict(ctx context.Context, op string) {
	attrs := attribute.NewSet(attribute.String(attrOperation, op))
	writeConflicts.Add(ctx, 1, metric.WithAttributeSet(attrs))
}
