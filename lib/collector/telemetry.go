package collector

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("aldb.lib.collector")
