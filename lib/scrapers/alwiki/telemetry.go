package alwiki

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("aldb.lib.scrapers.alwiki")
