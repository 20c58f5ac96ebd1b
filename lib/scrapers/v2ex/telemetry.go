package v2ex

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("v2ex.lib.scrapers.v2ex")
