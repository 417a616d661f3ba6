package tracing

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var allowedSpanKeys = map[attribute.Key]struct{}{
	"http.method":      {},
	"http.route":       {},
	"http.status_code": {},
	"claim.status":     {},
	"error.type":       {},
}

// SafeAttributes drops span attributes that could carry tenant identifiers
// or request payloads. Only allowlisted keys are recorded.
func SafeAttributes(attrs ...attribute.KeyValue) []attribute.KeyValue {
	filtered := make([]attribute.KeyValue, 0, len(attrs))
	for _, attr := range attrs {
		if _, ok := allowedSpanKeys[attr.Key]; !ok {
			continue
		}
		filtered = append(filtered, attr)
	}
	return filtered
}

// SafeError records an error class on the span without the error message,
// which may embed identifiers from the failing statement.
func SafeError(span trace.Span, errType string) {
	if span == nil || !span.IsRecording() {
		return
	}
	span.SetAttributes(attribute.String("error.type", errType))
}
