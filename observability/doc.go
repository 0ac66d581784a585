// Package observability provides OpenTelemetry tracing and metrics for
// restkit clients.
//
// The HTTP transport wraps every network exchange in a span and records
// request counters when metrics are enabled. Applications that want
// exported telemetry call InitTracer/InitMeter once at startup:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("backend-client"))
//	defer tp.Shutdown(ctx)
package observability
