// Package observability wires OpenTelemetry tracing and metrics into the
// NDEx client.
//
// Every HTTP exchange runs inside a span named "ndex.request" and, when a
// Metrics value is supplied to the transport, updates the request counters.
// Without InitTracer/InitMeter the global no-op providers are used.
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-app"))
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-app"))
//	defer mp.Shutdown(ctx)
//	metrics, err := observability.NewMetrics(observability.Meter("ndex"))
package observability
