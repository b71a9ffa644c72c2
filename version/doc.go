// Package version reports the client build version used in the User-Agent
// header and in telemetry resources.
package version
