// Package logger provides the zerolog-backed structured logger used by the
// NDEx client packages.
//
// The global logger writes warnings and errors to stderr until Init or
// SetGlobalLogger replaces it, so a library consumer sees nothing unless a
// call fails.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("httpclient")
//	log.Debug("request completed", logger.Fields("status", 200))
package logger
