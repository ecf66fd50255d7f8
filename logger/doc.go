// Package logger provides structured logging for the fidor client using
// zerolog.
//
// The client logs nothing unless a logger is supplied; Nop is the default.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg.Logging, "fidor")
//	log.WithComponent("transport").Debug("request sent", logger.Fields("path", "/cards"))
package logger
