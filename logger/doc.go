// Package logger provides structured logging for restkit clients,
// built on zerolog.
//
// A Logger can be attached to an HTTP transport or REST client to
// record request/response activity:
//
//	log := logger.NewFromEnv("backend-client")
//	log.Info("resource created", logger.Fields(
//	    logger.FieldEndpoint, "/items",
//	    logger.FieldStatusCode, 201,
//	))
package logger
