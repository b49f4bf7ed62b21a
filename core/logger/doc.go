// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework.
//
// # Context Awareness
//
// WithRayID extracts the RayID from a Fiber context and attaches it to the log
// entry. ForRun attaches the ingestion run id and map seed, so every line an
// import writes can be correlated with the session that produced it.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	l := logger.ForRun(log, session.ID, session.Header.Seed)
//	l.Warn("Cardinality mismatch", zap.String("collection", "Burgs"))
package logger
