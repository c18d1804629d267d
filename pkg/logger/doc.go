// Package logger builds the structured loggers used by the secretsanta tools.
//
// New returns a *slog.Logger configured with functional options: output format
// (text or json), level, static attributes, and ContextExtractor callbacks that
// copy values such as the run id out of a context.Context on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "secretsanta"),
//	    logger.WithContextExtractors(logger.RunIDExtractor()),
//	)
//
//	ctx := logger.WithRunID(context.Background(), runID)
//	log.InfoContext(ctx, "matching generated",
//	    logger.Participants(len(roster)),
//	    logger.Attempts(m.Attempts()),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, so they can be passed unconditionally.
//
// Receivers are deliberately absent from the helper set: logs must not reveal
// who is buying for whom.
package logger
