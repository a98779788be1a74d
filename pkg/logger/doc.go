// Package logger builds the service's *slog.Logger.
//
// New applies functional options to pick the output format (JSON for
// production and staging, text for development), the minimum level and a set
// of static attributes, then wraps the handler in LogHandlerDecorator so that
// ContextExtractor callbacks can add request-scoped attributes such as the
// request id or the authenticated subject on every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "wordchain"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        session.LoggerExtractor(),
//	    ),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "session rotated", logger.Subject(id), logger.Duration(age))
//
// Attribute helpers in attr.go keep key names consistent. Error and Errors
// return an empty attribute for nil errors, so they can be passed
// unconditionally.
package logger
