// Package logger provides a small factory around Go's slog package together
// with attribute helpers used by the validation engine.
//
// New creates a *slog.Logger configured by functional options:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter select the output format.
//   - WithLevel sets the minimum level.
//   - WithOutput redirects records to any io.Writer.
//   - WithAttr / WithComponent attach static attributes.
//
// Components that accept an optional logger default to Discard, so the
// validation engine is silent unless a logger is supplied.
//
// Attribute helpers (Class, Path, Property, ErrorKey, ErrorCount, Groups,
// Depth, Error, Errors) keep key naming consistent:
//
//	log := logger.New(logger.WithTextFormatter(), logger.WithLevel(slog.LevelDebug))
//	log.Debug("object validated",
//	    logger.Class("app.User"),
//	    logger.Path("order.customer"),
//	    logger.ErrorCount(2),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
