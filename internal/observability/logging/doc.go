// Package logging builds the process logger on log/slog and carries
// request-scoped loggers through contexts.
//
//	logger := logging.New(os.Stdout, logging.Options{Level: "info", Format: "json"})
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.FromContext(ctx).Info("processing request")
//	}
package logging
