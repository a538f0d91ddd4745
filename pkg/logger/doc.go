// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in LogHandlerDecorator, which runs the registered
// ContextExtractor callbacks on every record before delegating.
//
// # Usage
//
//	import "github.com/bomberos-cl/runkit/pkg/logger"
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "runcheck"),
//		logger.WithContextValue("batch_id", batchIDKey{}),
//	)
//	log.Info("line rejected", logger.RUN(input), logger.Code(code))
//
// # RUN attributes
//
// RUN never logs an identifier in clear; it goes through sanitizer.MaskRUN so
// only the last body digits and the check character survive.
//
// # Configuration strings
//
// ParseLevel and ParseFormat turn environment or flag values into options
// inputs. WithFormat panics on unknown formats; call ParseFormat first when
// the value comes from the user.
package logger
