package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bomberos-cl/runkit/internal/batch"
	"github.com/bomberos-cl/runkit/internal/exitcode"
	"github.com/bomberos-cl/runkit/pkg/config"
	"github.com/bomberos-cl/runkit/pkg/environment"
	"github.com/bomberos-cl/runkit/pkg/i18n"
	"github.com/bomberos-cl/runkit/pkg/logger"
	"github.com/bomberos-cl/runkit/pkg/validator"
)

const serviceName = "runcheck"

// errInvalidRUN marks a run where some input failed validation. The
// command has already printed the reasons.
var errInvalidRUN = errors.New("invalid RUN")

const (
	flagEnvFile      = "env-file"
	flagLang         = "lang"
	flagLogLevel     = "log-level"
	flagLogFormat    = "log-format"
	flagStrictLength = "strict-length"
)

// app carries what every subcommand needs once the root pre-run has loaded
// configuration.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg  Config
	log  *slog.Logger
	tr   *i18n.Translator
	lang string
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdin, stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, errInvalidRUN):
		return exitcode.InvalidRUN
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitcode.UsageError
	}
}

// NewRootCommand builds a fresh command tree wired to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "runcheck",
		Short: "Validate, normalize and format Chilean RUNs",
		Long: `runcheck checks Chilean RUN identifiers (body plus modulo-11 check digit).

Configuration comes from RUNCHECK_* environment variables or a dotenv file;
flags override both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String(flagEnvFile, "", "dotenv file to load before reading RUNCHECK_* variables")
	pf.String(flagLang, "", "message language, e.g. es, en, es-CL (env RUNCHECK_LANG)")
	pf.String(flagLogLevel, "", "log level: debug, info, warn, error (env RUNCHECK_LOG_LEVEL)")
	pf.String(flagLogFormat, "", "log format: text or json (env RUNCHECK_LOG_FORMAT)")
	pf.Bool(flagStrictLength, true, "require a 7 or 8 digit body (env RUNCHECK_STRICT_LENGTH)")

	root.AddCommand(
		newValidateCommand(a),
		newFormatCommand(a),
		newDVCommand(a),
		newBatchCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if file, _ := flags.GetString(flagEnvFile); file != "" {
		if err := config.LoadEnv(file); err != nil {
			return err
		}
	}
	// Re-read on every execution; the environment may differ between runs
	// of the same process.
	if err := config.ForceReload(&a.cfg); err != nil {
		return err
	}

	if flags.Changed(flagLang) {
		a.cfg.Lang, _ = flags.GetString(flagLang)
	}
	if flags.Changed(flagLogLevel) {
		a.cfg.LogLevel, _ = flags.GetString(flagLogLevel)
	}
	if flags.Changed(flagLogFormat) {
		a.cfg.LogFormat, _ = flags.GetString(flagLogFormat)
	}
	if flags.Changed(flagStrictLength) {
		a.cfg.StrictLength, _ = flags.GetBool(flagStrictLength)
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}

	a.log = logger.New(
		logger.WithEnvironment(environment.Parse(a.cfg.Env), serviceName),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(a.stderr),
		logger.WithContextValue("batch_id", batch.IDKey()),
	)

	a.tr, err = i18n.Default(cmd.Context(), i18n.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.lang = a.tr.Match(a.cfg.Lang)

	a.log.DebugContext(cmd.Context(), "configured",
		logger.Component(cmd.Name()),
		slog.String("lang", a.lang),
		slog.Bool("strict_length", a.cfg.StrictLength),
	)
	return nil
}

// rules returns the validation rules for one RUN under the current length
// policy.
func (a *app) rules(value string) []validator.Rule {
	const field = "run"
	rules := []validator.Rule{validator.RequiredRUN(field, value)}
	if a.cfg.StrictLength {
		return append(rules, validator.ValidRUN(field, value)...)
	}
	return append(rules, validator.ValidRUNAnyLength(field, value)...)
}

// reason renders the first validation failure in the configured language.
func (a *app) reason(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return ""
	}
	return i18n.Message(a.tr, a.lang, errs[0])
}
