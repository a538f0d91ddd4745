package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/bomberos-cl/runkit/internal/batch"
	"github.com/bomberos-cl/runkit/pkg/validator"
)

func newBatchCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Validate one RUN per line from FILE or standard input",
		Long: `Batch reads RUNs line by line. Blank lines and anything after '#' are
ignored. Invalid lines are listed with their line number and reason, followed
by a summary. With --json the full report is written instead.`,
		Example: `  runcheck batch roster.txt
  cut -d, -f3 roster.csv | runcheck batch --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.stdin
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			checker := &batch.Checker{StrictLength: a.cfg.StrictLength, Logger: a.log}
			report, err := checker.Run(cmd.Context(), in)
			if fatal := fatalError(err); fatal != nil {
				return fatal
			}

			if asJSON {
				if err := writeJSON(a.stdout, report); err != nil {
					return err
				}
			} else {
				a.writeText(report)
			}

			if report.Invalid > 0 {
				return errInvalidRUN
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the report as JSON")
	return cmd
}

// fatalError returns the first error that is not a per-line validation
// failure, such as a read error or cancellation.
func fatalError(err error) error {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		return err
	}
	for _, e := range merr.Errors {
		var lineErr *batch.LineError
		if !errors.As(e, &lineErr) {
			return e
		}
	}
	return nil
}

func writeJSON(w io.Writer, report *batch.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func (a *app) writeText(report *batch.Report) {
	for _, e := range report.Entries {
		if e.Valid() {
			continue
		}
		reason := a.tr.T(a.lang, e.Code, "example", validator.RUNExample)
		fmt.Fprintf(a.stdout, "%d: %s\n", e.Line, a.tr.T(a.lang, "runcheck.invalid", "input", e.Input, "reason", reason))
	}
	fmt.Fprintln(a.stdout, a.tr.T(a.lang, "runcheck.summary",
		"total", strconv.Itoa(report.Total),
		"valid", strconv.Itoa(report.Valid),
		"invalid", strconv.Itoa(report.Invalid),
	))
}
