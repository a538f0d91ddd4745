package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomberos-cl/runkit/pkg/run"
	"github.com/bomberos-cl/runkit/pkg/sanitizer"
)

func newDVCommand(a *app) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "dv BODY",
		Short: "Compute the check digit for a RUN body",
		Example: `  runcheck dv 12.345.678      # 5
  runcheck dv --full 7654321  # 7.654.321-6`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			body := run.Clean(sanitizer.InputLine(args[0]))
			dv, err := run.ComputeCheckDigit(body)
			if err != nil {
				fmt.Fprintln(a.stdout, a.tr.T(a.lang, "runcheck.invalid", "input", sanitizer.Echo(args[0]), "reason", a.tr.T(a.lang, "validation.run_body")))
				return errInvalidRUN
			}

			if full {
				fmt.Fprintln(a.stdout, run.FormatForDisplay(body+dv))
				return nil
			}
			fmt.Fprintln(a.stdout, dv)
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "print the complete RUN in display form")
	return cmd
}
