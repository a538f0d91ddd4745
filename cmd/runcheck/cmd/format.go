package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomberos-cl/runkit/pkg/run"
	"github.com/bomberos-cl/runkit/pkg/sanitizer"
)

func newFormatCommand(a *app) *cobra.Command {
	var api bool

	cmd := &cobra.Command{
		Use:   "format RUN...",
		Short: "Print RUNs in display form (12.345.678-5) or API form (12345678-5)",
		Long: `Format normalizes without validating: the check digit is not verified and
malformed input is printed in its cleaned form.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			formatter := run.FormatForDisplay
			if api {
				formatter = run.FormatForAPI
			}
			for _, arg := range args {
				fmt.Fprintln(a.stdout, formatter(sanitizer.InputLine(arg)))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&api, "api", false, "print the unpunctuated API form")
	return cmd
}
