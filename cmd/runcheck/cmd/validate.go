package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bomberos-cl/runkit/pkg/logger"
	"github.com/bomberos-cl/runkit/pkg/run"
	"github.com/bomberos-cl/runkit/pkg/sanitizer"
	"github.com/bomberos-cl/runkit/pkg/validator"
)

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate RUN...",
		Short: "Check RUNs and print their display form or the reason they fail",
		Example: `  runcheck validate 12.345.678-5 7654321-6
  runcheck --lang en validate 12345678-9`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, arg := range args {
				input := sanitizer.InputLine(arg)
				errs := validator.ExtractValidationErrors(validator.Apply(a.rules(input)...))
				if len(errs) == 0 {
					fmt.Fprintln(a.stdout, a.tr.T(a.lang, "runcheck.ok", "run", run.FormatForDisplay(input)))
					continue
				}

				invalid++
				a.log.DebugContext(cmd.Context(), "rejected", logger.RUN(input), logger.Code(errs[0].TranslationKey))
				fmt.Fprintln(a.stdout, a.tr.T(a.lang, "runcheck.invalid", "input", sanitizer.Echo(input), "reason", a.reason(errs)))
			}

			if invalid > 0 {
				return errInvalidRUN
			}
			return nil
		},
	}
}
