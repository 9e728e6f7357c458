package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/structkit/pkg/errors"
	"github.com/matzehuels/structkit/pkg/funcs"
)

// funcsCommand creates the "funcs" command.
func (c *CLI) funcsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "funcs [NAME X]",
		Short: "List the integer functions, or apply one",
		Example: `  structkit funcs
  structkit funcs square -- -4`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or NAME X, got %d arguments", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := funcs.IntFunctionMap()
			if len(args) == 0 {
				for _, name := range m.Names() {
					fmt.Fprintln(stdout, StyleValue.Render(name))
				}
				return nil
			}

			x, err := strconv.Atoi(args[1])
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "%q is not an integer", args[1])
			}
			result, err := m.Apply(args[0], x)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%s(%d) = %s\n", args[0], x, StyleNumber.Render(strconv.Itoa(result)))
			return nil
		},
	}
}
