package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/structkit/pkg/script"
)

// runCommand creates the "run" command.
func (c *CLI) runCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Execute an operation script",
		Long: `Execute the operations of a TOML script against a fresh container and
print the outcome of every step. Failing operations are reported with their
error code; the run continues with the next operation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			s, err := script.Load(args[0])
			if err != nil {
				return err
			}

			prog := newProgress(logger)
			res, err := script.NewRunner(logger).Run(ctx, s)
			if err != nil {
				return fmt.Errorf("run %s: %w", args[0], err)
			}
			prog.done(fmt.Sprintf("Ran %d operations on %s", len(res.Steps), res.Structure))

			if !quiet {
				printTable(stepsTable(res.Steps))
			}
			printRunSummary(res)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the summary")
	return cmd
}

// diffCommand creates the "diff" command.
func (c *CLI) diffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff FILE",
		Short: "Run a list script against both list implementations and compare",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			res, err := script.NewRunner(logger).Diff(ctx, s)
			if err != nil {
				return fmt.Errorf("diff %s: %w", args[0], err)
			}

			d := res.Divergence
			if d == nil {
				printSuccess("LinkedList and ArrayList agree on all %d steps", res.Steps)
				printDetail("final contents: [%s]", strings.Join(res.Linked.Contents, " "))
				return nil
			}
			printError("Lists diverge at step %d: %s", d.Step, d.Op)
			printKeyValue("linkedlist", outcome(d.Linked))
			printKeyValue("arraylist", outcome(d.Array))
			return fmt.Errorf("lists diverge at step %d", d.Step)
		},
	}
}

// stepsTable lays out one row per step; failed steps are highlighted.
func stepsTable(steps []script.Step) *table.Table {
	rows := make([][]string, len(steps))
	for i, s := range steps {
		rows[i] = []string{strconv.Itoa(s.Index), s.Op.String(), outcome(s), strconv.Itoa(s.Size)}
	}
	return newTable([]string{"#", "Operation", "Result", "Size"}, rows, func(row, col int) lipgloss.Style {
		if steps[row].Failed() && col == 2 {
			return StyleError
		}
		if col == 0 || col == 3 {
			return StyleDim
		}
		return StyleValue
	})
}

// outcome renders a step's output, its error code, or "ok".
func outcome(s script.Step) string {
	switch {
	case s.Failed():
		return string(s.Code)
	case s.Output == "":
		return "ok"
	}
	return s.Output
}

func printRunSummary(res *script.Result) {
	if n := res.Failures(); n > 0 {
		printWarning("%d of %d operations failed", n, len(res.Steps))
	} else {
		printSuccess("%d operations succeeded", len(res.Steps))
	}
	if res.Contents != nil {
		printDetail("final contents: [%s]", strings.Join(res.Contents, " "))
	}
	printDetail("run %s", res.RunID)
}
