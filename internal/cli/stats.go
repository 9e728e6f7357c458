package cli

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/structkit/pkg/fileio"
)

// statsCommand creates the "stats" command.
func (c *CLI) statsCommand() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Count characters in a text file",
		Long: `Count how often each non-whitespace character occurs in FILE and print
the most frequent ones. Text is normalized to NFC first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, name := filepath.Split(args[0])
			if dir == "" {
				dir = "."
			}
			stats, err := fileio.StatsFrom(os.DirFS(dir), name)
			if err != nil {
				return err
			}

			printKeyValue("file", args[0])
			printKeyValue("characters", strconv.Itoa(stats.Total()))
			printKeyValue("distinct", strconv.Itoa(stats.Distinct()))
			printKeyValue("most common", strconv.QuoteRune(stats.MostPopular()))
			printTable(rankingTable(stats.Ranking(), top, stats.Total()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "n", 10, "number of characters to list (0 for all)")
	return cmd
}

func rankingTable(ranking []fileio.CharCount, top, total int) *table.Table {
	if top > 0 && top < len(ranking) {
		ranking = ranking[:top]
	}
	rows := make([][]string, len(ranking))
	for i, cc := range ranking {
		share := 0.0
		if total > 0 {
			share = 100 * float64(cc.Count) / float64(total)
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.QuoteRune(cc.Char),
			strconv.Itoa(cc.Count),
			strconv.FormatFloat(share, 'f', 1, 64) + "%",
		}
	}
	return newTable([]string{"#", "Char", "Count", "Share"}, rows, func(row, col int) lipgloss.Style {
		switch {
		case row == 0:
			return StyleTitle
		case col == 2:
			return StyleNumber
		}
		return StyleValue
	})
}
