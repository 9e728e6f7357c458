package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/structkit/pkg/errors"
	"github.com/matzehuels/structkit/pkg/script"
)

// historySize is the number of steps the playground keeps on screen.
const historySize = 8

var (
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	inputStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// playCommand creates the interactive "play" command.
func (c *CLI) playCommand() *cobra.Command {
	var (
		elements string
		capacity int
	)
	cmd := &cobra.Command{
		Use:   "play [STRUCTURE]",
		Short: "Apply operations to a container interactively",
		Long: `Open an interactive playground over a stack, queue, list or binary search
tree. Type an operation such as "push 3", "get 0" or "insert 1 x" and press
enter to apply it. Structure defaults to stack.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			structure := script.Stack
			if len(args) == 1 {
				structure = args[0]
			}
			sess, err := script.NewSession(structure, elements, capacity)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newPlayModel(sess), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&elements, "elements", script.ElementsString, "element type: string or int")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "initial arraylist capacity (0 for the default)")
	return cmd
}

// playModel is the bubbletea model of the playground.
type playModel struct {
	session *script.Session
	input   string
	history []script.Step
	message string
	failed  bool
}

func newPlayModel(s *script.Session) playModel {
	return playModel{session: s}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit(), nil
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(key.Runes)
	}
	return m, nil
}

// submit applies the typed operation and clears the input line.
func (m playModel) submit() playModel {
	line := strings.TrimSpace(m.input)
	m.input = ""
	if line == "" {
		return m
	}

	op, err := script.ParseOp(line)
	if err == nil {
		var step script.Step
		step, err = m.session.Apply(op)
		if err == nil {
			m.history = append(m.history, step)
			if len(m.history) > historySize {
				m.history = m.history[len(m.history)-historySize:]
			}
			m.message, m.failed = outcome(step), step.Failed()
			return m
		}
	}
	m.message, m.failed = errors.UserMessage(err), true
	return m
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("structkit play: " + m.session.Structure()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("ops: " + strings.Join(m.session.Ops(), ", ") + "   esc quit"))
	b.WriteString("\n\n")

	if len(m.history) > 0 {
		rows := make([][]string, len(m.history))
		for i, s := range m.history {
			rows[i] = []string{strconv.Itoa(s.Index), s.Op.String(), outcome(s), strconv.Itoa(s.Size)}
		}
		b.WriteString(newTable([]string{"#", "Operation", "Result", "Size"}, rows, nil).Render())
		b.WriteString("\n")
	}

	if c := m.session.Contents(); c != nil {
		b.WriteString(StyleDim.Render("contents: "))
		b.WriteString(StyleValue.Render("[" + strings.Join(c, " ") + "]"))
		b.WriteString("\n")
	}
	if m.message != "" {
		style := StyleSuccess
		if m.failed {
			style = StyleError
		}
		b.WriteString(style.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptStyle.Render("> "))
	b.WriteString(inputStyle.Render(m.input))
	b.WriteString(fmt.Sprintf("%s\n", listDimStyle.Render("_")))
	return b.String()
}
