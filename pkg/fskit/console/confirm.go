package console

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ADD8")).
			Bold(true)

	unselectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// ConfirmOptions allows customization of the confirmation prompt
type ConfirmOptions struct {
	Prompt     string
	DefaultYes bool   // If true, "Yes" is pre-selected
	YesText    string // Custom text for "Yes" option
	NoText     string // Custom text for "No" option
}

// DefaultConfirmOptions returns the default options. "No" is pre-selected
// since confirmations here usually guard removals and overwrites.
func DefaultConfirmOptions() ConfirmOptions {
	return ConfirmOptions{
		Prompt:     "Confirm?",
		DefaultYes: false,
		YesText:    "Yes",
		NoText:     "No",
	}
}

// Confirm displays a yes/no prompt and returns the user's choice
func Confirm(opts ...ConfirmOptions) (bool, error) {
	fmt.Print("\033[H\033[2J") // Clear screen
	options := DefaultConfirmOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	p := tea.NewProgram(initialConfirmModel(options))
	m, err := p.Run()
	if err != nil {
		return false, err
	}
	fmt.Print("\033[H\033[2J") // Clear screen

	finalModel := m.(confirmModel)
	if finalModel.quitted {
		return false, fmt.Errorf("input cancelled")
	}
	return finalModel.yes, nil
}

type confirmModel struct {
	options ConfirmOptions
	yes     bool // Current selection (true = Yes, false = No)
	quitted bool
}

func initialConfirmModel(options ConfirmOptions) confirmModel {
	return confirmModel{
		options: options,
		yes:     options.DefaultYes,
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "right", "h", "l":
			m.yes = !m.yes
			return m, nil
		case "enter":
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.quitted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	var builder strings.Builder

	// Add the prompt
	builder.WriteString(promptStyle.Render(m.options.Prompt))
	builder.WriteString("\n\n")

	// Render Yes/No options
	yesStyle := unselectedStyle
	noStyle := unselectedStyle
	if m.yes {
		yesStyle = selectedStyle
	} else {
		noStyle = selectedStyle
	}

	builder.WriteString(yesStyle.Render(m.options.YesText))
	builder.WriteString("  ")
	builder.WriteString(noStyle.Render(m.options.NoText))
	builder.WriteString("\n\n")

	// Add hint text
	builder.WriteString(hintStyle.Render("(←/→ to move, enter to select, esc to cancel)"))
	builder.WriteString("\n")

	return builder.String()
}
