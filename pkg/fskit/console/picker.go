package console

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	constants "github.com/ImGajeed76/fskit/pkg"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.PrimaryColor)).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(constants.Theme.SecondaryColor))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(constants.Theme.PrimaryColor)).
				Bold(true)
)

// PickOptions allows customization of the path picker behavior
type PickOptions struct {
	Title string
}

// DefaultPickOptions returns the default options
func DefaultPickOptions() PickOptions {
	return PickOptions{
		Title: "Select a file:",
	}
}

// PickPath shows a scrollable list of paths (for example the output of a
// resolved designator) and returns the one the user selects.
func PickPath(paths []string, opts ...PickOptions) (string, error) {
	if len(paths) == 0 {
		return "", fmt.Errorf("no paths provided")
	}

	fmt.Print("\033[H\033[2J") // Clear screen
	options := DefaultPickOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	p := tea.NewProgram(initialPickerModel(paths, options))
	m, err := p.Run()
	if err != nil {
		return "", err
	}
	fmt.Print("\033[H\033[2J") // Clear screen

	finalModel := m.(pickerModel)
	if finalModel.quitted {
		return "", fmt.Errorf("selection cancelled")
	}
	return paths[finalModel.cursor+finalModel.offset], nil
}

type pickerModel struct {
	paths    []string
	cursor   int
	options  PickOptions
	quitted  bool
	height   int
	maxItems int
	offset   int
}

func initialPickerModel(paths []string, options PickOptions) pickerModel {
	return pickerModel{
		paths:   paths,
		cursor:  0,
		options: options,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.maxItems = m.height - 4
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitted = true
			return m, tea.Quit
		case "enter":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			} else if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.cursor < m.maxItems-1 {
				m.cursor++
			} else if m.offset+m.maxItems < len(m.paths) {
				m.offset++
			}
		}
	}

	return m, nil
}

func (m pickerModel) View() string {
	var builder strings.Builder

	// Title
	builder.WriteString(titleStyle.Render(m.options.Title))
	builder.WriteString("\n\n")

	// Items
	cutPaths := m.paths
	if len(m.paths) > m.maxItems {
		cutPaths = m.paths[m.offset : m.offset+m.maxItems]
	}

	for i, item := range cutPaths {
		if i == m.cursor {
			builder.WriteString(selectedItemStyle.Render("▸ " + item))
		} else {
			builder.WriteString(itemStyle.Render("  " + item))
		}
		builder.WriteString("\n")
	}

	// Help text
	builder.WriteString("\n")
	builder.WriteString(hintStyle.Render("↑/↓ to move • enter to select • esc to cancel"))

	return builder.String()
}
