package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cargo-launcher/cargo-launcher/internal/core/domain/launcher"
)

var errPickerCancelled = errors.New("launcher selection cancelled")

var (
	pickerTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	pickerSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	pickerHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RunPicker asks the user to choose a launcher on the terminal.
func RunPicker() (launcher.Kind, error) {
	final, err := tea.NewProgram(newPickerModel()).Run()
	if err != nil {
		return 0, fmt.Errorf("launcher picker failed: %w", err)
	}
	m, ok := final.(pickerModel)
	if !ok || m.chosen == 0 {
		return 0, errPickerCancelled
	}
	return m.chosen, nil
}

// pickerModel holds the state for the Bubble Tea launcher picker
type pickerModel struct {
	kinds  []launcher.Kind
	cursor int
	chosen launcher.Kind
	quit   bool
}

func newPickerModel() pickerModel {
	return pickerModel{kinds: launcher.Kinds()}
}

// Init implements the Bubble Tea init method
func (m pickerModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.quit = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.kinds)-1 {
			m.cursor++
		}

	case "enter", " ", "space":
		m.chosen = m.kinds[m.cursor]
		return m, tea.Quit
	}

	return m, nil
}

// View implements the Bubble Tea view method
func (m pickerModel) View() string {
	if m.quit || m.chosen != 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Which launcher should the plugin be built for?"))
	b.WriteString("\n\n")
	for i, k := range m.kinds {
		line := "  " + k.Title()
		if i == m.cursor {
			line = pickerSelectedStyle.Render("> " + k.Title())
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + pickerHelpStyle.Render("↑/↓ to move, enter to select, q to quit") + "\n")
	return b.String()
}
