// Package tui is a read-only browser over a saved result document. It
// renders what a run already produced and never re-ranks anything.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"docrank/internal/report"
)

// Model is the Bubble Tea model for the result viewer.
type Model struct {
	result   *report.Result
	viewport viewport.Model
	cursor   int
	ready    bool
}

// New creates a viewer over a loaded result.
func New(result *report.Result) Model {
	vp := viewport.New(0, 0)
	return Model{result: result, viewport: vp}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, frameH := sectionBoxStyle.GetFrameSize()
		totalHeaderLines := 2 // header + metadata line
		totalFooterLines := 1 // help line
		reserved := totalHeaderLines + totalFooterLines + 1
		vh := msg.Height - reserved - frameH
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderCurrentSection())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "down", "j":
			if n := len(m.result.Sections); n > 0 {
				m.cursor = (m.cursor + 1) % n
				m.viewport.SetContent(m.renderCurrentSection())
			}
			return m, nil
		case "up", "k":
			if n := len(m.result.Sections); n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
				m.viewport.SetContent(m.renderCurrentSection())
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the viewer layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("docrank results")
	meta := metaStyle.Render(fmt.Sprintf("job: %s  |  run: %s",
		m.result.Metadata.JobToBeDone, m.result.Metadata.ProcessingTimestamp))
	body := sectionBoxStyle.Render(m.viewport.View())
	help := helpStyle.Render("up/down: sections  q: quit")
	return header + "\n" + meta + "\n" + body + "\n" + help
}

func (m Model) renderCurrentSection() string {
	if len(m.result.Sections) == 0 {
		return "No ranked sections in this result."
	}
	section := m.result.Sections[m.cursor]
	title := fmt.Sprintf("Rank %d/%d  %s  page %d",
		section.ImportanceRank, len(m.result.Sections), section.Document, section.PageNumber)

	refined := ""
	if m.cursor < len(m.result.Analyses) {
		refined = strings.TrimSpace(m.result.Analyses[m.cursor].RefinedText)
	}
	if refined == "" {
		refined = "(no refined text)"
	}
	return titleStyle.Render(title) + "\n\n" + section.SectionTitle + "\n\n" + refined
}

var (
	sectionBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	metaStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
