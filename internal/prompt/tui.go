package prompt

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sheetAlign/internal/align"
	"sheetAlign/internal/tabfile"
)

// UI States
type state int

const (
	stateEnterBase state = iota
	stateEnterFolder
	stateConfirm
	stateRunning
	stateResults
)

// UIConfig represents UI configuration settings
type UIConfig struct {
	ResultsPerPage int
}

// alignDoneMsg carries the batch outcome back into the update loop.
type alignDoneMsg struct {
	results []align.FileResult
	err     error
}

// Model represents the TUI model
type model struct {
	state state

	// Path entry
	input      string
	basePath   string
	folderPath string
	inputErr   string

	// Batch outcome
	results  []align.FileResult
	batchErr error

	// Results pagination
	resultPage     int
	resultsPerPage int

	// Screen dimensions
	width  int
	height int

	// Styling
	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	normalStyle   lipgloss.Style
	helpStyle     lipgloss.Style
	errorStyle    lipgloss.Style
	okStyle       lipgloss.Style
	warnStyle     lipgloss.Style
}

// Initialize the model with config
func initialModel(uiConfig UIConfig) model {
	perPage := uiConfig.ResultsPerPage
	if perPage <= 0 {
		perPage = 12
	}

	return model{
		state:          stateEnterBase,
		resultsPerPage: perPage,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Align(lipgloss.Center),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		normalStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		helpStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		errorStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		okStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Padding(0, 1),
		warnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case alignDoneMsg:
		m.results = msg.results
		m.batchErr = msg.err
		m.resultPage = 0
		m.state = stateResults

	case tea.KeyMsg:
		switch m.state {
		case stateEnterBase, stateEnterFolder:
			return m.updateEnterPath(msg)
		case stateConfirm:
			return m.updateConfirm(msg)
		case stateResults:
			return m.updateResults(msg)
		}
	}
	return m, nil
}

func (m model) updateEnterPath(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}

	case tea.KeyEnter:
		path := tabfile.NormalizePath(m.input)
		if m.state == stateEnterBase {
			if err := validateBasePath(path); err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m.basePath = path
			m.input = ""
			m.inputErr = ""
			m.state = stateEnterFolder
		} else {
			if err := validateFolderPath(path); err != nil {
				m.inputErr = err.Error()
				return m, nil
			}
			m.folderPath = path
			m.input = ""
			m.inputErr = ""
			m.state = stateConfirm
		}

	case tea.KeySpace:
		m.input += " "
		m.inputErr = ""

	case tea.KeyRunes:
		m.input += string(msg.Runes)
		m.inputErr = ""
	}
	return m, nil
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "n":
		return m, tea.Quit
	case "esc":
		m.state = stateEnterBase
		m.input = ""
	case "y", "enter":
		m.state = stateRunning
		base, folder := m.basePath, m.folderPath
		return m, func() tea.Msg {
			results, err := align.Folder(base, folder)
			return alignDoneMsg{results: results, err: err}
		}
	}
	return m, nil
}

func (m model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "enter", "esc":
		return m, tea.Quit
	case "left", "h", "up", "k":
		if m.resultPage > 0 {
			m.resultPage--
		}
	case "right", "l", "down", "j":
		if (m.resultPage+1)*m.resultsPerPage < len(m.results) {
			m.resultPage++
		}
	case "r":
		// Start over with a fresh run
		m.state = stateEnterBase
		m.input = ""
		m.basePath = ""
		m.folderPath = ""
		m.results = nil
		m.batchErr = nil
	}
	return m, nil
}

func validateBasePath(path string) error {
	if path == "" {
		return fmt.Errorf("please enter a file path")
	}
	if !tabfile.Supported(path) {
		return fmt.Errorf("base file must be a .csv or .xlsx file")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("base file not found: %s", path)
	}
	return nil
}

func validateFolderPath(path string) error {
	if path == "" {
		return fmt.Errorf("please enter a folder path")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("folder not found: %s", path)
	}
	if !info.IsDir() {
		return fmt.Errorf("the path is not a folder: %s", path)
	}
	return nil
}

func (m model) View() string {
	switch m.state {
	case stateEnterBase:
		return m.viewEnterPath("Enter the path to the base file (csv or xlsx):")
	case stateEnterFolder:
		return m.viewEnterPath("Enter the path to the folder containing files to align:")
	case stateConfirm:
		return m.viewConfirm()
	case stateRunning:
		return m.viewRunning()
	case stateResults:
		return m.viewResults()
	}
	return ""
}

func (m model) viewEnterPath(promptText string) string {
	var b strings.Builder

	title := m.titleStyle.Width(m.width).Render("Sheet Alignment Tool")
	b.WriteString(title)
	b.WriteString("\n\n")

	b.WriteString(m.normalStyle.Render(promptText))
	b.WriteString("\n\n")

	b.WriteString(m.selectedStyle.Render("> " + m.input + "█"))
	b.WriteString("\n")

	if m.inputErr != "" {
		b.WriteString("\n")
		b.WriteString(m.errorStyle.Render(m.inputErr))
		b.WriteString("\n")
	}

	if m.basePath != "" {
		b.WriteString("\n")
		b.WriteString(m.helpStyle.Render("Base file: " + m.basePath))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("Enter: continue | Esc: quit"))

	return b.String()
}

func (m model) viewConfirm() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Start alignment?"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Base file: %s\n", m.basePath))
	b.WriteString(fmt.Sprintf("Folder to process: %s\n", m.folderPath))
	b.WriteString("\n")

	b.WriteString(m.helpStyle.Render("y/n to confirm, Esc to go back"))

	return b.String()
}

func (m model) viewRunning() string {
	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Aligning files..."))
	b.WriteString("\n\n")
	b.WriteString(m.normalStyle.Render("Processing " + m.folderPath))
	b.WriteString("\n")

	return b.String()
}

func (m model) viewResults() string {
	var b strings.Builder

	title := m.titleStyle.Width(m.width).Render("Alignment Results")
	b.WriteString(title)
	b.WriteString("\n\n")

	if m.batchErr != nil {
		b.WriteString(m.errorStyle.Render("Error: " + m.batchErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(m.helpStyle.Render("r: start over | q: quit"))
		return b.String()
	}

	if len(m.results) == 0 {
		b.WriteString(m.normalStyle.Render("No CSV or Excel files found in " + m.folderPath))
		b.WriteString("\n\n")
		b.WriteString(m.helpStyle.Render("r: start over | q: quit"))
		return b.String()
	}

	success := 0
	for _, r := range m.results {
		if r.Err == nil {
			success++
		}
	}
	summary := fmt.Sprintf("Processed: %d files | Success: %d | Errors: %d",
		len(m.results), success, len(m.results)-success)
	b.WriteString(m.okStyle.Render(summary))
	b.WriteString("\n\n")

	totalPages := int(math.Ceil(float64(len(m.results)) / float64(m.resultsPerPage)))
	if totalPages == 0 {
		totalPages = 1
	}
	pageInfo := fmt.Sprintf("Page %d/%d", m.resultPage+1, totalPages)
	b.WriteString(m.helpStyle.Render(pageInfo))
	b.WriteString("\n\n")

	start := m.resultPage * m.resultsPerPage
	end := start + m.resultsPerPage
	if end > len(m.results) {
		end = len(m.results)
	}

	for _, r := range m.results[start:end] {
		name := filepath.Base(r.Path)
		switch {
		case r.Err != nil:
			b.WriteString(m.errorStyle.Render(fmt.Sprintf("✗ %s: %v", name, r.Err)))
		case len(r.Warnings) > 0:
			b.WriteString(m.warnStyle.Render(fmt.Sprintf("⚠ %s: %d column(s) padded", name, len(r.Warnings))))
		default:
			b.WriteString(m.okStyle.Render("✓ " + name))
		}
		b.WriteString("\n")
		for _, w := range r.Warnings {
			b.WriteString(m.helpStyle.Render("    - " + w.String()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.helpStyle.Render("←→: page | r: start over | Enter/q: quit"))

	return b.String()
}

// Run starts the interactive alignment interface: it asks for a base file and
// a folder, confirms, runs the batch, and shows per-file results.
func Run(uiConfig UIConfig) error {
	m := initialModel(uiConfig)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %v", err)
	}

	return nil
}
