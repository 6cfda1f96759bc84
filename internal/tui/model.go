package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/randomizer/internal/controller"
	"github.com/ytget/randomizer/internal/logger"
	"github.com/ytget/randomizer/internal/picker"
)

const (
	component = "TUI"

	defaultListRows = 10
	// rows taken by title, input, help and list borders
	chromeRows = 7

	emptyListText = "no options yet"
	modalHint     = "press any key"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// modal is an error or info box waiting for acknowledgement
type modal struct {
	title   string
	message string
	isError bool
}

// Model is the bubbletea model. It implements controller.View.
type Model struct {
	picker picker.Picker
	log    logger.Logger
	keys   keyMap
	help   help.Model

	input  textinput.Model
	focus  focusArea
	cursor int
	modal  *modal

	width  int
	height int
}

// New creates a model bound to the picker
func New(p picker.Picker, log logger.Logger) *Model {
	if log == nil {
		log = logger.Nop()
	}

	input := textinput.New()
	input.Placeholder = "New option"
	input.Prompt = "> "
	input.Focus()

	return &Model{
		picker: p,
		log:    log,
		keys:   newKeyMap(),
		help:   help.New(),
		input:  input,
		focus:  focusInput,
		cursor: picker.NoSelection,
	}
}

// Run starts the program and blocks until the user quits
func Run(p picker.Picker, log logger.Logger) error {
	program := tea.NewProgram(New(p, log), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) && (m.modal == nil || msg.Type == tea.KeyCtrlC) {
			m.log.Debug(component, "quitting", nil)
			return m, tea.Quit
		}
		if m.modal != nil {
			m.modal = nil
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.pickAny):
			controller.OnPick(m.picker, m)
			return m, nil
		case key.Matches(msg, m.keys.focus):
			return m, m.toggleFocus()
		}

		if m.focus == focusInput {
			return m, m.updateInput(msg)
		}
		return m, m.updateList(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.add) {
		controller.OnAdd(m.picker, m)
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.remove):
		controller.OnRemove(m.picker, m)
	case key.Matches(msg, m.keys.pick):
		controller.OnPick(m.picker, m)
	case key.Matches(msg, m.keys.editInput):
		return m.toggleFocus()
	}
	return nil
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		if m.cursor < 0 && m.picker.Len() > 0 {
			m.cursor = 0
		}
		return nil
	}
	m.focus = focusInput
	return m.input.Focus()
}

func (m *Model) moveCursor(delta int) {
	count := m.picker.Len()
	if count == 0 {
		m.cursor = picker.NoSelection
		return
	}
	if m.cursor < 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= count {
		m.cursor = count - 1
	}
}

// InputText returns the input contents
func (m *Model) InputText() string {
	return m.input.Value()
}

// ClearInput empties the input
func (m *Model) ClearInput() {
	m.input.Reset()
}

// Selected returns the highlighted row
func (m *Model) Selected() (int, bool) {
	if m.cursor < 0 {
		return picker.NoSelection, false
	}
	return m.cursor, true
}

// ClearSelection drops the highlight
func (m *Model) ClearSelection() {
	m.cursor = picker.NoSelection
}

// ShowError opens an error box
func (m *Model) ShowError(title, message string) {
	m.modal = &modal{title: title, message: message, isError: true}
}

// ShowInfo opens an info box
func (m *Model) ShowInfo(title, message string) {
	m.modal = &modal{title: title, message: message}
}

// Refresh is a no-op: bubbletea re-renders after every Update
func (m *Model) Refresh() {}

// View implements tea.Model
func (m *Model) View() string {
	if m.modal != nil {
		return m.modalView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Randomizer"))
	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) listRows() int {
	if m.height <= 0 {
		return defaultListRows
	}
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) listView() string {
	style := listStyle
	if m.focus == focusList {
		style = focusedListStyle
	}
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}

	options := m.picker.Options()
	if len(options) == 0 {
		return style.Render(emptyStyle.Render(emptyListText))
	}

	rows := m.listRows()
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(options) {
		end = len(options)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		line := options[i].Text
		if i == m.cursor {
			line = selectedRowStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) modalView() string {
	style := infoBoxStyle
	if m.modal.isError {
		style = errorBoxStyle
	}
	box := style.Render(lipgloss.JoinVertical(lipgloss.Center,
		boxTitleStyle.Render(m.modal.title),
		"",
		m.modal.message,
		"",
		emptyStyle.Render(modalHint),
	))
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
