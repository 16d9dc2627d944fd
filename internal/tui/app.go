package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/todo-tui/internal/config"
	"github.com/pdxmph/todo-tui/internal/notify"
	"github.com/pdxmph/todo-tui/internal/todo"
)

// Mode is the current input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAdd
	ModeSearch
	ModeEdit
	ModeConfirm
	ModeImport
)

type confirmAction int

const (
	confirmDelete confirmAction = iota
	confirmClearCompleted
	confirmWipe
)

// Edit field indices
const (
	EditFieldTitle = iota
	EditFieldNotes
	EditFieldCount
)

// ThemeSetting is the storage key holding the chosen theme
const ThemeSetting = "theme"

const toastDuration = 3 * time.Second

// importLoadedMsg carries the content of an import file once read
type importLoadedMsg struct {
	path string
	data []byte
	err  error
}

// toastExpiredMsg hides the toast it refers to, unless a newer one replaced it
type toastExpiredMsg struct {
	seq int
}

type toast struct {
	message string
	level   notify.Level
	seq     int
}

// Options configures the model
type Options struct {
	ExportDir  string
	ExportName string
	Theme      string          // initial theme when none is stored
	Notifier   notify.Notifier // also receives every toast; may be nil
}

// Model represents the main application state
type Model struct {
	store *todo.Store
	prefs *todo.Repository
	opts  Options

	tasks    []todo.Task // projection currently on screen
	summary  todo.Summary
	selected int
	width    int
	height   int
	mode     Mode
	filter   todo.Filter

	search   textinput.Model
	addInput textinput.Model

	// Edit mode
	editID    string
	editField int
	editTitle textinput.Model
	editNotes textarea.Model

	// Confirmation mode
	confirm   confirmAction
	confirmID string

	importInput textinput.Model

	toast  toast
	theme  string
	styles styles
}

// New creates a new application model over store. prefs holds UI
// preferences such as the theme and is usually backed by the same storage.
func New(store *todo.Store, prefs *todo.Repository, opts Options) Model {
	if opts.ExportName == "" {
		opts.ExportName = todo.DefaultExportName
	}
	theme := opts.Theme
	if prefs != nil {
		theme = prefs.Setting(ThemeSetting, theme)
	}
	if theme != "light" {
		theme = "dark"
	}

	search := newInput("Search tasks...", 100)
	search.Prompt = "/ "

	addInput := newInput("What needs to be done?", 200)
	addInput.Prompt = "+ "

	// no limit, stored titles may be any length
	editTitle := newInput("Title", 0)
	editTitle.Prompt = ""

	editNotes := textarea.New()
	editNotes.Placeholder = "Notes (optional)"
	editNotes.SetHeight(4)
	editNotes.SetWidth(50)
	editNotes.CharLimit = 1000
	editNotes.ShowLineNumbers = false

	importInput := newInput("Path to a .json export", 500)
	importInput.Prompt = "> "

	m := Model{
		store:       store,
		prefs:       prefs,
		opts:        opts,
		filter:      todo.FilterAll,
		search:      search,
		addInput:    addInput,
		editTitle:   editTitle,
		editNotes:   editNotes,
		importInput: importInput,
		theme:       theme,
		styles:      newStyles(theme),
	}
	m.refresh()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Width = 40
	ti.CharLimit = limit
	return ti
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 0 {
			m.search.Width = m.width - 10
			m.addInput.Width = m.width - 10
		}
		return m, nil

	case importLoadedMsg:
		return m.finishImport(msg)

	case toastExpiredMsg:
		if msg.seq == m.toast.seq {
			m.toast.message = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAdd:
			return m.updateAdd(msg)
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeEdit:
			return m.updateEdit(msg)
		case ModeConfirm:
			return m.updateConfirm(msg)
		case ModeImport:
			return m.updateImport(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "j", "down":
		if m.selected < len(m.tasks)-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "g", "home":
		m.selected = 0

	case "G", "end":
		if len(m.tasks) > 0 {
			m.selected = len(m.tasks) - 1
		}

	case "a", "n":
		m.mode = ModeAdd
		m.addInput.Reset()
		cmd := m.addInput.Focus()
		return m, cmd

	case "/":
		m.mode = ModeSearch
		cmd := m.search.Focus()
		return m, cmd

	case "esc":
		// Clear search and return to full list
		if m.search.Value() != "" {
			m.search.Reset()
			m.refresh()
		}

	case "f":
		m.filter = m.filter.Next()
		m.refresh()

	case "1", "2", "3":
		m.filter = todo.Filters[msg.String()[0]-'1']
		m.refresh()

	case " ", "x":
		task, ok := m.current()
		if !ok {
			return m, nil
		}
		if _, err := m.store.Toggle(task.ID); err != nil {
			// a vanished task is not worth a message
			if errors.Is(err, todo.ErrNotFound) {
				m.refresh()
				return m, nil
			}
			return m.notify(notify.Error, err.Error())
		}
		m.refresh()

	case "e", "enter":
		task, ok := m.current()
		if !ok {
			return m, nil
		}
		m.mode = ModeEdit
		m.editID = task.ID
		m.editField = EditFieldTitle
		m.editTitle.SetValue(task.Title)
		m.editNotes.SetValue(task.Notes)
		m.editNotes.Blur()
		if m.width > 0 {
			m.editTitle.Width = min(m.width-20, 60)
			m.editNotes.SetWidth(min(m.width-20, 60))
		}
		cmd := m.editTitle.Focus()
		return m, cmd

	case "d":
		task, ok := m.current()
		if !ok {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirm = confirmDelete
		m.confirmID = task.ID

	case "C":
		if m.summary.Completed() == 0 {
			return m.notify(notify.Info, "No completed tasks to clear")
		}
		m.mode = ModeConfirm
		m.confirm = confirmClearCompleted

	case "W":
		if m.summary.Total == 0 {
			return m.notify(notify.Info, "Nothing to wipe")
		}
		m.mode = ModeConfirm
		m.confirm = confirmWipe

	case "E":
		return m.export()

	case "I":
		m.mode = ModeImport
		m.importInput.Reset()
		cmd := m.importInput.Focus()
		return m, cmd

	case "t":
		return m.toggleTheme()
	}

	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.addInput.Blur()
		m.addInput.Reset()
		return m, nil

	case "enter":
		task, err := m.store.Create(m.addInput.Value())
		if err != nil {
			if errors.Is(err, todo.ErrEmptyTitle) {
				return m.notify(notify.Error, "Title is required")
			}
			return m.notify(notify.Error, err.Error())
		}
		// keep the input open for the next task
		m.addInput.Reset()
		m.refresh()
		m.selectID(task.ID)
		return m.notify(notify.Success, "Added")
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.search.Blur()
		m.search.Reset()
		m.refresh()
		return m, nil
	case "enter":
		m.mode = ModeNormal
		m.search.Blur()
		return m, nil
	case "up":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down":
		if m.selected < len(m.tasks)-1 {
			m.selected++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.exitEdit()
		return m, nil

	case "ctrl+s":
		return m.saveEdit()

	case "enter":
		if m.editField == EditFieldTitle {
			return m.saveEdit()
		}

	case "tab", "shift+tab":
		if m.editField == EditFieldTitle {
			m.editField = EditFieldNotes
			m.editTitle.Blur()
			cmd := m.editNotes.Focus()
			return m, cmd
		}
		m.editField = EditFieldTitle
		m.editNotes.Blur()
		cmd := m.editTitle.Focus()
		return m, cmd
	}

	var cmd tea.Cmd
	if m.editField == EditFieldTitle {
		m.editTitle, cmd = m.editTitle.Update(msg)
	} else {
		m.editNotes, cmd = m.editNotes.Update(msg)
	}
	return m, cmd
}

func (m Model) saveEdit() (tea.Model, tea.Cmd) {
	_, err := m.store.Update(m.editID, m.editTitle.Value(), m.editNotes.Value())
	switch {
	case errors.Is(err, todo.ErrEmptyTitle):
		// stay in the dialog so the user can fix it
		return m.notify(notify.Error, "Title is required")
	case errors.Is(err, todo.ErrNotFound):
		m.exitEdit()
		m.refresh()
		return m, nil
	case err != nil:
		return m.notify(notify.Error, err.Error())
	}

	m.exitEdit()
	m.refresh()
	return m.notify(notify.Success, "Saved")
}

func (m *Model) exitEdit() {
	m.mode = ModeNormal
	m.editID = ""
	m.editField = EditFieldTitle
	m.editTitle.Blur()
	m.editNotes.Blur()
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, id := m.confirm, m.confirmID
	m.mode = ModeNormal
	m.confirmID = ""

	// Any key other than y cancels
	if msg.String() != "y" && msg.String() != "Y" {
		return m, nil
	}

	switch action {
	case confirmDelete:
		if err := m.store.Delete(id); err != nil {
			return m.notify(notify.Error, err.Error())
		}
		m.refresh()
		return m.notify(notify.Success, "Deleted")

	case confirmClearCompleted:
		n, err := m.store.ClearCompleted()
		if err != nil {
			return m.notify(notify.Error, err.Error())
		}
		m.refresh()
		return m.notify(notify.Success, fmt.Sprintf("Cleared %d completed", n))

	case confirmWipe:
		if err := m.store.Wipe(); err != nil {
			return m.notify(notify.Error, err.Error())
		}
		m.refresh()
		return m.notify(notify.Success, "All tasks wiped")
	}

	return m, nil
}

func (m Model) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.importInput.Blur()
		return m, nil
	case "enter":
		m.mode = ModeNormal
		m.importInput.Blur()
		path := config.ExpandPath(strings.TrimSpace(m.importInput.Value()))
		if path == "" {
			return m, nil
		}
		return m, readImportFile(path)
	}

	var cmd tea.Cmd
	m.importInput, cmd = m.importInput.Update(msg)
	return m, cmd
}

// readImportFile reads path off the update loop; the merge happens when the
// resulting importLoadedMsg arrives.
func readImportFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := todo.ReadFile(path)
		return importLoadedMsg{path: path, data: data, err: err}
	}
}

func (m Model) finishImport(msg importLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.notify(notify.Error, "Import failed: "+msg.err.Error())
	}
	n, err := m.store.Import(msg.data)
	if err != nil {
		return m.notify(notify.Error, "Import failed: "+err.Error())
	}
	m.refresh()
	m.selected = 0
	return m.notify(notify.Success, fmt.Sprintf("Imported %d tasks from %s", n, filepath.Base(msg.path)))
}

func (m Model) export() (tea.Model, tea.Cmd) {
	doc, err := m.store.Export()
	if err != nil {
		return m.notify(notify.Error, err.Error())
	}
	if doc.Empty() {
		return m.notify(notify.Info, "Nothing to export")
	}
	path, err := todo.WriteFile(m.opts.ExportDir, m.opts.ExportName, doc)
	if err != nil {
		return m.notify(notify.Error, err.Error())
	}
	return m.notify(notify.Success, fmt.Sprintf("Exported %d tasks to %s", doc.Count, path))
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	next := "light"
	if m.theme == "light" {
		next = "dark"
	}
	m.theme = next
	m.styles = newStyles(next)
	if m.prefs != nil {
		if err := m.prefs.SetSetting(ThemeSetting, next); err != nil {
			return m.notify(notify.Error, err.Error())
		}
	}
	return m.notify(notify.Info, "Theme: "+next)
}

// notify shows a toast and schedules its removal
func (m Model) notify(level notify.Level, message string) (tea.Model, tea.Cmd) {
	if m.opts.Notifier != nil {
		m.opts.Notifier.Notify(level, message)
	}
	seq := m.toast.seq + 1
	m.toast = toast{message: message, level: level, seq: seq}
	return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// refresh re-projects the store through the current filter and search
func (m *Model) refresh() {
	m.tasks = m.store.View(m.filter, m.search.Value())
	m.summary = m.store.Summary()
	m.selected = m.ensureValidSelection()
}

// ensureValidSelection ensures the current selection is within bounds
func (m Model) ensureValidSelection() int {
	if len(m.tasks) == 0 {
		return 0
	}
	if m.selected >= len(m.tasks) {
		return len(m.tasks) - 1
	}
	if m.selected < 0 {
		return 0
	}
	return m.selected
}

func (m *Model) selectID(id string) {
	for i, t := range m.tasks {
		if t.ID == id {
			m.selected = i
			return
		}
	}
}

func (m Model) current() (todo.Task, bool) {
	if len(m.tasks) == 0 || m.selected >= len(m.tasks) {
		return todo.Task{}, false
	}
	return m.tasks[m.selected], true
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	// Overlays replace the whole screen
	switch m.mode {
	case ModeEdit:
		return m.renderEditMode()
	case ModeConfirm:
		return m.renderConfirmation()
	case ModeImport:
		return m.renderImport()
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	listHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderList(m.width, listHeight),
		footer,
	)
}

// renderHeader renders the title, filter chips and the active input line
func (m Model) renderHeader() string {
	var chips []string
	for i, f := range todo.Filters {
		label := fmt.Sprintf("%d %s", i+1, strings.ToUpper(string(f[:1]))+string(f[1:]))
		if f == m.filter {
			chips = append(chips, m.styles.chipActive.Render(label))
		} else {
			chips = append(chips, m.styles.chip.Render(label))
		}
	}

	lines := []string{
		m.styles.title.Render("Tasks") + "  " + strings.Join(chips, " "),
	}

	switch {
	case m.mode == ModeAdd:
		lines = append(lines, m.addInput.View())
	case m.mode == ModeSearch:
		lines = append(lines, m.search.View())
	case m.search.Value() != "":
		lines = append(lines, m.styles.meta.Render("search: "+m.search.Value()))
	}

	lines = append(lines, strings.Repeat("─", max(m.width-2, 0)))
	return strings.Join(lines, "\n")
}

// renderList renders the visible tasks
func (m Model) renderList(width, height int) string {
	if len(m.tasks) == 0 {
		msg := "Nothing matches the current filter."
		if m.summary.Total == 0 {
			msg = "No tasks yet. Press a to add one."
		}
		return lipgloss.NewStyle().Height(max(height, 1)).Render(m.styles.meta.Render(msg))
	}

	// each task takes two lines
	visible := max(height/2, 1)
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}

	var lines []string
	for i := start; i < len(m.tasks) && i < start+visible; i++ {
		t := m.tasks[i]

		check := "[ ]"
		title := t.Title
		if t.Done {
			check = "[x]"
			title = m.styles.done.Render(title)
		}

		badge := m.styles.badgeActive.Render(t.Status())
		if t.Done {
			badge = m.styles.badgeDone.Render(t.Status())
		}

		line := fmt.Sprintf("%s %s  %s", check, title, badge)
		meta := "    " + m.styles.meta.Render(truncate(metaLine(t), width-6))

		if i == m.selected {
			line = m.styles.selected.Render(line)
		}
		lines = append(lines, line, meta)
	}

	return lipgloss.NewStyle().Height(max(height, 1)).Render(strings.Join(lines, "\n"))
}

// renderFooter renders counts, the toast and the help line
func (m Model) renderFooter() string {
	status := m.summary.String()
	if m.toast.message != "" {
		status += "  " + m.styles.toast(m.toast.level).Render(notify.Symbol(m.toast.level)+" "+m.toast.message)
	}
	return status + "\n" + m.styles.help.Render(m.renderHelp())
}

// renderHelp renders the help line
func (m Model) renderHelp() string {
	switch m.mode {
	case ModeAdd:
		return " Type a title • Enter: add • Esc: done"
	case ModeSearch:
		return " Type to search • ↑/↓: navigate • Enter: confirm • Esc: clear"
	}

	help := " j/k: navigate • a: add • space: toggle • e: edit • d: delete • /: search • f: filter"
	help += " • C: clear done • W: wipe • E: export • I: import • t: theme"
	if m.search.Value() != "" {
		help += " • Esc: clear search"
	}
	help += " • q: quit"
	return help
}

// renderEditMode renders the edit dialog overlay
func (m Model) renderEditMode() string {
	var lines []string
	lines = append(lines, "Edit Task")
	lines = append(lines, strings.Repeat("─", 40))
	lines = append(lines, "")

	titleLabel, notesLabel := "Title:", "Notes:"
	if m.editField == EditFieldTitle {
		titleLabel = m.styles.selected.Render(titleLabel)
	} else {
		notesLabel = m.styles.selected.Render(notesLabel)
	}

	lines = append(lines, titleLabel, m.editTitle.View(), "")
	lines = append(lines, notesLabel, m.editNotes.View(), "")

	if m.toast.message != "" && m.toast.level == notify.Error {
		lines = append(lines, m.styles.toast(notify.Error).Render(m.toast.message), "")
	}

	lines = append(lines, "Tab: switch field • Enter (title) / Ctrl+S: save • Esc: cancel")

	return m.overlay(strings.Join(lines, "\n"), 70)
}

// renderConfirmation renders the y/n prompt for destructive actions
func (m Model) renderConfirmation() string {
	var prompt string
	switch m.confirm {
	case confirmDelete:
		title := ""
		if t, ok := m.store.Get(m.confirmID); ok {
			title = t.Title
		}
		prompt = fmt.Sprintf("Delete '%s'? (y/n)", truncate(title, 40))
	case confirmClearCompleted:
		prompt = fmt.Sprintf("Clear %d completed tasks? (y/n)", m.summary.Completed())
	case confirmWipe:
		prompt = "Wipe ALL tasks? This cannot be undone. (y/n)"
	}

	content := lipgloss.NewStyle().
		Width(56).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center).
		Render(prompt)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.accent).
		Render(content)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

// renderImport renders the import path prompt
func (m Model) renderImport() string {
	lines := []string{
		"Import tasks from file:",
		"",
		m.importInput.View(),
		"",
		"Enter: import • Esc: cancel",
	}
	return m.overlay(strings.Join(lines, "\n"), 70)
}

// overlay draws content in a bordered box centered on the screen
func (m Model) overlay(content string, width int) string {
	box := m.styles.border.
		Padding(1).
		Width(min(width, max(m.width-4, 20))).
		Render(content)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}

func metaLine(t todo.Task) string {
	if t.Notes != "" {
		return strings.ReplaceAll(t.Notes, "\n", " ")
	}
	return "Created " + formatDate(t.CreatedAt)
}

// formatDate renders a ms timestamp in local time
func formatDate(ms int64) string {
	return time.UnixMilli(ms).Local().Format("2006-01-02 15:04")
}

// truncate shortens s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
