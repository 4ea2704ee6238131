package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/apperr"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/comparison"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/store"
)

// recordItem represents a saved taxonomy in the list
type recordItem struct {
	rec      store.SavedTaxonomy
	selected bool
}

func (i recordItem) Title() string {
	var checkbox string
	if i.selected {
		checkbox = Success.Render("[✓] ")
	} else {
		checkbox = Dim.Render("[ ] ")
	}
	return checkbox + i.rec.Title
}

func (i recordItem) Description() string {
	score := Muted.Render("not evaluated")
	if i.rec.Result != nil {
		score = fmt.Sprintf("overall %.1f", i.rec.Result.OverallMaturityScore)
	}
	return fmt.Sprintf("%s %s", Dim.Render(i.rec.ID+" ·"), score)
}

func (i recordItem) FilterValue() string { return i.rec.Title }

// selectorModel is the Bubble Tea model picking the records to compare
type selectorModel struct {
	textInput textinput.Model
	list      list.Model

	records   []store.SavedTaxonomy
	selection *comparison.Selection
	filter    string
	notice    string
	quitting  bool
	confirmed bool
	width     int
	height    int
}

// NewSelector creates an interactive picker over records. At most
// comparison.MaxSelected records can be checked at once; preselected ids are
// checked up front.
func NewSelector(records []store.SavedTaxonomy, preselected ...string) *selectorModel {
	ti := textinput.New()
	ti.Placeholder = "Filter by title..."
	ti.CharLimit = 120
	ti.SetWidth(50)

	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(1)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorHighlight).
		BorderForeground(ColorPrimary)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(ColorTextDim).
		BorderForeground(ColorPrimary)

	l := list.New([]list.Item{}, delegate, 76, 16)
	l.Title = "Saved Taxonomies"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false) // filtering goes through textInput
	l.SetShowHelp(false)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 0, 1, 0)

	m := &selectorModel{
		textInput: ti,
		list:      l,
		records:   records,
		selection: comparison.NewSelection(),
		width:     80,
		height:    24,
	}
	for _, id := range preselected {
		if m.find(id) >= 0 {
			m.selection.Add(id)
		}
	}
	m.refresh()
	return m
}

// Init initializes the model
func (m *selectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.textInput.Focused() {
			switch msg.String() {
			case "ctrl+c", "esc":
				m.quitting = true
				return m, tea.Quit
			case "enter", "down", "up":
				m.textInput.Blur()
				return m, nil
			default:
				var cmd tea.Cmd
				m.textInput, cmd = m.textInput.Update(msg)
				m.setFilter(m.textInput.Value())
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if m.confirm() {
				return m, tea.Quit
			}
			return m, nil
		case "space", " ", "s":
			if i, ok := m.list.SelectedItem().(recordItem); ok {
				m.toggle(i.rec.ID)
			}
			return m, nil
		case "/", "i":
			m.textInput.Focus()
			return m, textinput.Blink
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-10)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model
func (m *selectorModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(1, 0)
	b.WriteString(titleStyle.Render("Compare Saved Taxonomies"))
	b.WriteString("\n\n")

	b.WriteString(Dim.Render("Filter: "))
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.list.View())
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s\n",
		Success.Render("Selected:"),
		Highlight.Render(fmt.Sprintf("%d/%d", m.selection.Len(), comparison.MaxSelected))))

	if m.notice != "" {
		b.WriteString(Warning.Render(m.notice))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(ColorTextDim)
	if m.textInput.Focused() {
		b.WriteString(helpStyle.Render("type to filter · enter/↓: back to list · esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("space: select · ↑/↓: navigate · enter: compare · /: filter · esc: cancel"))
	}

	return tea.NewView(b.String())
}

// toggle flips the selection of id, refusing to go past the cap.
func (m *selectorModel) toggle(id string) {
	m.notice = ""
	wasSelected := m.selection.Contains(id)
	if !m.selection.Toggle(id) && !wasSelected {
		m.notice = fmt.Sprintf("At most %d taxonomies can be compared", comparison.MaxSelected)
	}
	m.refresh()
}

// confirm accepts the selection when enough records are checked.
func (m *selectorModel) confirm() bool {
	if !m.selection.Ready() {
		m.notice = fmt.Sprintf("Select at least %d taxonomies", comparison.MinSelected)
		return false
	}
	m.confirmed = true
	m.quitting = true
	return true
}

func (m *selectorModel) setFilter(q string) {
	if q == m.filter {
		return
	}
	m.filter = q
	m.refresh()
}

// refresh rebuilds the visible items from records, the filter and the
// selection.
func (m *selectorModel) refresh() {
	q := strings.ToLower(strings.TrimSpace(m.filter))
	items := make([]list.Item, 0, len(m.records))
	for _, rec := range m.records {
		if q != "" && !strings.Contains(strings.ToLower(rec.Title), q) {
			continue
		}
		items = append(items, recordItem{rec: rec, selected: m.selection.Contains(rec.ID)})
	}
	m.list.SetItems(items)
}

func (m *selectorModel) find(id string) int {
	for i, rec := range m.records {
		if rec.ID == id {
			return i
		}
	}
	return -1
}

// Selected returns the checked record ids in selection order
func (m *selectorModel) Selected() []string {
	return m.selection.IDs()
}

// WasConfirmed returns true if the user confirmed the selection
func (m *selectorModel) WasConfirmed() bool {
	return m.confirmed
}

// RunSelector runs the interactive picker and returns the ids to compare
func RunSelector(records []store.SavedTaxonomy, preselected ...string) ([]string, error) {
	p := tea.NewProgram(NewSelector(records, preselected...))
	m, err := p.Run()
	if err != nil {
		return nil, err
	}

	model := m.(*selectorModel)
	if !model.WasConfirmed() {
		return nil, apperr.ErrCancelled
	}

	return model.Selected(), nil
}
