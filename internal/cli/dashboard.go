package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/clientdir/internal/core"
	"github.com/inovacc/clientdir/internal/model"
)

type dashboardMode int

const (
	modeTable dashboardMode = iota
	modeSearch
	modeForm
	modeDetail
	modeConfirm
)

const (
	msgNoClients     = "No clients found."
	msgConfirmDelete = "Are you sure you want to delete this client?"
	msgDeleteFailed  = "Failed to delete client."
	searchHint       = "Search by name, email, or company"
	pendingLabel     = "deleting…"
)

type clientsLoadedMsg struct {
	err error
}

type clientSavedMsg struct {
	client *model.Client
	edit   bool
	err    error
}

type clientDeletedMsg struct {
	id  int
	err error
}

// DashboardOptions configures the dashboard
type DashboardOptions struct {
	Logger *slog.Logger

	// Timeout bounds each remote operation started from the dashboard
	Timeout time.Duration
}

// DashboardModel is the interactive client directory: a searchable table with
// add, edit, detail and delete modals on top.
type DashboardModel struct {
	dir     *core.Directory
	logger  *slog.Logger
	timeout time.Duration

	mode    dashboardMode
	table   table.Model
	search  textinput.Model
	spinner spinner.Model
	help    help.Model
	form    FormModel

	visible   []model.Client
	detail    model.Client
	confirmID int

	loaded    bool
	loadErr   error
	status    string
	statusErr bool
	width     int
}

// NewDashboard creates a dashboard over dir. The collection is loaded by Init.
func NewDashboard(dir *core.Directory, opts DashboardOptions) DashboardModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Email", Width: 28},
		{Title: "Phone", Width: 16},
		{Title: "Company", Width: 22},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
		table.WithKeyMap(tableKeyMap()),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true).BorderBottom(true)
	ts.Selected = ts.Selected.Foreground(selectedForeground).Background(selectedBackground).Bold(false)
	t.SetStyles(ts)

	si := textinput.New()
	si.Placeholder = searchHint
	si.Prompt = "/ "
	si.CharLimit = 64
	si.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return DashboardModel{
		dir:     dir,
		logger:  logger,
		timeout: opts.Timeout,
		table:   t,
		search:  si,
		spinner: s,
		help:    help.New(),
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadClients())
}

func (m DashboardModel) loadClients() tea.Cmd {
	dir, timeout := m.dir, m.timeout

	return func() tea.Msg {
		ctx, cancel := core.WithTimeout(context.Background(), timeout)
		defer cancel()

		return clientsLoadedMsg{err: dir.Load(ctx)}
	}
}

func (m DashboardModel) saveClient(editID int, draft model.Draft) tea.Cmd {
	dir, timeout := m.dir, m.timeout

	return func() tea.Msg {
		ctx, cancel := core.WithTimeout(context.Background(), timeout)
		defer cancel()

		if editID != 0 {
			c, err := dir.Update(ctx, editID, draft)
			return clientSavedMsg{client: c, edit: true, err: err}
		}

		c, err := dir.Create(ctx, draft)

		return clientSavedMsg{client: c, err: err}
	}
}

func (m DashboardModel) deleteClient(id int) tea.Cmd {
	dir, timeout := m.dir, m.timeout

	return func() tea.Msg {
		ctx, cancel := core.WithTimeout(context.Background(), timeout)
		defer cancel()

		return clientDeletedMsg{id: id, err: dir.Delete(ctx, id)}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetHeight(max(5, msg.Height-12))

		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd

		if !m.loaded {
			var cmd tea.Cmd

			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

		if m.mode == modeForm && m.form.Saving() {
			var cmd tea.Cmd

			m.form, cmd = m.form.Update(msg)
			cmds = append(cmds, cmd)
		}

		return m, tea.Batch(cmds...)

	case clientsLoadedMsg:
		m.loaded = true
		m.loadErr = msg.err
		m.refresh()

		return m, nil

	case clientSavedMsg:
		return m.handleSaved(msg), nil

	case clientDeletedMsg:
		return m.handleDeleted(msg), nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeDetail:
			return m.updateDetail(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateTable(msg)
		}
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeSearch:
		var cmd tea.Cmd

		m.search, cmd = m.search.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m DashboardModel) handleSaved(msg clientSavedMsg) DashboardModel {
	if msg.err != nil {
		if fields, ok := core.AsValidationError(msg.err); ok {
			m.form.saving = false
			m.form.setErrors(fields)

			return m
		}

		m.form.saveFailed()

		return m
	}

	m.mode = modeTable

	if msg.edit {
		m.setStatus(fmt.Sprintf("Client %q updated.", msg.client.Name), false)
	} else {
		m.setStatus(fmt.Sprintf("Client %q added.", msg.client.Name), false)
	}

	m.refresh()

	if !msg.edit {
		m.selectID(msg.client.ID)
	}

	return m
}

func (m DashboardModel) handleDeleted(msg clientDeletedMsg) DashboardModel {
	if msg.err != nil {
		m.dir.Store().SetPending(msg.id, false)
		m.setStatus(msgDeleteFailed, true)
		m.refresh()

		return m
	}

	m.setStatus("Client deleted.", false)
	m.refresh()

	return m
}

func (m DashboardModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, dashboardKeys.Quit) {
		return m, tea.Quit
	}

	// Nothing but quit until the collection is in.
	if !m.loaded || m.loadErr != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, dashboardKeys.Search):
		m.mode = modeSearch
		return m, m.search.Focus()

	case key.Matches(msg, dashboardKeys.Clear):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.refresh()
		}

		m.status = ""

		return m, nil

	case key.Matches(msg, dashboardKeys.Add):
		m.form = NewAddForm()
		m.mode = modeForm

		return m, m.form.Init()

	case key.Matches(msg, dashboardKeys.View):
		if c, ok := m.selected(); ok {
			m.detail = c
			m.mode = modeDetail
		}

		return m, nil

	case key.Matches(msg, dashboardKeys.Edit):
		if c, ok := m.selected(); ok {
			m.form = NewEditForm(c)
			m.mode = modeForm

			return m, m.form.Init()
		}

		return m, nil

	case key.Matches(msg, dashboardKeys.Delete):
		if c, ok := m.selected(); ok && !m.dir.Store().Pending(c.ID) {
			m.confirmID = c.ID
			m.mode = modeConfirm
		}

		return m, nil
	}

	var cmd tea.Cmd

	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m DashboardModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.mode = modeTable
		m.refresh()

		return m, nil

	case "enter":
		m.search.Blur()
		m.mode = modeTable

		return m, nil

	case "up", "down":
		var cmd tea.Cmd

		m.table, cmd = m.table.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)
	m.refresh()

	return m, cmd
}

func (m DashboardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	m.form, cmd = m.form.Update(msg)

	if m.form.cancelled {
		m.mode = modeTable
		return m, nil
	}

	if m.form.takeSubmit() {
		draft := m.form.Draft()

		if errs := core.Validate(draft); !errs.Empty() {
			m.form.setErrors(errs)
			return m, nil
		}

		return m, tea.Batch(m.form.startSaving(), m.saveClient(m.form.EditID(), draft))
	}

	return m, cmd
}

func (m DashboardModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter", "backspace":
		m.mode = modeTable

	case "e":
		m.form = NewEditForm(m.detail)
		m.mode = modeForm

		return m, m.form.Init()

	case "d", "x":
		if !m.dir.Store().Pending(m.detail.ID) {
			m.confirmID = m.detail.ID
			m.mode = modeConfirm
		}
	}

	return m, nil
}

func (m DashboardModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		id := m.confirmID

		m.mode = modeTable
		m.confirmID = 0
		m.dir.Store().SetPending(id, true)
		m.refresh()

		return m, m.deleteClient(id)

	case "n", "N", "esc", "q":
		m.mode = modeTable
		m.confirmID = 0
	}

	return m, nil
}

func (m *DashboardModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// refresh recomputes the visible rows from the store and the search query.
func (m *DashboardModel) refresh() {
	m.visible = m.dir.Search(m.search.Value())

	rows := make([]table.Row, 0, len(m.visible))
	for _, c := range m.visible {
		rows = append(rows, m.row(c))
	}

	m.table.SetRows(rows)

	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *DashboardModel) row(c model.Client) table.Row {
	name := c.Name
	if h := c.Handle(); h != "" {
		name += " " + h
	}

	status := ""

	switch {
	case m.dir.Store().Pending(c.ID):
		status = pendingLabel
	case c.IsLocal():
		status = "local"
	}

	return table.Row{name, c.Email, c.ShortPhone(), c.Company.Name, status}
}

func (m *DashboardModel) selectID(id int) {
	for i, c := range m.visible {
		if c.ID == id {
			m.table.SetCursor(i)
			return
		}
	}
}

func (m DashboardModel) selected() (model.Client, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return model.Client{}, false
	}

	return m.visible[i], true
}

func (m DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Client Directory") + "\n")
	b.WriteString(subtleStyle.Render("Manage client records, view details, and add new contacts.") + "\n\n")

	switch {
	case !m.loaded:
		b.WriteString(m.spinner.View() + " Loading clients...\n")
		b.WriteString("\n" + subtleStyle.Render("q: quit"))

		return docStyle.Render(b.String())

	case m.loadErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.loadErr)) + "\n")
		b.WriteString("\n" + subtleStyle.Render("q: quit"))

		return docStyle.Render(b.String())
	}

	switch m.mode {
	case modeForm:
		b.WriteString(m.form.View())
		return docStyle.Render(b.String())

	case modeDetail:
		b.WriteString(detailView(m.detail))
		return docStyle.Render(b.String())

	case modeConfirm:
		b.WriteString(m.confirmView())
		return docStyle.Render(b.String())
	}

	b.WriteString(m.search.View() + "\n\n")

	if len(m.visible) == 0 {
		b.WriteString(subtleStyle.Render(msgNoClients) + "\n")
	} else {
		b.WriteString(m.table.View() + "\n")
	}

	if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}

		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.help.View(dashboardKeys))

	return docStyle.Render(b.String())
}

func (m DashboardModel) confirmView() string {
	var b strings.Builder

	b.WriteString(errorStyle.Bold(true).Render("Delete Client") + "\n\n")

	if c, ok := m.dir.Store().Get(m.confirmID); ok {
		b.WriteString(labelStyle.Render(c.Name) + "\n\n")
	}

	b.WriteString(msgConfirmDelete + "\n\n")
	b.WriteString(subtleStyle.Render("y: delete • n/esc: cancel"))

	return dangerModalStyle.Render(b.String())
}
