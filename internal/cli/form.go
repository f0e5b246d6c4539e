package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/clientdir/internal/core"
	"github.com/inovacc/clientdir/internal/model"
)

const (
	formInputName = iota
	formInputEmail
	formInputPhone
	formInputCompany
	formInputCount
)

// formFields maps input positions to their label and validation key.
var formFields = [formInputCount]struct {
	label string
	field string
}{
	{"Name", core.FieldName},
	{"Email", core.FieldEmail},
	{"Phone", core.FieldPhone},
	{"Company Name", core.FieldCompany},
}

// Form-level messages for failed saves.
const (
	msgSaveFailed   = "Failed to save client. Please try again."
	msgUpdateFailed = "Failed to update client. Please try again."
)

// FormModel is the add/edit client modal. It owns its draft; the dashboard
// decides what happens on submit.
type FormModel struct {
	focusIndex int
	inputs     []textinput.Model
	spinner    spinner.Model
	editID     int
	errors     core.FieldErrors
	saving     bool
	submitted  bool
	cancelled  bool
}

// NewAddForm returns an empty form in create mode.
func NewAddForm() FormModel {
	return newForm(model.Draft{}, 0)
}

// NewEditForm returns a form pre-populated from c, in edit mode.
func NewEditForm(c model.Client) FormModel {
	return newForm(model.DraftFromClient(c), c.ID)
}

func newForm(d model.Draft, editID int) FormModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := FormModel{
		inputs:  make([]textinput.Model, formInputCount),
		spinner: s,
		editID:  editID,
		errors:  core.FieldErrors{},
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 128
		t.Width = 40

		switch i {
		case formInputName:
			t.Placeholder = "Leanne Graham"
			t.SetValue(d.Name)
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case formInputEmail:
			t.Placeholder = "name@example.com"
			t.SetValue(d.Email)
		case formInputPhone:
			t.Placeholder = "1-770-736-8031"
			t.CharLimit = 32
			t.SetValue(d.Phone)
		case formInputCompany:
			t.Placeholder = "Romaguera-Crona"
			t.SetValue(d.Company)
		}

		m.inputs[i] = t
	}

	return m
}

// IsEdit reports whether the form edits an existing client.
func (m FormModel) IsEdit() bool {
	return m.editID != 0
}

// EditID returns the id of the client being edited, or 0.
func (m FormModel) EditID() int {
	return m.editID
}

// Draft returns the current form content.
func (m FormModel) Draft() model.Draft {
	return model.Draft{
		Name:    m.inputs[formInputName].Value(),
		Email:   m.inputs[formInputEmail].Value(),
		Phone:   m.inputs[formInputPhone].Value(),
		Company: m.inputs[formInputCompany].Value(),
	}
}

// Errors returns the errors currently shown.
func (m FormModel) Errors() core.FieldErrors {
	return m.errors
}

// Saving reports whether a save is in flight.
func (m FormModel) Saving() bool {
	return m.saving
}

// setErrors replaces the displayed errors.
func (m *FormModel) setErrors(errs core.FieldErrors) {
	m.errors = errs
	if m.errors == nil {
		m.errors = core.FieldErrors{}
	}
}

// startSaving marks a save in flight and starts the spinner.
func (m *FormModel) startSaving() tea.Cmd {
	m.saving = true
	m.errors = core.FieldErrors{}

	return m.spinner.Tick
}

// saveFailed keeps the input and shows a single form-level message.
func (m *FormModel) saveFailed() {
	m.saving = false

	msg := msgSaveFailed
	if m.IsEdit() {
		msg = msgUpdateFailed
	}

	m.errors = core.FieldErrors{core.FieldForm: msg}
}

// takeSubmit reports and clears a pending submit request.
func (m *FormModel) takeSubmit() bool {
	s := m.submitted
	m.submitted = false

	return s
}

func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.saving {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		// Inputs are locked while a save is in flight.
		if m.saving {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			m.cancelled = true
			return m, nil

		case "ctrl+s":
			m.submitted = true
			return m, nil

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Submit on enter when on the submit button
			if s == "enter" && m.focusIndex == len(m.inputs) {
				m.submitted = true
				return m, nil
			}

			// Cycle indexes
			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.refocus()
		}
	}

	// Handle character input and blinking
	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *FormModel) refocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		if i == m.focusIndex {
			// Set focused state
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle

			continue
		}
		// Remove the focused state
		m.inputs[i].Blur()
		m.inputs[i].PromptStyle = noStyle
		m.inputs[i].TextStyle = noStyle
	}

	return tea.Batch(cmds...)
}

func (m *FormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	// Only text inputs with Focus() set will respond, so it's safe to simply
	// update all of them here without any further logic.
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m FormModel) View() string {
	var b strings.Builder

	title := "Add New Client"
	if m.IsEdit() {
		title = "Edit Client"
	}

	b.WriteString(headerStyle.Render(title) + "\n\n")

	for i, f := range formFields {
		fmt.Fprintf(&b, " %s\n %s\n", blurredStyle.Render(f.label+":"), m.inputs[i].View())

		if msg, ok := m.errors[f.field]; ok {
			b.WriteString(" " + errorStyle.Render(msg) + "\n")
		}

		b.WriteString("\n")
	}

	if msg, ok := m.errors[core.FieldForm]; ok {
		b.WriteString(" " + errorStyle.Render(msg) + "\n\n")
	}

	switch {
	case m.saving && m.IsEdit():
		b.WriteString(" " + m.spinner.View() + " Updating...")
	case m.saving:
		b.WriteString(" " + m.spinner.View() + " Saving...")
	default:
		label := "Save Client"
		if m.IsEdit() {
			label = "Update Client"
		}

		b.WriteString(" " + button(label, m.focusIndex == len(m.inputs)))
	}

	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render(" tab/shift+tab: navigate • enter: submit • ctrl+s: save • esc: cancel"))

	return modalStyle.Render(b.String())
}
