package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/clientdir/internal/core"
	"github.com/inovacc/clientdir/internal/database"
	"github.com/inovacc/clientdir/internal/model"
)

const fmtV1 = " %s\n %s\n\n"

const (
	configInputAPIURL = iota
	configInputTimeout
	configInputPersistCreates
	configInputLogLevel
	configInputLogFormat
	configInputCount
)

type ConfigureModel struct {
	focusIndex int
	inputs     []textinput.Model
	db         database.Store
	Saved      bool
	Err        error
	invalid    error
}

// NewConfigureModel loads the stored configuration (or the defaults) into an
// editable form.
func NewConfigureModel(db database.Store) (ConfigureModel, error) {
	cfg, err := db.GetConfig()
	if err != nil {
		return ConfigureModel{}, err
	}

	m := ConfigureModel{
		inputs: make([]textinput.Model, configInputCount),
		db:     db,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256

		switch i {
		case configInputAPIURL:
			t.Placeholder = model.DefaultAPIURL
			t.SetValue(cfg.APIURL)
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case configInputTimeout:
			t.Placeholder = strconv.Itoa(model.DefaultTimeoutSeconds)
			t.CharLimit = 6
			t.SetValue(strconv.Itoa(cfg.TimeoutSeconds))
		case configInputPersistCreates:
			t.Placeholder = "false"
			t.CharLimit = 5
			t.SetValue(strconv.FormatBool(cfg.RemotePersistsCreates))
		case configInputLogLevel:
			t.Placeholder = "debug, info, warn, error"
			t.CharLimit = 5
			t.SetValue(cfg.LogLevel)
		case configInputLogFormat:
			t.Placeholder = "text or json"
			t.CharLimit = 4
			t.SetValue(cfg.LogFormat)
		}

		m.inputs[i] = t
	}

	return m, nil
}

func (m *ConfigureModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConfigureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case configSavedMsg:
		m.Saved = true
		return m, tea.Quit
	case configErrMsg:
		m.Err = msg.err
		return m, tea.Quit
	case configInvalidMsg:
		m.invalid = msg.err
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Submit on enter when on submitted button
			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.saveConfig
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

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
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

			return m, tea.Batch(cmds...)
		}
	}

	// Handle character input and blinking
	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *ConfigureModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *ConfigureModel) View() string {
	if m.Saved {
		return successStyle.Render("\n  ✓ Configuration saved successfully!\n\n")
	}

	if m.Err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  ✗ Error: %v\n\n", m.Err))
	}

	s := headerStyle.Render("Configure Client Directory") + "\n"
	s += blurredStyle.Render("Edit the fields below and press Tab to navigate") + "\n\n"
	s += fmt.Sprintf(fmtV1, blurredStyle.Render("API URL:"), m.inputs[configInputAPIURL].View())
	s += fmt.Sprintf(fmtV1, blurredStyle.Render("Timeout (seconds):"), m.inputs[configInputTimeout].View())
	s += fmt.Sprintf(fmtV1, blurredStyle.Render("Remote persists creates (true/false):"), m.inputs[configInputPersistCreates].View())
	s += fmt.Sprintf(fmtV1, blurredStyle.Render("Log level:"), m.inputs[configInputLogLevel].View())
	s += fmt.Sprintf(fmtV1, blurredStyle.Render("Log format:"), m.inputs[configInputLogFormat].View())

	if m.invalid != nil {
		s += " " + errorStyle.Render(m.invalid.Error()) + "\n"
	}

	s += fmt.Sprintf("\n %s\n\n", button("Submit", m.focusIndex == len(m.inputs)))
	s += subtleStyle.Render(" tab/shift+tab: navigate • enter: submit • esc: quit")

	return s
}

// config parses the form into a Config.
func (m *ConfigureModel) config() (model.Config, error) {
	cfg := model.Config{
		APIURL:    strings.TrimSpace(m.inputs[configInputAPIURL].Value()),
		LogLevel:  strings.ToLower(strings.TrimSpace(m.inputs[configInputLogLevel].Value())),
		LogFormat: strings.ToLower(strings.TrimSpace(m.inputs[configInputLogFormat].Value())),
	}

	timeout, err := strconv.Atoi(strings.TrimSpace(m.inputs[configInputTimeout].Value()))
	if err != nil {
		return cfg, fmt.Errorf("timeout must be a whole number of seconds")
	}

	cfg.TimeoutSeconds = timeout

	if v := strings.TrimSpace(m.inputs[configInputPersistCreates].Value()); v != "" {
		persist, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("remote persists creates must be true or false")
		}

		cfg.RemotePersistsCreates = persist
	}

	return cfg, core.ValidateConfig(cfg)
}

func (m *ConfigureModel) saveConfig() tea.Msg {
	cfg, err := m.config()
	if err != nil {
		return configInvalidMsg{err}
	}

	if err := m.db.SaveConfig(&cfg); err != nil {
		return configErrMsg{err}
	}

	return configSavedMsg{}
}

type configSavedMsg struct{}
type configErrMsg struct{ err error }
type configInvalidMsg struct{ err error }
