package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-inventory-keeper/internal/app"
	"github.com/MKhiriev/go-inventory-keeper/internal/navigation"
	"github.com/MKhiriev/go-inventory-keeper/models"
)

// appModel feeds every line typed into the text field to the controller and
// redraws the resulting screen.
type appModel struct {
	ctx        context.Context
	controller *navigation.Controller
	buildInfo  models.AppBuildInfo

	input textinput.Model

	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, controller *navigation.Controller, buildInfo models.AppBuildInfo) appModel {
	input := textinput.New()
	input.CharLimit = 256
	input.Width = 40
	input.EchoCharacter = '*'
	input.Focus()

	m := appModel{
		ctx:        ctx,
		controller: controller,
		buildInfo:  buildInfo,
		input:      input,
	}
	m.syncInput()
	return m
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			m.showBuildInfo = !m.showBuildInfo
			return m, nil
		case key.Matches(keyMsg, keys.esc) && m.showBuildInfo:
			m.showBuildInfo = false
			return m, nil
		}

		if m.showBuildInfo {
			return m, nil
		}

		if key.Matches(keyMsg, keys.enter) {
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	m.controller.Submit(m.ctx, line)
	if m.controller.Done() {
		return m, tea.Quit
	}

	m.syncInput()
	return m, nil
}

// syncInput masks the field while the controller asks for a password.
func (m *appModel) syncInput() {
	s := m.controller.Screen()

	if s.Secret {
		m.input.EchoMode = textinput.EchoPassword
	} else {
		m.input.EchoMode = textinput.EchoNormal
	}

	if s.Prompt != "" {
		m.input.Prompt = s.Prompt
	} else {
		m.input.Prompt = app.MsgEnterChoice
	}
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(overlayBoxStyle.Render(renderBuildInfoWindow(m.buildInfo)))
	}
	return appStyle.Render(renderScreen(m.controller.Screen(), m.input.View()))
}
