// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/netalert/internal/form"
	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/internal/service"
	"github.com/MKhiriev/netalert/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusKind int

const (
	focusDropdown focusKind = iota
	focusCheckbox
	focusToggle
	focusInput
)

// focusItem is one selectable row of the page. id is the control or field
// name; index points into the checkbox or input slice.
type focusItem struct {
	kind  focusKind
	id    string
	index int
}

// consoleModel is the whole admin page. Service calls run as commands on a
// copy of the page; while one is in flight the page does not accept edits.
type consoleModel struct {
	ctx     context.Context
	console service.ClientConsoleService
	build   models.AppBuildInfo
	logger  *logger.Logger

	page *form.Page

	selected   map[string]int
	toggles    map[string]bool
	inputs     []textinput.Model
	inputIndex map[string]int

	items []focusItem
	focus int

	busy   bool
	status string

	showOption    bool
	option        optionFormModel
	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
}

func newConsoleModel(ctx context.Context, console service.ClientConsoleService, build models.AppBuildInfo, logger *logger.Logger) consoleModel {
	m := consoleModel{
		ctx:        ctx,
		console:    console,
		build:      build,
		logger:     logger,
		page:       form.NewPage(),
		selected:   make(map[string]int),
		toggles:    make(map[string]bool),
		inputIndex: make(map[string]int),
		busy:       true,
	}

	for _, f := range form.ServerConfigFields {
		if f.Kind != form.KindString {
			continue
		}
		in := textinput.New()
		in.Width = 40
		in.CharLimit = 256
		if f.Secret {
			in.EchoMode = textinput.EchoPassword
		}
		m.inputIndex[f.Name] = len(m.inputs)
		m.inputs = append(m.inputs, in)
	}

	m.rebuildItems()
	return m
}

func (m consoleModel) Init() tea.Cmd {
	return m.cmdLoad()
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		m.finish(msg.page, msg.err)
		if msg.err != nil {
			m.showError = true
			m.errorOverlay = errorOverlayModel{message: msg.page.Message.Text}
		}
		return m, nil
	case pageSavedMsg:
		m.finish(msg.page, msg.err)
		return m, nil
	case appearanceDoneMsg:
		m.finish(msg.page, msg.err)
		return m, nil
	case testAlertDoneMsg:
		m.finish(msg.page, msg.err)
		return m, nil
	case optionSavedMsg:
		m.finish(msg.page, msg.err)
		if msg.err == nil {
			m.showOption = false
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.quit) {
		return m, tea.Quit
	}

	switch {
	case m.showError:
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.showError = false
		}
		return m, nil
	case m.showBuildInfo:
		if key.Matches(keyMsg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	case m.busy:
		return m, nil
	case m.showOption:
		return m.updateOptionForm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.save):
		return m.start(m.cmdSave())
	case key.Matches(keyMsg, keys.reload):
		return m.start(m.cmdLoad())
	case key.Matches(keyMsg, keys.appearance):
		return m.start(m.cmdUpdateAppearance())
	case key.Matches(keyMsg, keys.testAlert):
		return m.start(m.cmdSendTestAlert())
	case key.Matches(keyMsg, keys.newOption):
		m.option = newOptionFormModel()
		m.showOption = true
		return m, nil
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.tab, keys.down):
		m.moveFocus(1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab, keys.up):
		m.moveFocus(-1)
		return m, nil
	}

	return m.updateFocused(keyMsg)
}

func (m consoleModel) updateOptionForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var (
		result optionFormResult
		cmd    tea.Cmd
	)
	m.option, result, cmd = m.option.update(keyMsg)

	switch result {
	case optionFormCancel:
		m.showOption = false
		return m, nil
	case optionFormSubmit:
		return m.start(m.cmdUpsertOption(m.option.toUpsert()))
	}
	return m, cmd
}

func (m consoleModel) updateFocused(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	item := m.items[m.focus]

	switch item.kind {
	case focusDropdown:
		ctrl, ok := m.page.Dropdown(item.id)
		if !ok || len(ctrl.Options) == 0 {
			return m, nil
		}
		n := len(ctrl.Options)
		switch {
		case key.Matches(keyMsg, keys.right):
			m.selected[item.id] = (m.selected[item.id] + 1) % n
		case key.Matches(keyMsg, keys.left):
			m.selected[item.id] = (m.selected[item.id] + n - 1) % n
		}
	case focusCheckbox:
		if key.Matches(keyMsg, keys.toggle) {
			m.page.Checkboxes[item.index].Checked = !m.page.Checkboxes[item.index].Checked
		}
	case focusToggle:
		if key.Matches(keyMsg, keys.toggle) {
			m.toggles[item.id] = !m.toggles[item.id]
		}
	case focusInput:
		var cmd tea.Cmd
		m.inputs[item.index], cmd = m.inputs[item.index].Update(keyMsg)
		return m, cmd
	}

	return m, nil
}

func (m consoleModel) start(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	m.busy = true
	m.status = ""
	return m, cmd
}

// finish installs the page returned by a service call.
func (m *consoleModel) finish(page *form.Page, err error) {
	m.busy = false
	m.status = humanizeServerUnavailableError(err)
	if err != nil && !errors.Is(err, service.ErrNotImplemented) {
		m.logger.Warn().Err(err).Msg("console action failed")
	}
	m.setPage(page)
}

// setPage replaces the page and copies its values into the editors.
func (m *consoleModel) setPage(page *form.Page) {
	m.page = page

	for _, f := range form.ServerConfigFields {
		raw := page.Values[f.Name]
		switch f.Kind {
		case form.KindBool:
			v, err := form.ParseBool(raw)
			m.toggles[f.Name] = err == nil && v
		case form.KindString:
			m.inputs[m.inputIndex[f.Name]].SetValue(raw)
		}
	}

	for _, ctrl := range page.Dropdowns {
		if m.selected[ctrl.ID] >= len(ctrl.Options) {
			m.selected[ctrl.ID] = 0
		}
	}

	m.rebuildItems()
}

// collectValues renders the editors as form values. Unchecked toggles are
// left out, like unchecked HTML checkboxes.
func (m consoleModel) collectValues() form.Values {
	values := make(form.Values, len(form.ServerConfigFields))
	for _, f := range form.ServerConfigFields {
		switch f.Kind {
		case form.KindBool:
			if m.toggles[f.Name] {
				values[f.Name] = "true"
			}
		case form.KindString:
			values[f.Name] = m.inputs[m.inputIndex[f.Name]].Value()
		}
	}
	return values
}

func (m *consoleModel) rebuildItems() {
	items := make([]focusItem, 0, len(m.page.Dropdowns)+len(m.page.Checkboxes)+len(form.ServerConfigFields))
	for _, ctrl := range m.page.Dropdowns {
		items = append(items, focusItem{kind: focusDropdown, id: ctrl.ID})
	}
	for i, cb := range m.page.Checkboxes {
		items = append(items, focusItem{kind: focusCheckbox, id: cb.ID, index: i})
	}
	for _, f := range form.ServerConfigFields {
		if f.Kind == form.KindBool {
			items = append(items, focusItem{kind: focusToggle, id: f.Name})
			continue
		}
		items = append(items, focusItem{kind: focusInput, id: f.Name, index: m.inputIndex[f.Name]})
	}

	m.items = items
	if m.focus >= len(items) {
		m.focus = 0
	}
	m.syncInputFocus()
}

func (m *consoleModel) moveFocus(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	m.focus = (m.focus + delta + n) % n
	m.syncInputFocus()
}

func (m *consoleModel) syncInputFocus() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if len(m.items) == 0 {
		return
	}
	if item := m.items[m.focus]; item.kind == focusInput {
		m.inputs[item.index].Focus()
	}
}

// selectedOption returns the option currently shown by a dropdown.
func (m consoleModel) selectedOption(ctrl models.SelectControl) (models.Option, bool) {
	if len(ctrl.Options) == 0 {
		return models.Option{}, false
	}
	return ctrl.Options[m.selected[ctrl.ID]], true
}
