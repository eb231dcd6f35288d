// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/netalert/internal/form"
	"github.com/MKhiriev/netalert/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	optionFocusGroup = iota
	optionFocusLabel
	optionFocusValue
	optionFocusCount
)

// optionFormModel collects one option for a metadata group. The group row
// cycles through the dropdown bindings with left/right.
type optionFormModel struct {
	groupIdx int
	inputs   []textinput.Model
	focus    int
	err      string
}

// optionFormResult is what the form asks its owner to do after a key press.
type optionFormResult int

const (
	optionFormContinue optionFormResult = iota
	optionFormCancel
	optionFormSubmit
)

func newOptionFormModel() optionFormModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 128
	}
	inputs[0].Placeholder = "label"
	inputs[1].Placeholder = "value"

	return optionFormModel{inputs: inputs}
}

func (m optionFormModel) binding() form.DropdownBinding {
	return form.DropdownBindings[m.groupIdx]
}

// toUpsert builds the record with the label and value fields of the
// selected group.
func (m optionFormModel) toUpsert() models.OptionUpsert {
	b := m.binding()
	return models.OptionUpsert{
		Group: b.Group,
		Record: models.OptionRecord{
			b.LabelField: strings.TrimSpace(m.inputs[0].Value()),
			b.ValueField: strings.TrimSpace(m.inputs[1].Value()),
		},
	}
}

func (m optionFormModel) update(msg tea.Msg) (optionFormModel, optionFormResult, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, optionFormContinue, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, optionFormCancel, nil
	case key.Matches(keyMsg, keys.enter):
		if strings.TrimSpace(m.inputs[0].Value()) == "" || strings.TrimSpace(m.inputs[1].Value()) == "" {
			m.err = "Label and value are required"
			return m, optionFormContinue, nil
		}
		return m, optionFormSubmit, nil
	case key.Matches(keyMsg, keys.tab, keys.down):
		m.setFocus((m.focus + 1) % optionFocusCount)
		return m, optionFormContinue, nil
	case key.Matches(keyMsg, keys.backtab, keys.up):
		m.setFocus((m.focus + optionFocusCount - 1) % optionFocusCount)
		return m, optionFormContinue, nil
	}

	if m.focus == optionFocusGroup {
		n := len(form.DropdownBindings)
		switch {
		case key.Matches(keyMsg, keys.right):
			m.groupIdx = (m.groupIdx + 1) % n
		case key.Matches(keyMsg, keys.left):
			m.groupIdx = (m.groupIdx + n - 1) % n
		}
		return m, optionFormContinue, nil
	}

	var cmd tea.Cmd
	idx := m.focus - optionFocusLabel
	m.inputs[idx], cmd = m.inputs[idx].Update(keyMsg)
	m.err = ""
	return m, optionFormContinue, cmd
}

func (m *optionFormModel) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus-optionFocusLabel {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m optionFormModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New option"))
	b.WriteString("\n\n")

	b.WriteString(m.row(optionFocusGroup, "Group", "◀ "+m.binding().Group+" ▶"))
	b.WriteString(m.row(optionFocusLabel, "Label", m.inputs[0].View()))
	b.WriteString(m.row(optionFocusValue, "Value", m.inputs[1].View()))

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab next field  ←/→ group  enter save  esc cancel"))
	return overlayBoxStyle.Render(b.String())
}

func (m optionFormModel) row(focus int, label, value string) string {
	marker := "  "
	if m.focus == focus {
		marker = focusedStyle.Render("> ")
	}
	return marker + labelStyle.Render(label) + value + "\n"
}
