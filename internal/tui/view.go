// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/netalert/internal/form"
	"github.com/MKhiriev/netalert/models"
)

const consoleHotKeys = "tab/↑↓ move  ←/→ select  space toggle  ctrl+s save  ctrl+r reload  ctrl+o new option  ctrl+t appearance  ctrl+e test alert  ctrl+b about"

var dropdownLabels = map[string]string{
	form.ControlOwner:      "Owner",
	form.ControlDeviceType: "Device type",
	form.ControlLocation:   "Location",
}

func (m consoleModel) View() string {
	switch {
	case m.showError:
		return appStyle.Render(m.errorOverlay.View())
	case m.showBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.build))
	case m.showOption:
		return appStyle.Render(m.option.View())
	}

	return appStyle.Render(renderPage(titleStyle.Render("NETALERT ADMIN"), m.body(), consoleHotKeys))
}

func (m consoleModel) body() string {
	var b strings.Builder
	pos := 0

	b.WriteString(sectionStyle.Render("Devices"))
	b.WriteString("\n")
	for _, ctrl := range m.page.Dropdowns {
		value := "-"
		if opt, ok := m.selectedOption(ctrl); ok {
			value = "◀ " + opt.Label + " ▶"
		}
		b.WriteString(m.row(pos, dropdownLabels[ctrl.ID], value))
		pos++
	}
	for _, cb := range m.page.Checkboxes {
		b.WriteString(m.row(pos, cb.Label, checkboxMark(cb.Checked)))
		pos++
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Settings"))
	b.WriteString("\n")
	for _, f := range form.ServerConfigFields {
		if f.Kind == form.KindBool {
			b.WriteString(m.row(pos, f.Label, checkboxMark(m.toggles[f.Name])))
		} else {
			b.WriteString(m.row(pos, f.Label, m.inputs[m.inputIndex[f.Name]].View()))
		}
		pos++
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m consoleModel) row(pos int, label, value string) string {
	line := labelStyle.Render(label) + value
	switch {
	case pos == m.focus:
		return focusedStyle.Render("> ") + line + "\n"
	case m.page.Disabled:
		return "  " + disabledStyle.Render(line) + "\n"
	default:
		return "  " + line + "\n"
	}
}

func (m consoleModel) footer() string {
	var lines []string
	if m.busy {
		lines = append(lines, helpStyle.Render("Working..."))
	}
	if text := renderMessage(m.page.Message); text != "" {
		lines = append(lines, text)
	}
	if m.status != "" {
		lines = append(lines, helpStyle.Render(m.status))
	}
	return strings.Join(lines, "\n")
}

func renderMessage(msg models.Message) string {
	switch msg.Level {
	case models.MessageSuccess:
		return successStyle.Render(msg.Text)
	case models.MessageWarning:
		return warningStyle.Render(msg.Text)
	case models.MessageError:
		return errorStyle.Render(msg.Text)
	default:
		return msg.Text
	}
}

func checkboxMark(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
