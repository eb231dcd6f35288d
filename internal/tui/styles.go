// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	sectionStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	focusedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	disabledStyle   = lipgloss.NewStyle().Faint(true)
	successStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	warningStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	labelStyle      = lipgloss.NewStyle().Width(24)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
