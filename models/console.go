// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Option is a single entry of a dropdown control.
type Option struct {
	Label string
	Value string
}

// SelectControl is a dropdown control identified by its form element ID
// (e.g. "owner", "device-type").
type SelectControl struct {
	ID      string
	Options []Option
}

// Checkbox is a rendered checkbox input.
type Checkbox struct {
	ID      string
	Label   string
	Checked bool
}

// MessageLevel classifies a message shown to the console user.
type MessageLevel int

const (
	// MessageNone means there is nothing to show.
	MessageNone MessageLevel = iota
	MessageSuccess
	MessageWarning
	MessageError
)

// String returns a lower-case name of the level, used as a CSS class by the
// HTML admin page.
func (l MessageLevel) String() string {
	switch l {
	case MessageSuccess:
		return "success"
	case MessageWarning:
		return "warning"
	case MessageError:
		return "error"
	default:
		return ""
	}
}

// Message is the user-visible outcome of a console action.
type Message struct {
	Level MessageLevel
	Text  string
}

// IsError reports whether the message describes a failure.
func (m Message) IsError() bool {
	return m.Level == MessageError
}
