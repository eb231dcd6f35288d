// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

// Letter keys are left to the text inputs; console actions use ctrl chords.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	toggle     key.Binding
	quit       key.Binding
	save       key.Binding
	reload     key.Binding
	newOption  key.Binding
	appearance key.Binding
	testAlert  key.Binding
	buildInfo  key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up")),
	down:       key.NewBinding(key.WithKeys("down")),
	left:       key.NewBinding(key.WithKeys("left")),
	right:      key.NewBinding(key.WithKeys("right")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	toggle:     key.NewBinding(key.WithKeys(" ", "enter")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	save:       key.NewBinding(key.WithKeys("ctrl+s")),
	reload:     key.NewBinding(key.WithKeys("ctrl+r")),
	newOption:  key.NewBinding(key.WithKeys("ctrl+o")),
	appearance: key.NewBinding(key.WithKeys("ctrl+t")),
	testAlert:  key.NewBinding(key.WithKeys("ctrl+e")),
	buildInfo:  key.NewBinding(key.WithKeys("ctrl+b")),
}
