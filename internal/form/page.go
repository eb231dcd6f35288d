// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"fmt"

	"github.com/MKhiriev/netalert/models"
)

// Page is the state of one admin console page: the loaded metadata, the
// populated controls, the current settings values and the last message.
//
// A Page is not safe for concurrent use; it belongs to a single UI loop or a
// single HTTP request.
type Page struct {
	Metadata   models.Metadata
	Dropdowns  []models.SelectControl
	Checkboxes []models.Checkbox
	Values     Values

	// Disabled is set while no valid metadata is loaded. Saving a disabled
	// page is refused.
	Disabled bool
	Message  models.Message
}

// NewPage returns an empty, disabled page with one empty dropdown per
// [DropdownBindings] entry.
func NewPage() *Page {
	dropdowns := make([]models.SelectControl, 0, len(DropdownBindings))
	for _, b := range DropdownBindings {
		dropdowns = append(dropdowns, models.SelectControl{ID: b.ControlID})
	}

	return &Page{
		Dropdowns: dropdowns,
		Values:    make(Values),
		Disabled:  true,
	}
}

// Dropdown returns the control with the given ID.
func (p *Page) Dropdown(id string) (*models.SelectControl, bool) {
	for i := range p.Dropdowns {
		if p.Dropdowns[i].ID == id {
			return &p.Dropdowns[i], true
		}
	}
	return nil, false
}

// Populate fills every dropdown and the checkbox group from md and enables
// the page. It is all-or-nothing: when any group is malformed the page keeps
// its previous controls and the error names the control, item and field.
func (p *Page) Populate(md models.Metadata) error {
	next := make([]models.SelectControl, len(p.Dropdowns))
	copy(next, p.Dropdowns)

	for _, b := range DropdownBindings {
		idx := -1
		for i := range next {
			if next[i].ID == b.ControlID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownControl, b.ControlID)
		}

		if err := PopulateDropdown(&next[idx], md.Group(b.Group), b.LabelField, b.ValueField); err != nil {
			return err
		}
	}

	p.Metadata = md
	p.Dropdowns = next
	p.Checkboxes = BuildCheckboxes(md.Checkboxes)
	p.Disabled = false
	return nil
}

// Reset clears every control and disables the page, showing msg.
func (p *Page) Reset(msg models.Message) {
	for i := range p.Dropdowns {
		p.Dropdowns[i].Options = nil
	}
	p.Metadata = models.Metadata{}
	p.Checkboxes = nil
	p.Disabled = true
	p.Message = msg
}

// SetConfig replaces the form values with the rendering of cfg.
func (p *Page) SetConfig(cfg models.ServerConfig) {
	p.Values = FieldValues(cfg)
}

// ServerConfig builds the settings record from the current form values.
func (p *Page) ServerConfig() (models.ServerConfig, error) {
	return BuildServerConfig(p.Values)
}

// SetMessage replaces the page message.
func (p *Page) SetMessage(level models.MessageLevel, text string) {
	p.Message = models.Message{Level: level, Text: text}
}

// Clone returns a deep copy of the page, so a copy can be handed to a
// background call while the original keeps being rendered.
func (p *Page) Clone() *Page {
	out := &Page{
		Metadata:   p.Metadata.Clone(),
		Dropdowns:  make([]models.SelectControl, len(p.Dropdowns)),
		Checkboxes: append([]models.Checkbox(nil), p.Checkboxes...),
		Values:     make(Values, len(p.Values)),
		Disabled:   p.Disabled,
		Message:    p.Message,
	}
	for i, d := range p.Dropdowns {
		out.Dropdowns[i] = models.SelectControl{ID: d.ID, Options: append([]models.Option(nil), d.Options...)}
	}
	for k, v := range p.Values {
		out.Values[k] = v
	}
	return out
}
