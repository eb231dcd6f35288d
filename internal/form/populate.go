// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"fmt"

	"github.com/MKhiriev/netalert/internal/metadata"
	"github.com/MKhiriev/netalert/models"
)

// Identifiers of the dropdown controls of the admin page.
const (
	ControlOwner      = "owner"
	ControlDeviceType = "device-type"
	ControlLocation   = "location"
)

// DropdownBinding ties a dropdown control to the metadata group it is filled
// from and to the record fields used as label and value.
type DropdownBinding struct {
	ControlID  string
	Group      string
	LabelField string
	ValueField string
}

// DropdownBindings lists the dropdowns of the admin page in display order.
var DropdownBindings = []DropdownBinding{
	{ControlID: ControlOwner, Group: models.GroupOwner, LabelField: models.OwnerLabelField, ValueField: models.OwnerValueField},
	{ControlID: ControlDeviceType, Group: models.GroupDeviceType, LabelField: models.DeviceTypeLabelField, ValueField: models.DeviceTypeValueField},
	{ControlID: ControlLocation, Group: models.GroupLocation, LabelField: models.LocationLabelField, ValueField: models.LocationValueField},
}

// BindingFor returns the binding of the given metadata group.
func BindingFor(group string) (DropdownBinding, bool) {
	for _, b := range DropdownBindings {
		if b.Group == group {
			return b, true
		}
	}
	return DropdownBinding{}, false
}

// PopulateDropdown replaces the options of ctrl with one option per item, in
// item order. On error ctrl is left untouched, so a call either fully
// replaces the previous options or changes nothing.
func PopulateDropdown(ctrl *models.SelectControl, items []models.OptionRecord, labelField, valueField string) error {
	options, err := buildOptions(items, labelField, valueField)
	if err != nil {
		return fmt.Errorf("control %q: %w", ctrl.ID, err)
	}
	ctrl.Options = options
	return nil
}

// BuildCheckboxes converts checkbox definitions into rendered checkboxes.
func BuildCheckboxes(specs []models.CheckboxSpec) []models.Checkbox {
	checkboxes := make([]models.Checkbox, 0, len(specs))
	for _, spec := range specs {
		label := spec.Label
		if label == "" {
			label = spec.ID
		}
		checkboxes = append(checkboxes, models.Checkbox{ID: spec.ID, Label: label, Checked: spec.Checked})
	}
	return checkboxes
}

func buildOptions(items []models.OptionRecord, labelField, valueField string) ([]models.Option, error) {
	options := make([]models.Option, 0, len(items))
	for i, item := range items {
		label, err := metadata.FieldString(item, labelField)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrInvalidOption, i, err)
		}
		value, err := metadata.FieldString(item, valueField)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrInvalidOption, i, err)
		}
		options = append(options, models.Option{Label: label, Value: value})
	}
	return options, nil
}
