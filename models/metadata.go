// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Known option groups of the metadata document and the record fields used as
// dropdown label and value for each of them.
const (
	GroupOwner      = "owner"
	GroupDeviceType = "device_type"
	GroupLocation   = "location"

	OwnerLabelField      = "owner"
	OwnerValueField      = "owner_value"
	DeviceTypeLabelField = "device_type"
	DeviceTypeValueField = "device_type_value"
	LocationLabelField   = "location"
	LocationValueField   = "location_value"

	// CheckboxesKey is the top-level key holding extra checkbox definitions.
	// Every other top-level key of the document is an option group.
	CheckboxesKey = "checkboxes"
)

// GroupFields returns the label and value field names of a known option
// group.
func GroupFields(group string) (labelField, valueField string, ok bool) {
	switch group {
	case GroupOwner:
		return OwnerLabelField, OwnerValueField, true
	case GroupDeviceType:
		return DeviceTypeLabelField, DeviceTypeValueField, true
	case GroupLocation:
		return LocationLabelField, LocationValueField, true
	default:
		return "", "", false
	}
}

// OptionUpsert asks to insert an option into a group, replacing the item
// with the same value field if there is one.
type OptionUpsert struct {
	Group  string
	Record OptionRecord
}

// OptionRecord is a single selectable item of an option group. It is kept as
// a free-form record because every group names its label and value fields
// differently (e.g. "owner"/"owner_value").
type OptionRecord map[string]any

// OptionGroup is a named, ordered list of option records.
type OptionGroup struct {
	// Name is the top-level key of the group in the metadata document.
	Name string

	// Items are kept in document order.
	Items []OptionRecord
}

// CheckboxSpec describes an extra checkbox rendered from the metadata document.
type CheckboxSpec struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Checked bool   `json:"checked"`
}

// Metadata is the parsed metadata document that drives dropdown and checkbox
// population of the admin console.
type Metadata struct {
	// Groups preserves the order in which groups appear in the document.
	Groups []OptionGroup

	// Checkboxes are optional checkbox definitions.
	Checkboxes []CheckboxSpec
}

// Group returns the items of the named group or nil when the document has no
// such group. A missing group is treated as an empty one.
func (m Metadata) Group(name string) []OptionRecord {
	for _, g := range m.Groups {
		if g.Name == name {
			return g.Items
		}
	}
	return nil
}

// SetGroup replaces the items of the named group, appending the group at the
// end when it does not exist yet.
func (m *Metadata) SetGroup(name string, items []OptionRecord) {
	for i := range m.Groups {
		if m.Groups[i].Name == name {
			m.Groups[i].Items = items
			return
		}
	}
	m.Groups = append(m.Groups, OptionGroup{Name: name, Items: items})
}

// Clone returns a deep copy of the document so callers can mutate it without
// affecting a shared instance.
func (m Metadata) Clone() Metadata {
	out := Metadata{
		Groups:     make([]OptionGroup, 0, len(m.Groups)),
		Checkboxes: append([]CheckboxSpec(nil), m.Checkboxes...),
	}
	for _, g := range m.Groups {
		items := make([]OptionRecord, 0, len(g.Items))
		for _, item := range g.Items {
			rec := make(OptionRecord, len(item))
			for k, v := range item {
				rec[k] = v
			}
			items = append(items, rec)
		}
		out.Groups = append(out.Groups, OptionGroup{Name: g.Name, Items: items})
	}
	return out
}
