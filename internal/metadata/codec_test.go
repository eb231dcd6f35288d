// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metadata

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/netalert/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesGroupAndItemOrder(t *testing.T) {
	doc := `{
		"location": [{"location": "Kitchen", "location_value": "k"}],
		"owner": [
			{"owner": "B", "owner_value": "2"},
			{"owner": "A", "owner_value": "1"}
		],
		"device_type": []
	}`

	md, err := Parse([]byte(doc))
	require.NoError(t, err)

	require.Len(t, md.Groups, 3)
	assert.Equal(t, "location", md.Groups[0].Name)
	assert.Equal(t, "owner", md.Groups[1].Name)
	assert.Equal(t, "device_type", md.Groups[2].Name)

	owners := md.Group(models.GroupOwner)
	require.Len(t, owners, 2)
	assert.Equal(t, "B", owners[0]["owner"])
	assert.Equal(t, "A", owners[1]["owner"])
	assert.Empty(t, md.Group(models.GroupDeviceType))
	assert.Nil(t, md.Checkboxes)
}

func TestParse_Checkboxes(t *testing.T) {
	doc := `{"owner": [], "checkboxes": [{"id": "SCAN_IPV6", "label": "Scan IPv6", "checked": true}]}`

	md, err := Parse([]byte(doc))
	require.NoError(t, err)

	require.Len(t, md.Checkboxes, 1)
	assert.Equal(t, models.CheckboxSpec{ID: "SCAN_IPV6", Label: "Scan IPv6", Checked: true}, md.Checkboxes[0])
	require.Len(t, md.Groups, 1)
}

func TestParse_KeepsNumbersExact(t *testing.T) {
	md, err := Parse([]byte(`{"owner": [{"owner": "A", "owner_value": 12345678901234567890}]}`))
	require.NoError(t, err)

	v, err := FieldString(md.Group("owner")[0], "owner_value")
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567890", v)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{name: "not json", doc: `{not json`, msg: "malformed metadata document"},
		{name: "array document", doc: `[]`, msg: "document must be a JSON object"},
		{name: "empty input", doc: ``, msg: "malformed metadata document"},
		{name: "group is object", doc: `{"owner": {"owner": "A"}}`, msg: `group "owner" must be an array of objects`},
		{name: "group is null", doc: `{"owner": null}`, msg: `group "owner" must be an array of objects`},
		{name: "item is string", doc: `{"location": ["Kitchen"]}`, msg: `group "location" item 0 must be an object`},
		{name: "item is null", doc: `{"location": [{"location": "a"}, null]}`, msg: `group "location" item 1 must be an object`},
		{name: "checkboxes wrong type", doc: `{"checkboxes": "yes"}`, msg: `"checkboxes" must be an array`},
		{name: "checkbox without id", doc: `{"checkboxes": [{"label": "x"}]}`, msg: "checkbox 0 has no id"},
		{name: "duplicate group", doc: `{"owner": [], "owner": []}`, msg: `duplicate key "owner"`},
		{name: "trailing data", doc: `{"owner": []} {}`, msg: "trailing data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedMetadata)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestEncode_RoundTripKeepsOrder(t *testing.T) {
	md := models.Metadata{
		Groups: []models.OptionGroup{
			{Name: "owner", Items: []models.OptionRecord{{"owner": "A", "owner_value": "1"}}},
			{Name: "location", Items: nil},
		},
		Checkboxes: []models.CheckboxSpec{{ID: "X", Label: "x"}},
	}

	data, err := Encode(md)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	decoded, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, decoded.Groups, 2)
	assert.Equal(t, "owner", decoded.Groups[0].Name)
	assert.Equal(t, "location", decoded.Groups[1].Name)
	assert.Empty(t, decoded.Groups[1].Items)
	assert.Equal(t, md.Checkboxes, decoded.Checkboxes)
}

func TestEncode_Empty(t *testing.T) {
	data, err := Encode(models.Metadata{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestFieldString(t *testing.T) {
	rec := models.OptionRecord{
		"s":    "text",
		"n":    json.Number("7"),
		"f":    float64(2.5),
		"i":    3,
		"b":    true,
		"null": nil,
	}

	v, err := FieldString(rec, "s")
	require.NoError(t, err)
	assert.Equal(t, "text", v)

	v, err = FieldString(rec, "n")
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	v, err = FieldString(rec, "f")
	require.NoError(t, err)
	assert.Equal(t, "2.5", v)

	v, err = FieldString(rec, "i")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	_, err = FieldString(rec, "b")
	assert.ErrorIs(t, err, ErrInvalidFieldType)

	_, err = FieldString(rec, "null")
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = FieldString(rec, "absent")
	assert.ErrorIs(t, err, ErrMissingField)
}
