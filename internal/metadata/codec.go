// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/netalert/models"
)

// Parse decodes a metadata document.
//
// The document must be a JSON object. The "checkboxes" key, when present,
// must be an array of checkbox definitions; every other key must be an array
// of JSON objects. Groups and items keep document order.
func Parse(data []byte) (models.Metadata, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return models.Metadata{}, fmt.Errorf("%w: %w", ErrMalformedMetadata, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return models.Metadata{}, fmt.Errorf("%w: document must be a JSON object", ErrMalformedMetadata)
	}

	md := models.Metadata{Groups: make([]models.OptionGroup, 0, 3)}
	seen := make(map[string]struct{})

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return models.Metadata{}, fmt.Errorf("%w: %w", ErrMalformedMetadata, err)
		}
		key := keyTok.(string)

		if _, dup := seen[key]; dup {
			return models.Metadata{}, fmt.Errorf("%w: duplicate key %q", ErrMalformedMetadata, key)
		}
		seen[key] = struct{}{}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return models.Metadata{}, fmt.Errorf("%w: key %q: %w", ErrMalformedMetadata, key, err)
		}

		if key == models.CheckboxesKey {
			checkboxes, err := parseCheckboxes(raw)
			if err != nil {
				return models.Metadata{}, err
			}
			md.Checkboxes = checkboxes
			continue
		}

		items, err := parseGroup(key, raw)
		if err != nil {
			return models.Metadata{}, err
		}
		md.Groups = append(md.Groups, models.OptionGroup{Name: key, Items: items})
	}

	// closing '}'
	if _, err = dec.Token(); err != nil {
		return models.Metadata{}, fmt.Errorf("%w: %w", ErrMalformedMetadata, err)
	}
	if _, err = dec.Token(); err != io.EOF {
		return models.Metadata{}, fmt.Errorf("%w: trailing data after document", ErrMalformedMetadata)
	}

	return md, nil
}

func parseGroup(name string, raw json.RawMessage) ([]models.OptionRecord, error) {
	var rawItems []json.RawMessage
	if err := json.Unmarshal(raw, &rawItems); err != nil || rawItems == nil {
		return nil, fmt.Errorf("%w: group %q must be an array of objects", ErrMalformedMetadata, name)
	}

	items := make([]models.OptionRecord, 0, len(rawItems))
	for i, rawItem := range rawItems {
		dec := json.NewDecoder(bytes.NewReader(rawItem))
		dec.UseNumber()

		var item models.OptionRecord
		if err := dec.Decode(&item); err != nil || item == nil {
			return nil, fmt.Errorf("%w: group %q item %d must be an object", ErrMalformedMetadata, name, i)
		}
		items = append(items, item)
	}

	return items, nil
}

func parseCheckboxes(raw json.RawMessage) ([]models.CheckboxSpec, error) {
	var checkboxes []models.CheckboxSpec
	if err := json.Unmarshal(raw, &checkboxes); err != nil {
		return nil, fmt.Errorf("%w: %q must be an array of {id, label, checked}: %w", ErrMalformedMetadata, models.CheckboxesKey, err)
	}

	for i, cb := range checkboxes {
		if cb.ID == "" {
			return nil, fmt.Errorf("%w: checkbox %d has no id", ErrMalformedMetadata, i)
		}
	}

	return checkboxes, nil
}

// Encode writes md as an indented JSON document, groups first in their order
// and "checkboxes" last when present.
func Encode(md models.Metadata) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteByte('{')

	first := true
	writeKey := func(key string) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
	}

	for _, g := range md.Groups {
		items := g.Items
		if items == nil {
			items = []models.OptionRecord{}
		}
		data, err := json.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("error encoding group %q: %w", g.Name, err)
		}
		writeKey(g.Name)
		buf.Write(data)
	}

	if md.Checkboxes != nil {
		data, err := json.Marshal(md.Checkboxes)
		if err != nil {
			return nil, fmt.Errorf("error encoding checkboxes: %w", err)
		}
		writeKey(models.CheckboxesKey)
		buf.Write(data)
	}

	buf.WriteByte('}')

	out := new(bytes.Buffer)
	if err := json.Indent(out, buf.Bytes(), "", "    "); err != nil {
		return nil, fmt.Errorf("error indenting metadata: %w", err)
	}

	return out.Bytes(), nil
}

// FieldString returns the named field of rec as a string. Strings are
// returned as is, numbers in their JSON text form.
func FieldString(rec models.OptionRecord, field string) (string, error) {
	v, ok := rec[field]
	if !ok || v == nil {
		return "", fmt.Errorf("%w: %q", ErrMissingField, field)
	}

	switch value := v.(type) {
	case string:
		return value, nil
	case json.Number:
		return value.String(), nil
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(value), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	default:
		return "", fmt.Errorf("%w: %q is %T", ErrInvalidFieldType, field, v)
	}
}
