// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/netalert/models"
)

// FieldKind is the value type of a configuration field.
type FieldKind int

const (
	// KindString fields are text inputs.
	KindString FieldKind = iota
	// KindBool fields are checkboxes.
	KindBool
)

// Field describes one entry of the settings form.
type Field struct {
	// Name is both the form element ID and the JSON key of the payload.
	Name  string
	Kind  FieldKind
	Label string
	// Secret fields are masked when rendered.
	Secret bool

	get func(cfg models.ServerConfig) string
	set func(cfg *models.ServerConfig, value string) error
}

// Get returns the field's value in cfg in its form representation.
func (f Field) Get(cfg models.ServerConfig) string {
	return f.get(cfg)
}

// Set stores the form representation value into cfg.
func (f Field) Set(cfg *models.ServerConfig, value string) error {
	return f.set(cfg, value)
}

// ServerConfigFields is the ordered table of the eleven settings of the
// server configuration form.
var ServerConfigFields = []Field{
	boolField(models.KeyAlertNewDevice, "Alert on new device",
		func(c models.ServerConfig) bool { return c.AlertNewDevice },
		func(c *models.ServerConfig, v bool) { c.AlertNewDevice = v }),
	boolField(models.KeyAlertDownDevice, "Alert on device down",
		func(c models.ServerConfig) bool { return c.AlertDownDevice },
		func(c *models.ServerConfig, v bool) { c.AlertDownDevice = v }),
	stringField(models.KeyAlertDownThreshold, "Down threshold", false,
		func(c *models.ServerConfig) *string { return &c.AlertDownThreshold }),
	stringField(models.KeyAlertFrom, "Alert from", false,
		func(c *models.ServerConfig) *string { return &c.AlertFrom }),
	stringField(models.KeyAlertSubject, "Alert subject", false,
		func(c *models.ServerConfig) *string { return &c.AlertSubject }),
	stringField(models.KeyAlertTo, "Alert to", false,
		func(c *models.ServerConfig) *string { return &c.AlertTo }),
	stringField(models.KeySMTPServer, "SMTP server", false,
		func(c *models.ServerConfig) *string { return &c.SMTPServer }),
	stringField(models.KeySMTPPort, "SMTP port", false,
		func(c *models.ServerConfig) *string { return &c.SMTPPort }),
	stringField(models.KeySMTPUsername, "SMTP username", false,
		func(c *models.ServerConfig) *string { return &c.SMTPUsername }),
	stringField(models.KeySMTPPassword, "SMTP password", true,
		func(c *models.ServerConfig) *string { return &c.SMTPPassword }),
	stringField(models.KeyWebAdminDeviceURL, "Web admin device URL", false,
		func(c *models.ServerConfig) *string { return &c.WebAdminDeviceURL }),
}

// FieldByName looks a field up in [ServerConfigFields].
func FieldByName(name string) (Field, bool) {
	for _, f := range ServerConfigFields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Values holds raw form values keyed by field name. A checkbox that is not
// checked is simply absent, as in an HTML form submission.
type Values map[string]string

// BuildServerConfig reads every field of [ServerConfigFields] from values
// into a fresh record. Missing string fields become empty strings and missing
// checkboxes become false.
func BuildServerConfig(values Values) (models.ServerConfig, error) {
	var cfg models.ServerConfig
	for _, f := range ServerConfigFields {
		if err := f.Set(&cfg, values[f.Name]); err != nil {
			return models.ServerConfig{}, err
		}
	}
	return cfg, nil
}

// FieldValues is the inverse of [BuildServerConfig]: it renders cfg as form
// values. Unchecked boolean fields are omitted.
func FieldValues(cfg models.ServerConfig) Values {
	values := make(Values, len(ServerConfigFields))
	for _, f := range ServerConfigFields {
		v := f.Get(cfg)
		if f.Kind == KindBool && v == "" {
			continue
		}
		values[f.Name] = v
	}
	return values
}

// ParseBool interprets a checkbox form value. An empty value means unchecked.
func ParseBool(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "false", "off", "0", "no":
		return false, nil
	case "true", "on", "1", "yes", "checked":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q is not a checkbox value", ErrInvalidFieldValue, raw)
	}
}

func boolField(name, label string, get func(models.ServerConfig) bool, set func(*models.ServerConfig, bool)) Field {
	return Field{
		Name:  name,
		Kind:  KindBool,
		Label: label,
		get: func(c models.ServerConfig) string {
			if get(c) {
				return "true"
			}
			return ""
		},
		set: func(c *models.ServerConfig, raw string) error {
			v, err := ParseBool(raw)
			if err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			set(c, v)
			return nil
		},
	}
}

func stringField(name, label string, secret bool, ref func(*models.ServerConfig) *string) Field {
	return Field{
		Name:   name,
		Kind:   KindString,
		Label:  label,
		Secret: secret,
		get: func(c models.ServerConfig) string {
			return *ref(&c)
		},
		set: func(c *models.ServerConfig, raw string) error {
			*ref(c) = raw
			return nil
		},
	}
}
