// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/netalert/models"
)

// ServerConfigValidator checks server configuration records and patches.
// Empty string settings are always accepted: the console sends every key and
// an unset setting is an empty string.
type ServerConfigValidator struct{}

// NewServerConfigValidator constructs a [ServerConfigValidator].
func NewServerConfigValidator() *ServerConfigValidator {
	return &ServerConfigValidator{}
}

// Validate implements [Validator] for [models.ServerConfig] and
// [models.ServerConfigPatch]. When fields are given, only those settings are
// checked; field names are the setting keys (e.g. [models.KeySMTPPort]).
func (v *ServerConfigValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch cfg := value.(type) {
	case models.ServerConfig:
		return v.validateValues(stringValues(cfg), fields)
	case *models.ServerConfig:
		if cfg == nil {
			return fmt.Errorf("%w: nil server config", ErrUnsupportedType)
		}
		return v.validateValues(stringValues(*cfg), fields)
	case models.ServerConfigPatch:
		if cfg.IsEmpty() {
			return ErrEmptyPatch
		}
		return v.validateValues(patchValues(cfg), fields)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func (v *ServerConfigValidator) validateValues(values map[string]string, fields []string) error {
	if len(fields) == 0 {
		fields = []string{
			models.KeyAlertDownThreshold,
			models.KeyAlertFrom,
			models.KeyAlertTo,
			models.KeySMTPPort,
			models.KeyWebAdminDeviceURL,
		}
	}

	for _, field := range fields {
		if !knownSettings[field] {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}

		value := values[field]
		if value == "" {
			continue
		}

		var err error
		switch field {
		case models.KeySMTPPort:
			err = validatePort(value)
		case models.KeyAlertDownThreshold:
			err = validateThreshold(value)
		case models.KeyAlertFrom:
			err = validateEmail(field, value)
		case models.KeyAlertTo:
			err = validateEmailList(field, value)
		case models.KeyWebAdminDeviceURL:
			err = validateDeviceURL(value)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

var knownSettings = map[string]bool{
	models.KeyAlertNewDevice:     true,
	models.KeyAlertDownDevice:    true,
	models.KeyAlertDownThreshold: true,
	models.KeyAlertFrom:          true,
	models.KeyAlertSubject:       true,
	models.KeyAlertTo:            true,
	models.KeySMTPServer:         true,
	models.KeySMTPPort:           true,
	models.KeySMTPUsername:       true,
	models.KeySMTPPassword:       true,
	models.KeyWebAdminDeviceURL:  true,
}

func validatePort(value string) error {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: got %q", ErrInvalidSMTPPort, value)
	}
	return nil
}

func validateThreshold(value string) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return fmt.Errorf("%w: got %q", ErrInvalidThreshold, value)
	}
	return nil
}

func validateEmail(field, value string) error {
	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidEmail, field, value)
	}
	return nil
}

// validateEmailList accepts a comma separated list of addresses.
func validateEmailList(field, value string) error {
	if _, err := mail.ParseAddressList(value); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidEmail, field, value)
	}
	return nil
}

func validateDeviceURL(value string) error {
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: got %q", ErrInvalidDeviceURL, value)
	}
	return nil
}

// stringValues returns the string settings of cfg keyed by setting name.
func stringValues(cfg models.ServerConfig) map[string]string {
	return map[string]string{
		models.KeyAlertDownThreshold: cfg.AlertDownThreshold,
		models.KeyAlertFrom:          cfg.AlertFrom,
		models.KeyAlertSubject:       cfg.AlertSubject,
		models.KeyAlertTo:            cfg.AlertTo,
		models.KeySMTPServer:         cfg.SMTPServer,
		models.KeySMTPPort:           cfg.SMTPPort,
		models.KeySMTPUsername:       cfg.SMTPUsername,
		models.KeySMTPPassword:       cfg.SMTPPassword,
		models.KeyWebAdminDeviceURL:  cfg.WebAdminDeviceURL,
	}
}

// patchValues returns the string settings present in p.
func patchValues(p models.ServerConfigPatch) map[string]string {
	values := make(map[string]string)
	add := func(key string, v *string) {
		if v != nil {
			values[key] = *v
		}
	}

	add(models.KeyAlertDownThreshold, p.AlertDownThreshold)
	add(models.KeyAlertFrom, p.AlertFrom)
	add(models.KeyAlertSubject, p.AlertSubject)
	add(models.KeyAlertTo, p.AlertTo)
	add(models.KeySMTPServer, p.SMTPServer)
	add(models.KeySMTPPort, p.SMTPPort)
	add(models.KeySMTPUsername, p.SMTPUsername)
	add(models.KeySMTPPassword, p.SMTPPassword)
	add(models.KeyWebAdminDeviceURL, p.WebAdminDeviceURL)
	return values
}
