// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Names of the server configuration settings. They double as JSON keys of the
// PATCH payload, storage keys and console field identifiers.
const (
	KeyAlertNewDevice     = "ALERT_NEW_DEVICE"
	KeyAlertDownDevice    = "ALERT_DOWN_DEVICE"
	KeyAlertDownThreshold = "ALERT_DOWN_THRESHOLD"
	KeyAlertFrom          = "ALERT_FROM"
	KeyAlertSubject       = "ALERT_SUBJECT"
	KeyAlertTo            = "ALERT_TO"
	KeySMTPServer         = "SMTP_SERVER"
	KeySMTPPort           = "SMTP_PORT"
	KeySMTPUsername       = "SMTP_USERNAME"
	KeySMTPPassword       = "SMTP_PASSWORD"
	KeyWebAdminDeviceURL  = "WEB_ADMIN_DEVICE_URL"
)

// ServerConfig is the flat settings record persisted through the
// configuration endpoint. It is always sent in full by the console.
type ServerConfig struct {
	// AlertNewDevice enables an alert when a previously unseen device appears.
	AlertNewDevice bool `json:"ALERT_NEW_DEVICE"`

	// AlertDownDevice enables an alert when a watched device goes offline.
	AlertDownDevice bool `json:"ALERT_DOWN_DEVICE"`

	// AlertDownThreshold is the number of missed scans before a device is
	// reported down. Kept as a string as entered in the form.
	AlertDownThreshold string `json:"ALERT_DOWN_THRESHOLD"`

	AlertFrom    string `json:"ALERT_FROM"`
	AlertSubject string `json:"ALERT_SUBJECT"`
	AlertTo      string `json:"ALERT_TO"`

	SMTPServer   string `json:"SMTP_SERVER"`
	SMTPPort     string `json:"SMTP_PORT"`
	SMTPUsername string `json:"SMTP_USERNAME"`
	SMTPPassword string `json:"SMTP_PASSWORD"`

	// WebAdminDeviceURL is the link to the device page used in alert e-mails.
	WebAdminDeviceURL string `json:"WEB_ADMIN_DEVICE_URL"`
}

// ServerConfigPatch is a partial update of [ServerConfig]. Nil fields are
// left unchanged when the patch is applied.
type ServerConfigPatch struct {
	AlertNewDevice     *bool   `json:"ALERT_NEW_DEVICE,omitempty"`
	AlertDownDevice    *bool   `json:"ALERT_DOWN_DEVICE,omitempty"`
	AlertDownThreshold *string `json:"ALERT_DOWN_THRESHOLD,omitempty"`
	AlertFrom          *string `json:"ALERT_FROM,omitempty"`
	AlertSubject       *string `json:"ALERT_SUBJECT,omitempty"`
	AlertTo            *string `json:"ALERT_TO,omitempty"`
	SMTPServer         *string `json:"SMTP_SERVER,omitempty"`
	SMTPPort           *string `json:"SMTP_PORT,omitempty"`
	SMTPUsername       *string `json:"SMTP_USERNAME,omitempty"`
	SMTPPassword       *string `json:"SMTP_PASSWORD,omitempty"`
	WebAdminDeviceURL  *string `json:"WEB_ADMIN_DEVICE_URL,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p ServerConfigPatch) IsEmpty() bool {
	return p == ServerConfigPatch{}
}

// Apply returns a copy of cfg with every non-nil field of p applied.
func (p ServerConfigPatch) Apply(cfg ServerConfig) ServerConfig {
	if p.AlertNewDevice != nil {
		cfg.AlertNewDevice = *p.AlertNewDevice
	}
	if p.AlertDownDevice != nil {
		cfg.AlertDownDevice = *p.AlertDownDevice
	}
	applyString(&cfg.AlertDownThreshold, p.AlertDownThreshold)
	applyString(&cfg.AlertFrom, p.AlertFrom)
	applyString(&cfg.AlertSubject, p.AlertSubject)
	applyString(&cfg.AlertTo, p.AlertTo)
	applyString(&cfg.SMTPServer, p.SMTPServer)
	applyString(&cfg.SMTPPort, p.SMTPPort)
	applyString(&cfg.SMTPUsername, p.SMTPUsername)
	applyString(&cfg.SMTPPassword, p.SMTPPassword)
	applyString(&cfg.WebAdminDeviceURL, p.WebAdminDeviceURL)
	return cfg
}

// FullPatch returns a patch that sets every field of cfg.
func FullPatch(cfg ServerConfig) ServerConfigPatch {
	return ServerConfigPatch{
		AlertNewDevice:     &cfg.AlertNewDevice,
		AlertDownDevice:    &cfg.AlertDownDevice,
		AlertDownThreshold: &cfg.AlertDownThreshold,
		AlertFrom:          &cfg.AlertFrom,
		AlertSubject:       &cfg.AlertSubject,
		AlertTo:            &cfg.AlertTo,
		SMTPServer:         &cfg.SMTPServer,
		SMTPPort:           &cfg.SMTPPort,
		SMTPUsername:       &cfg.SMTPUsername,
		SMTPPassword:       &cfg.SMTPPassword,
		WebAdminDeviceURL:  &cfg.WebAdminDeviceURL,
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
