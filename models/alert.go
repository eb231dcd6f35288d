// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DeviceEventKind names what a network scanner observed about a device.
type DeviceEventKind string

const (
	DeviceEventNew  DeviceEventKind = "new_device"
	DeviceEventDown DeviceEventKind = "device_down"
)

// DeviceEvent is reported by a network scanner. The server turns it into an
// alert e-mail when the matching ALERT_* setting is enabled.
type DeviceEvent struct {
	Kind        DeviceEventKind `json:"event"`
	MAC         string          `json:"mac"`
	IP          string          `json:"ip,omitempty"`
	Hostname    string          `json:"hostname,omitempty"`
	Description string          `json:"description,omitempty"`
	Vendor      string          `json:"vendor,omitempty"`

	// MissedScans is the number of consecutive scans the device was not
	// seen in. Only used for [DeviceEventDown].
	MissedScans int `json:"missed_scans,omitempty"`
}

// Alert is a single e-mail. Subject is appended to ALERT_SUBJECT.
type Alert struct {
	Subject string
	Body    string
}

// AlertResult reports what happened to a device event.
type AlertResult struct {
	Sent bool `json:"sent"`
	// Reason explains why no e-mail was sent.
	Reason string `json:"reason,omitempty"`
}
