// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// netalert server handlers and the console.
//
// Msg* constants are written into HTTP response bodies by the server and
// matched by the console when it maps transport errors back to service
// errors, so both sides agree on the wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgInvalidServerConfig prefixes validation failures of a server
	// configuration update. The rule that failed follows after ": ".
	MsgInvalidServerConfig = "invalid server configuration"

	// MsgUnknownAction is returned by the admin endpoint for an action it
	// does not serve.
	MsgUnknownAction = "unknown action"

	// MsgUnknownMetadataGroup is returned when an option upsert targets a
	// group other than owner, device_type or location.
	MsgUnknownMetadataGroup = "unknown metadata group"

	// MsgInvalidOption prefixes validation failures of an option upsert.
	MsgInvalidOption = "invalid option"

	// MsgMetadataUnavailable is returned when the metadata document cannot
	// be read.
	MsgMetadataUnavailable = "metadata unavailable"

	// MsgNotImplemented is returned by endpoints reserved for features the
	// server does not provide yet.
	MsgNotImplemented = "not implemented"

	// MsgVersionIsNotSpecified is returned when the server was started
	// without an application version.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgAlertNotConfigured prefixes the reason an alert cannot be sent
	// with the stored SMTP settings.
	MsgAlertNotConfigured = "alert delivery is not configured"

	// MsgAlertDeliveryFailed prefixes the SMTP server's answer when an alert
	// was not accepted.
	MsgAlertDeliveryFailed = "alert delivery failed"

	// MsgInvalidDeviceEvent prefixes validation failures of a device event.
	MsgInvalidDeviceEvent = "invalid device event"
)

// Texts shown to the console user.
const (
	// MsgSaveSucceeded is the only text shown after a successful save.
	MsgSaveSucceeded = "Success"

	// MsgSaveFailed prefixes every failed save; the cause follows.
	MsgSaveFailed = "Error saving settings"

	// MsgLoadFailed prefixes a failed metadata load.
	MsgLoadFailed = "Could not load metadata"

	// MsgConfigLoadFailed prefixes a failed settings prefill.
	MsgConfigLoadFailed = "Could not load current settings"

	// MsgPageDisabled is shown when saving a page without metadata.
	MsgPageDisabled = "Page is disabled until metadata is loaded"

	// MsgAppearanceUnsupported is shown for the appearance action.
	MsgAppearanceUnsupported = "Appearance settings are not supported by this server"

	// MsgOptionSaved is shown after a metadata option was stored.
	MsgOptionSaved = "Option saved"

	// MsgOptionFailed prefixes a failed option upsert.
	MsgOptionFailed = "Error saving option"

	// MsgTestAlertSent is shown after the server mailed a test alert.
	MsgTestAlertSent = "Test alert sent"

	// MsgTestAlertFailed prefixes a failed test alert.
	MsgTestAlertFailed = "Error sending test alert"
)
