// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package alert

import (
	"bytes"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"strings"
	"time"

	"github.com/MKhiriev/netalert/models"
)

const (
	defaultSMTPPort = "587"
	implicitTLSPort = "465"
	defaultSubject  = "netalert"
)

// envelope is everything needed for one SMTP transaction.
type envelope struct {
	host        string
	addr        string
	implicitTLS bool

	username string
	password string

	from string
	to   []string
	data []byte
}

func newEnvelope(cfg models.ServerConfig, msg models.Alert, now time.Time) (envelope, error) {
	host := strings.TrimSpace(cfg.SMTPServer)
	if host == "" {
		return envelope{}, fmt.Errorf("%w: %s is empty", ErrSMTPNotConfigured, models.KeySMTPServer)
	}
	port := strings.TrimSpace(cfg.SMTPPort)
	if port == "" {
		port = defaultSMTPPort
	}

	// ALERT_FROM falls back to the SMTP login.
	rawFrom := strings.TrimSpace(cfg.AlertFrom)
	if rawFrom == "" {
		rawFrom = strings.TrimSpace(cfg.SMTPUsername)
	}
	if rawFrom == "" {
		return envelope{}, fmt.Errorf("%w: %s is empty", ErrSMTPNotConfigured, models.KeyAlertFrom)
	}
	from, err := mail.ParseAddress(rawFrom)
	if err != nil {
		return envelope{}, fmt.Errorf("%w: %s: %w", ErrSMTPNotConfigured, models.KeyAlertFrom, err)
	}

	if strings.TrimSpace(cfg.AlertTo) == "" {
		return envelope{}, fmt.Errorf("%w: %s is empty", ErrSMTPNotConfigured, models.KeyAlertTo)
	}
	to, err := mail.ParseAddressList(cfg.AlertTo)
	if err != nil {
		return envelope{}, fmt.Errorf("%w: %s: %w", ErrSMTPNotConfigured, models.KeyAlertTo, err)
	}

	rcpt := make([]string, 0, len(to))
	for _, a := range to {
		rcpt = append(rcpt, a.Address)
	}

	return envelope{
		host:        host,
		addr:        net.JoinHostPort(host, port),
		implicitTLS: port == implicitTLSPort,
		username:    strings.TrimSpace(cfg.SMTPUsername),
		password:    cfg.SMTPPassword,
		from:        from.Address,
		to:          rcpt,
		data:        buildMessage(from, to, subject(cfg.AlertSubject, msg.Subject), msg.Body, now),
	}, nil
}

// subject joins the configured prefix and the alert's own subject.
func subject(prefix, own string) string {
	prefix = strings.TrimSpace(prefix)
	own = strings.TrimSpace(own)
	switch {
	case prefix == "" && own == "":
		return defaultSubject
	case prefix == "":
		return own
	case own == "":
		return prefix
	default:
		return prefix + ": " + own
	}
}

func buildMessage(from *mail.Address, to []*mail.Address, subj, body string, now time.Time) []byte {
	rcpt := make([]string, 0, len(to))
	for _, a := range to {
		rcpt = append(rcpt, a.String())
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", from.String())
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(rcpt, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subj))
	fmt.Fprintf(&b, "Date: %s\r\n", now.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")

	body = strings.ReplaceAll(body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return b.Bytes()
}
