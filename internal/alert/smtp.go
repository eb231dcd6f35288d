// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package alert

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"time"

	"github.com/MKhiriev/netalert/internal/logger"
	"github.com/MKhiriev/netalert/models"
)

type smtpMailer struct {
	timeout time.Duration
	now     func() time.Time

	logger *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] that talks to the configured SMTP
// server directly. The whole exchange is bounded by timeout.
// STARTTLS is used when the server offers it and port 465 is dialled with
// TLS from the start.
func NewSMTPMailer(timeout time.Duration, logger *logger.Logger) Mailer {
	return &smtpMailer{
		timeout: timeout,
		now:     time.Now,
		logger:  logger,
	}
}

func (m *smtpMailer) Send(ctx context.Context, cfg models.ServerConfig, msg models.Alert) error {
	env, err := newEnvelope(cfg, msg, m.now())
	if err != nil {
		return err
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	m.logger.Debug().Str("smtp", env.addr).Bool("implicit_tls", env.implicitTLS).Msg("connecting to smtp server")
	if err = deliver(ctx, env); err != nil {
		return fmt.Errorf("%w: %w", ErrSendingAlert, err)
	}

	logger.FromContext(ctx).Info().
		Str("smtp", env.addr).
		Int("recipients", len(env.to)).
		Msg("alert e-mail sent")
	return nil
}

func deliver(ctx context.Context, env envelope) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", env.addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	tlsConfig := &tls.Config{ServerName: env.host, MinVersion: tls.VersionTLS12}
	if env.implicitTLS {
		conn = tls.Client(conn, tlsConfig)
	}

	c, err := smtp.NewClient(conn, env.host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if !env.implicitTLS {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsConfig); err != nil {
				return err
			}
		}
	}

	if env.username != "" {
		if ok, _ := c.Extension("AUTH"); !ok {
			return errNoAuthSupport
		}
		if err = c.Auth(smtp.PlainAuth("", env.username, env.password, env.host)); err != nil {
			return err
		}
	}

	if err = c.Mail(env.from); err != nil {
		return err
	}
	for _, rcpt := range env.to {
		if err = c.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(env.data); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}

	return c.Quit()
}
