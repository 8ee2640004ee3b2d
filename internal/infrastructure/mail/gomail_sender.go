package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/metrics"
	"github.com/jhoicas/privilege-pass-api/pkg/config"
	"github.com/jhoicas/privilege-pass-api/pkg/logger"
)

// GomailSender envía campañas por SMTP, un mensaje por destinatario sobre una sola conexión.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
	log    *logger.Logger
}

// NewGomailSender construye el sender a partir de la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig, log *logger.Logger) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		log:    log,
	}
}

// Send entrega subject/html a cada destinatario y devuelve cuántos se enviaron.
// Un destinatario rechazado no corta el envío; un fallo de conexión o la cancelación de ctx sí,
// y en ese caso sent cuenta lo que ya salió.
func (s *GomailSender) Send(ctx context.Context, recipients []string, subject, html string) (sent int, err error) {
	if len(recipients) == 0 {
		return 0, nil
	}
	conn, err := s.dialer.Dial()
	if err != nil {
		return 0, fmt.Errorf("smtp dial: %w", err)
	}
	defer func() {
		if conn != nil {
			_ = conn.Close()
		}
		metrics.AddEmailsSent(sent)
	}()

	msg := gomail.NewMessage()
	for _, to := range recipients {
		if err := ctx.Err(); err != nil {
			return sent, err
		}
		msg.SetHeader("From", s.from)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", subject)
		msg.SetBody("text/html", html)
		sendErr := gomail.Send(conn, msg)
		msg.Reset()
		if sendErr == nil {
			sent++
			continue
		}
		s.log.Warn().Err(sendErr).Str("to", to).Msg("email de campaña rechazado")

		// gomail no envía RSET tras un RCPT rechazado: la transacción queda abierta y el
		// siguiente MAIL FROM fallaría. Se descarta la conexión y se abre otra.
		_ = conn.Close()
		conn = nil
		if conn, err = s.dialer.Dial(); err != nil {
			conn = nil
			return sent, fmt.Errorf("smtp redial: %w", err)
		}
	}
	return sent, nil
}

// NopSender se usa cuando SMTP_HOST está vacío: no envía nada y lo deja registrado.
type NopSender struct {
	Log *logger.Logger
}

func (n NopSender) Send(_ context.Context, recipients []string, subject, _ string) (int, error) {
	n.Log.Warn().Int("recipients", len(recipients)).Str("subject", subject).Msg("SMTP no configurado; campaña no enviada")
	return 0, nil
}
