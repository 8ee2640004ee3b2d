package mail_test

import (
	"bufio"
	"context"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/privilege-pass-api/internal/infrastructure/mail"
	"github.com/jhoicas/privilege-pass-api/pkg/config"
	"github.com/jhoicas/privilege-pass-api/pkg/logger"
)

// ─────────────────────────────────────────────────────────────────────────────
// Servidor SMTP mínimo: rechaza en RCPT los destinatarios que contienen "bad@"
// y, como un MTA real, responde 503 a un MAIL FROM con una transacción abierta.
// ─────────────────────────────────────────────────────────────────────────────

type smtpServer struct {
	ln        net.Listener
	mu        sync.Mutex
	delivered []string
}

func newSMTPServer(t *testing.T) *smtpServer {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	s := &smtpServer{ln: ln}
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go s.serve(conn)
		}
	}()
	return s
}

func (s *smtpServer) config() config.SMTPConfig {
	addr := s.ln.Addr().(*net.TCPAddr)
	return config.SMTPConfig{Host: "127.0.0.1", Port: addr.Port, From: "contato@privilegepass.com.br"}
}

func (s *smtpServer) Delivered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.delivered...)
}

func (s *smtpServer) serve(conn net.Conn) {
	defer conn.Close()
	r := bufio.NewReader(conn)
	reply := func(code int, msg string) { _, _ = conn.Write([]byte(strconv.Itoa(code) + " " + msg + "\r\n")) }

	reply(220, "fake ESMTP")
	inMail := false
	var rcpts []string
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		cmd := strings.ToUpper(strings.TrimSpace(line))
		switch {
		case strings.HasPrefix(cmd, "EHLO"), strings.HasPrefix(cmd, "HELO"):
			reply(250, "fake")
		case strings.HasPrefix(cmd, "MAIL FROM"):
			if inMail {
				reply(503, "nested MAIL command")
				continue
			}
			inMail, rcpts = true, nil
			reply(250, "ok")
		case strings.HasPrefix(cmd, "RCPT TO"):
			if strings.Contains(cmd, "BAD@") {
				reply(550, "mailbox unavailable")
				continue
			}
			addr := strings.TrimSpace(line[strings.Index(line, ":")+1:])
			rcpts = append(rcpts, strings.Trim(addr, "<>"))
			reply(250, "ok")
		case cmd == "DATA":
			reply(354, "go ahead")
			for {
				l, err := r.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
			}
			s.mu.Lock()
			s.delivered = append(s.delivered, rcpts...)
			s.mu.Unlock()
			inMail = false
			reply(250, "queued")
		case cmd == "RSET":
			inMail = false
			reply(250, "ok")
		case cmd == "QUIT":
			reply(221, "bye")
			return
		default:
			reply(502, "not implemented")
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GomailSender
// ─────────────────────────────────────────────────────────────────────────────

func TestGomailSender_RechazadoNoCortaElEnvio(t *testing.T) {
	srv := newSMTPServer(t)
	s := mail.NewGomailSender(srv.config(), logger.Nop())

	n, err := s.Send(context.Background(),
		[]string{"ana@example.com", "bad@example.com", "bia@example.com", "caio@example.com"},
		"Novidades", "<p>Olá</p>")
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"ana@example.com", "bia@example.com", "caio@example.com"}, srv.Delivered())
}

func TestGomailSender_ContextoCanceladoDevuelveParcial(t *testing.T) {
	srv := newSMTPServer(t)
	s := mail.NewGomailSender(srv.config(), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := s.Send(ctx, []string{"ana@example.com"}, "Novidades", "<p>Olá</p>")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	assert.Empty(t, srv.Delivered())
}

func TestGomailSender_SinDestinatariosNoConecta(t *testing.T) {
	// Host inexistente: si intentara conectar devolvería error.
	s := mail.NewGomailSender(config.SMTPConfig{Host: "smtp.invalid", Port: 587}, logger.Nop())
	n, err := s.Send(context.Background(), nil, "Promo", "<p>oi</p>")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNopSender_NoEnvia(t *testing.T) {
	n, err := mail.NopSender{Log: logger.Nop()}.Send(context.Background(), []string{"ana@example.com"}, "Promo", "<p>oi</p>")
	require.NoError(t, err)
	assert.Zero(t, n)
}
