package mailer

import (
	"context"
	"testing"
	"time"

	"via-proposito/internal/config"
	"via-proposito/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

func testConfig() config.SMTPConfig {
	return config.SMTPConfig{
		Host:     "127.0.0.1",
		Port:     1,
		Username: "noreply@viaproposito.example",
		Password: "secret",
		From:     "noreply@viaproposito.example",
	}
}

func testMessage() *domain.EmailMessage {
	return &domain.EmailMessage{
		To:       "ana@example.com",
		Subject:  "Tus Resultados: Perfil Soñador - Via Propósito",
		TextBody: "texto",
		HTMLBody: "<p>html</p>",
	}
}

func TestBuildMessage(t *testing.T) {
	m := &SMTPMailer{cfg: testConfig(), timeout: time.Second}

	msg, err := m.buildMessage(testMessage())
	require.NoError(t, err)

	rcpts, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, rcpts)
	assert.Equal(t, []string{"Tus Resultados: Perfil Soñador - Via Propósito"}, msg.GetGenHeader(mail.HeaderSubject))
	assert.Len(t, msg.GetParts(), 2)
}

func TestBuildMessage_InvalidAddresses(t *testing.T) {
	cfg := testConfig()
	cfg.From = "not an address"
	m := &SMTPMailer{cfg: cfg, timeout: time.Second}
	_, err := m.buildMessage(testMessage())
	assert.Error(t, err)

	m = &SMTPMailer{cfg: testConfig(), timeout: time.Second}
	bad := testMessage()
	bad.To = "@@"
	_, err = m.buildMessage(bad)
	assert.Error(t, err)
}

func TestClientOptions(t *testing.T) {
	m := &SMTPMailer{cfg: testConfig(), timeout: time.Second}
	assert.Len(t, m.clientOptions(), 6)

	cfg := testConfig()
	cfg.Username = ""
	m = &SMTPMailer{cfg: cfg, timeout: time.Second}
	assert.Len(t, m.clientOptions(), 3)
}

func TestSend_ConnectionFailure(t *testing.T) {
	m := &SMTPMailer{cfg: testConfig(), timeout: 500 * time.Millisecond}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := m.Send(ctx, testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send email")
}
