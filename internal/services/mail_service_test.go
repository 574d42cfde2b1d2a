package services

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"youngeru/internal/config"
	"youngeru/internal/quiz"
)

func TestNewMailServiceWithoutSMTP(t *testing.T) {
	svc := NewMailService(config.SMTPConfig{Host: "smtp.example.com"}, zap.NewNop())

	require.IsType(t, &noopMailService{}, svc)
	assert.NoError(t, svc.SendPlan(context.Background(), "a@b.co", nil))
	assert.NoError(t, svc.SendWaitlistWelcome(context.Background(), "a@b.co"))
}

func testMailer() *smtpMailService {
	return NewMailService(config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		From:     "hello@youngeru.app",
		FromName: "YoungerU",
	}, zap.NewNop()).(*smtpMailService)
}

func TestRenderPlanEmail(t *testing.T) {
	s := testMailer()
	plan := quiz.DefaultEngine().Recommend(quiz.Answers{Goals: quiz.GoalSet{quiz.GoalFocus: {}}})

	html, text, err := renderPlanEmail(s.htmlTpl, s.textTpl, PlanEmail{
		Title:     "Your plan",
		Intro:     "Hello <there>",
		Items:     plan,
		ButtonURL: "https://youngeru.app/library",
		ButtonTxt: "Browse",
		AppName:   "YoungerU",
		Year:      2025,
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Cognitive Function")
	assert.Contains(t, html, "Hello &lt;there&gt;")
	assert.Contains(t, html, `href="https://youngeru.app/library"`)
	assert.Contains(t, text, "* Daily Foundation (Evidence A)")
	assert.Contains(t, text, "Browse: https://youngeru.app/library")
	assert.Contains(t, text, "YoungerU (c) 2025")
}

func TestBuildMessage(t *testing.T) {
	s := testMailer()

	msg := string(s.buildMessage("a@b.co", "Your plan", "<p>hi</p>", "hi"))

	assert.Contains(t, msg, "From: YoungerU <hello@youngeru.app>\r\n")
	assert.Contains(t, msg, "To: a@b.co\r\n")
	assert.Contains(t, msg, "Subject: Your plan\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n\r\nhi\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n\r\n<p>hi</p>\r\n")
	assert.True(t, strings.HasSuffix(msg, "--\r\n"))
}

func TestSendGivesUpOnSilentServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	accepted := make(chan net.Conn, 1)
	go func() {
		// accepts and never greets
		if conn, err := ln.Accept(); err == nil {
			accepted <- conn
		}
	}()
	t.Cleanup(func() {
		_ = ln.Close()
		select {
		case conn := <-accepted:
			_ = conn.Close()
		default:
		}
	})

	addr := ln.Addr().(*net.TCPAddr)
	s := NewMailService(config.SMTPConfig{
		Host: "127.0.0.1",
		Port: addr.Port,
		From: "hello@youngeru.app",
	}, zap.NewNop()).(*smtpMailService)
	s.timeout = 200 * time.Millisecond

	done := make(chan error, 1)
	go func() { done <- s.send(context.Background(), "a@b.co", "subject", "<p>hi</p>", "hi") }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("send did not time out")
	}
}
