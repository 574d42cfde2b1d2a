package services

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	texttemplate "text/template"
	"time"

	"go.uber.org/zap"

	"youngeru/internal/config"
	"youngeru/internal/quiz"
)

type IMailService interface {
	// SendPlan mails the recommendations generated at the end of the quiz.
	SendPlan(ctx context.Context, to string, plan []quiz.Recommendation) error
	SendWaitlistWelcome(ctx context.Context, to string) error
}

type PlanEmail struct {
	Title     string
	Intro     string
	Items     []quiz.Recommendation
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const planHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #F5F7F8; color: #174C4F; font-family: -apple-system, "Segoe UI", Roboto, Arial, sans-serif; }
    .container { max-width: 600px; margin: 32px auto; background: #ffffff; border-radius: 16px; overflow: hidden; }
    .header { padding: 24px 32px; font-weight: 700; font-size: 22px; color: #174C4F; border-bottom: 1px solid #e2e8f0; }
    .hero { padding: 32px; }
    .item { border: 1px solid #e2e8f0; border-radius: 12px; padding: 16px; margin-bottom: 16px; }
    .item h2 { margin: 0 0 8px; font-size: 18px; }
    .badge { display: inline-block; padding: 2px 8px; border-radius: 8px; background: #E6F4F1; font-size: 12px; }
    .muted { color: #64748b; font-size: 13px; }
    .btn { display: inline-block; padding: 14px 28px; background: #174C4F; color: #ffffff !important; text-decoration: none; border-radius: 12px; font-weight: 600; }
    .footer { padding: 20px 32px; color: #64748b; font-size: 13px; text-align: center; border-top: 1px solid #e2e8f0; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.AppName}}</div>
    <div class="hero">
      <h1>{{.Title}}</h1>
      <p>{{.Intro}}</p>
      {{range .Items}}
      <div class="item">
        <h2>{{.Category}} <span class="badge">Evidence {{.Evidence}}</span></h2>
        <p>{{.Rationale}}</p>
        <p><strong>Dosage:</strong> {{.Dosage}}<br><strong>Timing:</strong> {{.Timing}}</p>
        <p class="muted">{{.Guardrails}}</p>
      </div>
      {{end}}
      {{if .ButtonURL}}<p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>{{end}}
      <p class="muted">This plan is educational and not medical advice. Talk to your clinician before starting supplements.</p>
    </div>
    <div class="footer">&copy; {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const planTextTemplate = `{{.Title}}

{{.Intro}}
{{range .Items}}
* {{.Category}} (Evidence {{.Evidence}})
  {{.Rationale}}
  Dosage: {{.Dosage}}
  Timing: {{.Timing}}
  {{.Guardrails}}
{{end}}
{{if .ButtonURL}}{{.ButtonTxt}}: {{.ButtonURL}}
{{end}}
{{.AppName}} (c) {{.Year}}
`

// smtpTimeout bounds a whole SMTP exchange, dial included.
const smtpTimeout = 30 * time.Second

type smtpMailService struct {
	cfg     config.SMTPConfig
	timeout time.Duration
	htmlTpl *template.Template
	textTpl *texttemplate.Template
	log     *zap.Logger
}

// NewMailService returns an SMTP mailer, or a logging no-op when SMTP is
// not configured.
func NewMailService(cfg config.SMTPConfig, log *zap.Logger) IMailService {
	if !cfg.Enabled() {
		return &noopMailService{log: log}
	}
	return &smtpMailService{
		cfg:     cfg,
		timeout: smtpTimeout,
		htmlTpl: template.Must(template.New("planHTML").Parse(planHTMLTemplate)),
		textTpl: texttemplate.Must(texttemplate.New("planText").Parse(planTextTemplate)),
		log:     log,
	}
}

func (s *smtpMailService) SendPlan(ctx context.Context, to string, plan []quiz.Recommendation) error {
	subject := "Your personalized YoungerU plan"
	html, text, err := s.render(PlanEmail{
		Title:     subject,
		Intro:     "Here are the recommendations we built from your answers.",
		Items:     plan,
		ButtonURL: strings.TrimRight(s.cfg.AppBaseURL, "/") + "/library",
		ButtonTxt: "Browse the library",
	})
	if err != nil {
		return err
	}
	return s.send(ctx, to, subject, html, text)
}

func (s *smtpMailService) SendWaitlistWelcome(ctx context.Context, to string) error {
	subject := "You're on the YoungerU waitlist"
	html, text, err := s.render(PlanEmail{
		Title:     subject,
		Intro:     "Thanks for joining. We'll let you know as soon as your spot opens up.",
		ButtonURL: strings.TrimRight(s.cfg.AppBaseURL, "/"),
		ButtonTxt: "Take the quiz",
	})
	if err != nil {
		return err
	}
	return s.send(ctx, to, subject, html, text)
}

func (s *smtpMailService) render(data PlanEmail) (string, string, error) {
	data.AppName = s.cfg.FromName
	data.Year = time.Now().Year()
	return renderPlanEmail(s.htmlTpl, s.textTpl, data)
}

func renderPlanEmail(htmlTpl *template.Template, textTpl *texttemplate.Template, data PlanEmail) (string, string, error) {
	var hb, tb bytes.Buffer
	if err := htmlTpl.Execute(&hb, data); err != nil {
		return "", "", fmt.Errorf("render html: %w", err)
	}
	if err := textTpl.Execute(&tb, data); err != nil {
		return "", "", fmt.Errorf("render text: %w", err)
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.fromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
	deadline := time.Now().Add(s.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	dialer := &net.Dialer{Deadline: deadline}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: tlsCfg}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	defer conn.Close()
	if err := conn.SetDeadline(deadline); err != nil {
		return fmt.Errorf("set smtp deadline: %w", err)
	}

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return fmt.Errorf("starttls: %w", err)
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and SMTP_REQUIRE_TLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(s.buildMessage(to, subject, htmlBody, textBody)); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	s.log.Info("mail sent", zap.String("subject", subject))
	return nil
}

func (s *smtpMailService) fromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), s.cfg.From)
}

type noopMailService struct {
	log *zap.Logger
}

func (n *noopMailService) SendPlan(_ context.Context, to string, plan []quiz.Recommendation) error {
	n.log.Debug("smtp disabled, plan email skipped", zap.Int("items", len(plan)))
	return nil
}

func (n *noopMailService) SendWaitlistWelcome(_ context.Context, _ string) error {
	n.log.Debug("smtp disabled, waitlist email skipped")
	return nil
}
