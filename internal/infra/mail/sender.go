package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var welcomeTemplate = template.Must(template.ParseFS(templateFS, "templates/welcome.html"))

type WelcomeEmailData struct {
	Name       string
	ChurchName string
}

// EmailSender sends transactional mail over SMTP.
type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string

	send func(*gomail.Message) error
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	s := &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
	s.send = func(m *gomail.Message) error {
		return gomail.NewDialer(s.Host, s.Port, s.User, s.Password).DialAndSend(m)
	}
	return s
}

// SendWelcome greets a new convert by email.
func (s *EmailSender) SendWelcome(to, name, churchName string) error {
	body, err := renderWelcome(WelcomeEmailData{Name: name, ChurchName: churchName})
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Welcome to %s, %s!", churchName, name))
	m.SetBody("text/html", body)

	if err := s.send(m); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}

func renderWelcome(data WelcomeEmailData) (string, error) {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render welcome email: %w", err)
	}
	return body.String(), nil
}
