package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"radioapp/internal/config"
)

type Mailer interface {
	SendPasswordReset(email, resetToken string) error
}

type sendGridMailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) Mailer {
	return &sendGridMailer{cfg: cfg}
}

func (m *sendGridMailer) SendPasswordReset(email, resetToken string) error {
	from := mail.NewEmail(m.cfg.Mail.SenderName, m.cfg.Mail.SenderEmail)
	to := mail.NewEmail("", email)
	subject := "Restablecimiento de contraseña"

	resetLink := fmt.Sprintf("%s?token=%s", m.cfg.Mail.ResetURLBase, resetToken)
	plainTextContent := fmt.Sprintf("Haz clic en el siguiente enlace para restablecer tu contraseña: %s", resetLink)
	htmlContent := fmt.Sprintf(`<p>Haz clic en el siguiente enlace para restablecer tu contraseña: <a href="%s">%s</a></p>`, resetLink, resetLink)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	client := sendgrid.NewSendClient(m.cfg.Mail.APIKey)

	response, err := client.Send(message)
	if err != nil {
		log.Println("Failed to send password reset email:", err)
		return err
	}

	log.Printf("Password reset email sent, status code: %d", response.StatusCode)
	return nil
}
