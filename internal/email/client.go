package email

import (
	"crypto/tls"
	"fmt"
	"strconv"

	"github.com/wneessen/go-mail"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient crea una nueva instancia del cliente de email
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail envía un correo electrónico con cuerpo HTML
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar correo (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// SendBienvenida envía el correo de bienvenida tras un registro exitoso
func (c *Client) SendBienvenida(nombre, apellidoPaterno, to string) error {
	subject := fmt.Sprintf("Registro exitoso - %s", c.fromName)
	htmlBody := generarHTMLBienvenida(nombre, apellidoPaterno, c.fromName)

	return c.SendEmail(to, subject, htmlBody)
}

// generarHTMLBienvenida genera el HTML del correo de bienvenida
func generarHTMLBienvenida(nombre, apellidoPaterno, fromName string) string {
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
			<div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 30px; border-radius: 8px;">
				<h2 style="color: #333;">¡Bienvenido, %s %s!</h2>
				<p style="color: #333; font-size: 16px;">
					Tu registro se completó exitosamente. Tus datos quedaron
					guardados y puedes actualizarlos en cualquier momento.
				</p>
				<p style="color: #333; font-size: 16px;">
					Saludos,<br>
					<strong>%s</strong>
				</p>
			</div>
		</body>
		</html>
	`, nombre, apellidoPaterno, fromName)
}
