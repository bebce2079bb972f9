// Package mailer envía el correo del formulario de contacto por SMTP.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// ContactMessage es el contenido del formulario de contacto.
type ContactMessage struct {
	Nombre  string
	Email   string
	Mensaje string
}

// Credentials son las credenciales del remitente, tomadas del documento
// de configuración.
type Credentials struct {
	User string
	Pass string
}

// Transport abstrae la transmisión real del correo.
type Transport interface {
	Send(ctx context.Context, creds Credentials, msg ContactMessage) error
}

// SMTPMailer envía por SMTP con STARTTLS y autenticación PLAIN.
// Pensado para el servicio de envío de Gmail (587).
type SMTPMailer struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// NewSMTPMailer crea el transporte con un timeout de conexión razonable.
func NewSMTPMailer(host string, port int) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, Timeout: 30 * time.Second}
}

// Send construye el mensaje y lo entrega. Cualquier error implica que el
// correo no salió; el llamador decide qué contadores tocar.
func (m *SMTPMailer) Send(ctx context.Context, creds Credentials, msg ContactMessage) error {
	body, err := buildBody(msg)
	if err != nil {
		return fmt.Errorf("error armando la plantilla: %w", err)
	}
	raw := m.buildMessage(creds.User, msg, body)
	return m.sendSMTP(ctx, creds, raw)
}

// buildMessage arma encabezados y cuerpo. El Reply-To apunta al visitante
// para que el negocio pueda responderle directo.
func (m *SMTPMailer) buildMessage(from string, msg ContactMessage, body string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %q <%s>\r\n", "Web Parrillas", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", from))
	b.WriteString(fmt.Sprintf("Reply-To: %s\r\n", msg.Email))
	b.WriteString(fmt.Sprintf("Subject: 🔥 Nuevo Contacto: %s\r\n", msg.Nombre))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return b.String()
}

func (m *SMTPMailer) sendSMTP(ctx context.Context, creds Credentials, raw string) error {
	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)

	dialer := &net.Dialer{Timeout: m.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("no se pudo conectar al servidor SMTP: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.Host)
	if err != nil {
		return fmt.Errorf("no se pudo crear el cliente SMTP: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: m.Host,
		MinVersion: tls.VersionTLS12,
	}
	if err := client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("falló STARTTLS: %w", err)
	}

	auth := smtp.PlainAuth("", creds.User, creds.Pass, m.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("falló la autenticación SMTP: %w", err)
	}

	if err := client.Mail(creds.User); err != nil {
		return fmt.Errorf("el servidor rechazó al remitente: %w", err)
	}
	if err := client.Rcpt(creds.User); err != nil {
		return fmt.Errorf("el servidor rechazó al destinatario: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("no se pudo iniciar el mensaje: %w", err)
	}
	if _, err := writer.Write([]byte(raw)); err != nil {
		return fmt.Errorf("no se pudo escribir el mensaje: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("no se pudo cerrar el mensaje: %w", err)
	}

	// El mensaje ya salió; un error en el QUIT no lo invalida.
	_ = client.Quit()
	return nil
}
