package mailer

import (
	"html/template"
	"strings"
)

// Plantilla del aviso de contacto, en el tema oscuro del sitio.
const contactTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<style>
    body { font-family: 'Roboto', Helvetica, Arial, sans-serif; background-color: #121212; margin: 0; padding: 0; color: #ffffff; }
    .container { width: 100%; max-width: 600px; margin: 0 auto; background-color: #1e1e1e; border: 1px solid #333; }
    .header { background-color: #000000; padding: 40px 20px; text-align: center; border-bottom: 3px solid #d7261e; }
    .content { padding: 60px 40px; text-align: left; }
    .title { color: #f46b1b; font-size: 26px; font-weight: 700; margin-bottom: 30px; text-transform: uppercase; letter-spacing: 1px; text-align: center; }
    .intro-text { color: #cccccc; font-size: 15px; line-height: 1.6; margin-bottom: 40px; text-align: center; }
    .field-label { color: #888888; font-size: 12px; text-transform: uppercase; font-weight: bold; margin-top: 25px; display: block; letter-spacing: 1.5px; }
    .field-value { color: #ffffff; font-size: 18px; margin-bottom: 15px; border-left: 2px solid #d7261e; padding-left: 15px; font-weight: 500; }
    .message-box { background-color: #252525; padding: 25px; border-radius: 8px; border: 1px solid #333; margin-top: 15px; font-style: italic; color: #dddddd; line-height: 1.6; }
    .footer { background-color: #000000; padding: 60px 20px; text-align: center; }
    .footer-title { font-size: 32px; font-weight: 700; text-transform: uppercase; margin: 0; letter-spacing: 2px; color: #ffffff; }
    .footer-subtitle { font-size: 14px; text-transform: uppercase; opacity: 0.9; margin-top: 10px; letter-spacing: 4px; color: #ffc300; }
</style>
</head>
<body>
<div class="container">
    <div class="header"></div>
    <div class="content">
        <div class="title">Nuevo Mensaje Recibido</div>
        <p class="intro-text">Has recibido una nueva solicitud de contacto desde tu sitio web.</p>

        <span class="field-label">Nombre del Cliente</span>
        <div class="field-value">{{.Nombre}}</div>

        <span class="field-label">Correo Electrónico</span>
        <div class="field-value">{{.Email}}</div>

        <span class="field-label">Mensaje</span>
        <div class="message-box">"{{.Mensaje}}"</div>
    </div>
    <div class="footer">
        <p class="footer-title">Parrillas del Gancho</p>
        <p class="footer-subtitle">Administración Web</p>
    </div>
</div>
</body>
</html>
`

var contactTmpl = template.Must(template.New("contact").Parse(contactTemplate))

// buildBody renderiza la plantilla HTML con los datos del formulario.
func buildBody(msg ContactMessage) (string, error) {
	var b strings.Builder
	if err := contactTmpl.Execute(&b, msg); err != nil {
		return "", err
	}
	return b.String(), nil
}
