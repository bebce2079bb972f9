package controllers

import (
	"net/http"
	"unicode/utf8"

	"parrillas-backend/mailer"
	"parrillas-backend/models"

	"github.com/gin-gonic/gin"
)

// SendEmail envía el formulario de contacto, sujeto al límite diario.
// Los contadores recién se tocan con la transmisión confirmada: un envío
// fallido no consume cupo ni cuenta como intento de contacto.
func (ctrl *Controller) SendEmail(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	cfg := ctrl.Config.Load()
	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server email not configured."})
		return
	}

	if utf8.RuneCountInString(req.Mensaje) > models.MaxMessageLength {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "El mensaje no puede exceder los 300 caracteres."})
		return
	}

	date := today()
	stats := ctrl.Stats.Load()
	if stats.RefreshEmailUsage(date).Count >= models.DailyEmailLimit {
		c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "Límite diario de correos alcanzado (50)."})
		return
	}

	creds := mailer.Credentials{User: cfg.EmailUser, Pass: cfg.EmailPass}
	msg := mailer.ContactMessage{Nombre: req.Nombre, Email: req.Email, Mensaje: req.Mensaje}
	if err := ctrl.Mailer.Send(c.Request.Context(), creds, msg); err != nil {
		ctrl.Log.Error().Err(err).Msg("falló el envío del correo de contacto")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error sending email"})
		return
	}

	if _, err := ctrl.Stats.Update(func(doc *models.Stats) error {
		doc.RefreshEmailUsage(date).Count++
		doc.RegisterContact(date)
		return nil
	}); err != nil {
		// El correo ya salió; la falla de persistencia no cambia la respuesta.
		ctrl.Log.Warn().Err(err).Msg("no se pudieron persistir los contadores de correo")
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email sent successfully"})
}
