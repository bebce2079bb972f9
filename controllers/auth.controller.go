package controllers

import (
	"errors"
	"net/http"
	"time"

	"parrillas-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/o1egl/paseto"
)

// Login valida la contraseña del panel y emite un token de sesión de 24hs.
func (ctrl *Controller) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	cfg := ctrl.Config.Load()
	if !cfg.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid password"})
		return
	}

	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    "admin",
		IssuedAt:   now,
		Expiration: now.Add(24 * time.Hour),
	}
	token, err := paseto.NewV2().Encrypt(ctrl.PasetoSecretKey, jsonToken, "parrillas-admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// ChangePassword reemplaza la contraseña del panel previa verificación
// de la actual.
func (ctrl *Controller) ChangePassword(c *gin.Context) {
	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	_, err := ctrl.Config.Update(func(cfg *models.Config) error {
		if !cfg.CheckPassword(req.CurrentPassword) {
			return ErrInvalidPassword
		}
		return cfg.SetPassword(req.NewPassword)
	})
	if errors.Is(err, ErrInvalidPassword) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid current password"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully"})
}
