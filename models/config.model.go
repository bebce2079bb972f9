package models

import "golang.org/x/crypto/bcrypt"

// DefaultPassword es la contraseña que acepta una instalación recién creada.
const DefaultPassword = "admin123"

// Config es el documento de configuración del panel.
type Config struct {
	Password  string `json:"password"`
	EmailUser string `json:"emailUser,omitempty"`
	EmailPass string `json:"emailPass,omitempty"`
}

// LoginRequest es el cuerpo de POST /api/login.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest es el cuerpo de POST /api/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// ContactRequest es el cuerpo de POST /api/send-email.
type ContactRequest struct {
	Nombre  string `json:"nombre" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Mensaje string `json:"mensaje"`
}

// DefaultConfig devuelve la configuración inicial, con la contraseña
// por defecto ya hasheada.
func DefaultConfig() Config {
	hash, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	return Config{Password: string(hash)}
}

// CheckPassword compara una contraseña en claro contra el hash guardado.
func (c *Config) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) == nil
}

// SetPassword reemplaza la contraseña guardando su hash.
func (c *Config) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.Password = string(hash)
	return nil
}
