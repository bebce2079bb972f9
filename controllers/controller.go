// File: controllers/controller.go
package controllers

import (
	"errors"
	"strconv"
	"time"

	"parrillas-backend/mailer"
	"parrillas-backend/models"
	"parrillas-backend/storage"

	"github.com/rs/zerolog"
)

// Controller agrupa las dependencias compartidas por todos los handlers.
// Los campos van en mayúscula para poder armarlo desde main.
type Controller struct {
	Stats           *storage.Store[models.Stats]
	Products        *storage.Store[models.ProductList]
	Config          *storage.Store[models.Config]
	Mailer          mailer.Transport
	UploadDir       string
	PasetoSecretKey []byte
	Log             zerolog.Logger
}

// Errores de dominio que los handlers traducen a códigos HTTP.
var (
	ErrSaleNotFound    = errors.New("venta no encontrada")
	ErrProductNotFound = errors.New("producto no encontrado")
	ErrInvalidPassword = errors.New("contraseña incorrecta")
)

// today devuelve la fecha calendario del reloj del servidor, la clave
// de los baldes diarios.
func today() string {
	return time.Now().Format("2006-01-02")
}

// newID genera el identificador de registros nuevos: el instante de
// creación en milisegundos.
func newID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}
