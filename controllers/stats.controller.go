package controllers

import (
	"net/http"

	"parrillas-backend/models"

	"github.com/gin-gonic/gin"
)

// TrackEvent registra un evento de visita, cotización, contacto o red
// social sobre los contadores globales y el balde del día.
func (ctrl *Controller) TrackEvent(c *gin.Context) {
	var req models.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	stats, err := ctrl.Stats.Update(func(doc *models.Stats) error {
		doc.Track(req.Type, req.ProductName, today())
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}

// GetStats devuelve el documento de estadísticas completo, con el mapa
// de productos garantizado para el panel.
func (ctrl *Controller) GetStats(c *gin.Context) {
	stats := ctrl.Stats.Load()
	if stats.Products == nil {
		stats.Products = map[string]int{}
	}
	c.JSON(http.StatusOK, stats)
}
