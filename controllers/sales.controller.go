package controllers

import (
	"errors"
	"net/http"
	"time"

	"parrillas-backend/models"

	"github.com/gin-gonic/gin"
)

// GetSales devuelve todas las ventas en orden de alta.
func (ctrl *Controller) GetSales(c *gin.Context) {
	stats := ctrl.Stats.Load()
	if stats.Sales == nil {
		stats.Sales = []models.Sale{}
	}
	c.JSON(http.StatusOK, stats.Sales)
}

// CreateSale da de alta una venta manual y la devuelve.
func (ctrl *Controller) CreateSale(c *gin.Context) {
	var input models.SaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	sale := models.Sale{
		ID:        newID(),
		Date:      input.Date,
		Product:   input.Product,
		Amount:    input.Amount,
		Notes:     input.Notes,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := ctrl.Stats.Update(func(doc *models.Stats) error {
		doc.Sales = append(doc.Sales, sale)
		return nil
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sale": sale})
}

// UpdateSale pisa fecha, producto y monto de una venta existente. Las
// notas quedan como estaban.
func (ctrl *Controller) UpdateSale(c *gin.Context) {
	id := c.Param("id")

	var input models.SaleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	_, err := ctrl.Stats.Update(func(doc *models.Stats) error {
		for i := range doc.Sales {
			if doc.Sales[i].ID == id {
				doc.Sales[i].Date = input.Date
				doc.Sales[i].Product = input.Product
				doc.Sales[i].Amount = input.Amount
				return nil
			}
		}
		return ErrSaleNotFound
	})
	if errors.Is(err, ErrSaleNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Venta no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteSale elimina la venta si existe. Un id desconocido también
// responde éxito: el borrado es idempotente.
func (ctrl *Controller) DeleteSale(c *gin.Context) {
	id := c.Param("id")

	if _, err := ctrl.Stats.Update(func(doc *models.Stats) error {
		kept := doc.Sales[:0]
		for _, s := range doc.Sales {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		doc.Sales = kept
		return nil
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
