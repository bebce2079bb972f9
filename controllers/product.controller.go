// File: controllers/product.controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"parrillas-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Límite de subida de imágenes.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// GetProducts devuelve el catálogo completo en orden de alta.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	products := ctrl.Products.Load()
	if products == nil {
		products = models.ProductList{}
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct da de alta un producto desde el formulario multipart,
// con imagen opcional. Precio vacío queda en "Consultar" y sin imagen
// se usa la de relleno.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	image, err := ctrl.saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	product := models.Product{
		ID:          newID(),
		Name:        c.PostForm("name"),
		Type:        c.PostForm("type"),
		Price:       c.PostForm("price"),
		Description: c.PostForm("description"),
		Badge:       c.PostForm("badge"),
		Image:       image,
	}
	if product.Price == "" {
		product.Price = models.PriceOnRequest
	}
	if product.Image == "" {
		product.Image = models.DefaultImagePath
	}

	if _, err := ctrl.Products.Update(func(list *models.ProductList) error {
		if product.Badge == models.BadgeExclusive {
			list.ClearExclusiveBadge("")
		}
		*list = append(*list, product)
		return nil
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error saving product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// UpdateProduct pisa todos los campos editables con lo que llegue en el
// formulario. A diferencia del alta, no sustituye precio ni insignia
// vacíos. La imagen guardada se conserva salvo que suban una nueva.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	image, err := ctrl.saveUploadedImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var updated models.Product
	_, err = ctrl.Products.Update(func(list *models.ProductList) error {
		i := list.IndexOf(id)
		if i < 0 {
			return ErrProductNotFound
		}
		badge := c.PostForm("badge")
		if badge == models.BadgeExclusive {
			list.ClearExclusiveBadge(id)
		}
		p := &(*list)[i]
		p.Name = c.PostForm("name")
		p.Type = c.PostForm("type")
		p.Price = c.PostForm("price")
		p.Description = c.PostForm("description")
		p.Badge = badge
		if image != "" {
			p.Image = image
		}
		updated = *p
		return nil
	})
	if errors.Is(err, ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Producto no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": updated})
}

// DeleteProduct elimina el producto del catálogo. El archivo de imagen
// queda en disco: puede estar compartido con otros productos.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	_, err := ctrl.Products.Update(func(list *models.ProductList) error {
		i := list.IndexOf(id)
		if i < 0 {
			return ErrProductNotFound
		}
		*list = append((*list)[:i], (*list)[i+1:]...)
		return nil
	})
	if errors.Is(err, ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}

// saveUploadedImage guarda la imagen del formulario, si vino, con un
// nombre único y devuelve la ruta relativa que se persiste en el
// catálogo. Sin archivo devuelve cadena vacía y ningún error.
func (ctrl *Controller) saveUploadedImage(c *gin.Context) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	if file.Size > MaxFileSize {
		return "", fmt.Errorf("la imagen no puede superar los 10MB (pesa %.1fMB)", float64(file.Size)/(1024*1024))
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("formato de imagen no soportado; se aceptan: jpg, jpeg, png, gif, webp")
	}

	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(ctrl.UploadDir, name)); err != nil {
		return "", fmt.Errorf("no se pudo guardar la imagen: %w", err)
	}
	return "img/" + name, nil
}
