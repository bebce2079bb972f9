package routes

import (
	"net/http"

	"parrillas-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup configura y devuelve el engine de Gin.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Imágenes subidas desde el panel
	r.Static("/img", ctrl.UploadDir)

	api := r.Group("/api")
	{
		// Analítica
		api.POST("/track", ctrl.TrackEvent)
		api.GET("/stats", ctrl.GetStats)

		// Ventas
		api.GET("/sales", ctrl.GetSales)
		api.POST("/sales", ctrl.CreateSale)
		api.PUT("/sales/:id", ctrl.UpdateSale)
		api.DELETE("/sales/:id", ctrl.DeleteSale)

		// Panel de administración
		api.POST("/login", ctrl.Login)
		api.POST("/change-password", ctrl.ChangePassword)

		// Contacto
		api.POST("/send-email", ctrl.SendEmail)

		// Catálogo
		api.GET("/products", ctrl.GetProducts)
		api.POST("/products", ctrl.CreateProduct)
		api.PUT("/products/:id", ctrl.UpdateProduct)
		api.DELETE("/products/:id", ctrl.DeleteProduct)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
