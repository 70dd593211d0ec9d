package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marianadoces/console/internal/server/handlers"
)

// New wires the Gin engine with the console routes and middlewares.
func New(handler *handlers.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		v1.POST("/session", handler.CreateSession)
		v1.DELETE("/session", handler.DeleteSession)

		v1.GET("/products/:id/detail", handler.ProductDetail)
		v1.POST("/products/cost-preview", handler.CostPreview)

		v1.POST("/sales/preview", handler.SalesPreview)
		v1.POST("/sales", handler.SubmitSale)

		v1.GET("/reports/summary", handler.SalesSummary)
		v1.GET("/reports/products", handler.ProductSales)
		v1.GET("/reports/stock", handler.StockReport)
		v1.GET("/reports/export/csv", handler.ExportSalesCSV)
		v1.GET("/reports/export/stock-csv", handler.ExportStockCSV)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
