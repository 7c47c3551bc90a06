package router

import (
	"github.com/gin-gonic/gin"

	"gstbill/internal/handler"
	"gstbill/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	healthH *handler.HealthHandler,
	partyH *handler.PartyHandler,
	documentH *handler.DocumentHandler,
	paymentH *handler.PaymentHandler,
	reportH *handler.ReportHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	parties := v1.Group("/parties")
	parties.POST("", partyH.Create)
	parties.GET("", partyH.List)
	parties.GET("/:id", partyH.GetByID)
	parties.PUT("/:id", partyH.Update)
	parties.DELETE("/:id", partyH.Delete)

	documents := v1.Group("/documents")
	documents.POST("", documentH.Create)
	documents.GET("", documentH.List)
	documents.POST("/preview", documentH.Preview)
	documents.GET("/:id", documentH.GetByID)
	documents.PUT("/:id", documentH.Update)
	documents.DELETE("/:id", documentH.Delete)
	documents.POST("/:id/post", documentH.Post)
	documents.POST("/:id/receipt", documentH.AttachReceipt)
	documents.GET("/:id/receipt", documentH.ReceiptURL)
	documents.POST("/:id/payments", paymentH.Apply)
	documents.GET("/:id/payments", paymentH.List)

	reports := v1.Group("/reports")
	reports.GET("/gst-summary", reportH.GSTSummary)
	reports.GET("/gst-summary.xlsx", reportH.GSTSummaryXLSX)
	reports.GET("/register.csv", reportH.RegisterCSV)
	reports.GET("/register.xlsx", reportH.RegisterXLSX)

	return r
}
