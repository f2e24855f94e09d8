// Package router wires handlers and middleware into the HTTP API.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Divyanshusamdani/Expense-Tracker/internal/docs" // registers the OpenAPI document
	"github.com/Divyanshusamdani/Expense-Tracker/internal/handlers"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/ledger"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/middleware"
	"github.com/Divyanshusamdani/Expense-Tracker/internal/services"
)

// Services holds the service layer the routes are served from.
type Services struct {
	Users   services.UserServicer
	Ledger  services.LedgerServicer
	Reports services.ReportServicer
	Advisor services.AdvisorServicer
}

// New builds the gin engine with every route mounted.
func New(svc Services) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Users)
	expenseHandler := handlers.NewLedgerHandler(ledger.KindExpense, svc.Ledger)
	incomeHandler := handlers.NewLedgerHandler(ledger.KindIncome, svc.Ledger)
	reportHandler := handlers.NewReportHandler(svc.Reports)
	advisorHandler := handlers.NewAdvisorHandler(svc.Advisor)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())
	router.NoRoute(middleware.NotFound())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	mountLedger(protected.Group("/expenses"), expenseHandler)
	mountLedger(protected.Group("/income"), incomeHandler)

	reports := protected.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/breakdown", reportHandler.GetBreakdown)
	reports.GET("/statement", reportHandler.GetStatement)

	protected.POST("/advisor/ask", advisorHandler.Ask)

	return router
}

func mountLedger(g *gin.RouterGroup, h *handlers.LedgerHandler) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/export", h.Export)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
