package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mnavarro/salesboard/internal/database"
	"github.com/mnavarro/salesboard/internal/reports"
)

//go:embed templates/index.html
var templatesFS embed.FS

type Server struct {
	router  *gin.Engine
	db      *database.DB
	reports *reports.Service
	logger  *zap.Logger
}

// NewServer creates a new server instance
func NewServer(db *database.DB, logger *zap.Logger) *Server {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}

	router := gin.New()
	router.Use(requestID())
	router.Use(accessLog(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   fmt.Sprintf("%v", recovered),
		})
	}))

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/index.html")))

	server := &Server{
		router:  router,
		db:      db,
		reports: reports.NewService(db, logger),
		logger:  logger,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.dashboard)
	s.router.GET("/health", s.healthCheck)

	api := s.router.Group("/api")
	{
		api.GET("/sales", s.listSales)
		api.GET("/sales/summary", s.salesSummary)
		api.GET("/sales/daily", s.dailySales)
		api.GET("/sales/category", s.categorySales)
		api.GET("/sales/product", s.productSales)
		api.GET("/sales/top-products", s.topProducts)
		api.GET("/products", s.listProducts)
		api.GET("/products/categories", s.productCategories)
		api.GET("/customers", s.listCustomers)
		api.GET("/customers/count", s.customerCount)
	}

	s.router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "route not found")
	})
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
