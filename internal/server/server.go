package server

import (
	"file-shop-demo/internal/handler"
	mw "file-shop-demo/internal/middleware"
	"file-shop-demo/internal/repository"
	"file-shop-demo/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo            *echo.Echo
	catalogHandler  *handler.CatalogHandler
	paymentHandler  *handler.PaymentHandler
	purchaseHandler *handler.PurchaseHandler
}

func NewServer(
	catalogService service.CatalogService,
	paymentService service.PaymentService,
	storeService service.StoreService,
	purchaseRepo repository.PurchaseRepository,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mw.AuthMiddleware())

	catalogHandler := handler.NewCatalogHandler(catalogService, storeService)
	paymentHandler := handler.NewPaymentHandler(storeService, paymentService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseRepo, storeService)

	s := &Server{
		echo:            e,
		catalogHandler:  catalogHandler,
		paymentHandler:  paymentHandler,
		purchaseHandler: purchaseHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	api.GET("/files", s.catalogHandler.ListFiles)
	api.POST("/catalog/refresh", s.catalogHandler.RefreshCatalog)

	// -------- purchase flow --------
	api.POST("/files/:id/select", s.paymentHandler.SelectFile)
	payments := api.Group("/payments")
	payments.GET("/:sessionID", s.paymentHandler.GetPaymentSession)
	payments.POST("/:sessionID/confirm", s.paymentHandler.ConfirmPayment)
	payments.POST("/:sessionID/cancel", s.paymentHandler.CancelPayment)

	// -------- session --------
	api.GET("/purchases", s.purchaseHandler.ListPurchases)
	api.POST("/session/logout", s.purchaseHandler.Logout)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
