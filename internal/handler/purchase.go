package handler

import (
	"file-shop-demo/internal/dto"
	"file-shop-demo/internal/repository"
	"file-shop-demo/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type PurchaseHandler struct {
	purchaseRepo repository.PurchaseRepository
	storeService service.StoreService
}

func NewPurchaseHandler(purchaseRepo repository.PurchaseRepository, storeService service.StoreService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseRepo: purchaseRepo,
		storeService: storeService,
	}
}

func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	ctx := c.Request().Context()

	purchases, err := h.purchaseRepo.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.PurchaseListResponse{Purchases: purchases})
}

// Logout ends the session: the ledger is cleared and purchases are forgotten.
func (h *PurchaseHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.storeService.EndSession(ctx); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}
