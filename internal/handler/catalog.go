package handler

import (
	"errors"
	"file-shop-demo/internal/client"
	"file-shop-demo/internal/dto"
	"file-shop-demo/internal/model"
	"file-shop-demo/internal/service"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	storeService   service.StoreService
}

func NewCatalogHandler(catalogService service.CatalogService, storeService service.StoreService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		storeService:   storeService,
	}
}

// ListFiles returns the children of the requested folder, or the root listing
// when folder_id is absent. A dead catalog source degrades to an empty
// listing instead of an error page.
func (h *CatalogHandler) ListFiles(c echo.Context) error {
	ctx := c.Request().Context()
	folderID := c.QueryParam("folder_id")

	items, err := h.storeService.SelectFolder(ctx, folderID)
	if err != nil {
		if errors.Is(err, client.ErrCatalogUnavailable) {
			log.Println("catalog listing degraded:", err)
			return c.JSON(http.StatusOK, &dto.FileListResponse{
				Items:              []*model.CatalogNode{},
				CatalogUnavailable: true,
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, &dto.FileListResponse{Items: items})
}

func (h *CatalogHandler) RefreshCatalog(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.catalogService.Refresh(ctx); err != nil {
		if errors.Is(err, client.ErrCatalogUnavailable) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "catalog source unavailable")
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "refreshed"})
}
