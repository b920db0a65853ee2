package handler

import (
	"errors"
	"file-shop-demo/internal/dto"
	"file-shop-demo/internal/service"
	"net/http"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	storeService   service.StoreService
	paymentService service.PaymentService
}

func NewPaymentHandler(storeService service.StoreService, paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		storeService:   storeService,
		paymentService: paymentService,
	}
}

// SelectFile is the file click: purchased files come back ready to download,
// everything else gets a payment session awaiting confirmation.
func (h *PaymentHandler) SelectFile(c echo.Context) error {
	ctx := c.Request().Context()
	fileID := c.Param("id")

	selection, err := h.storeService.SelectFile(ctx, fileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "file not found")
		case errors.Is(err, service.ErrNotAFile):
			return echo.NewHTTPError(http.StatusBadRequest, "not a purchasable file")
		}
		return err
	}

	if selection.Purchased {
		return c.JSON(http.StatusOK, &dto.SelectFileResponse{
			Purchased:   true,
			DownloadURL: h.storeService.ConfirmDownload(selection.DownloadURL),
		})
	}

	return c.JSON(http.StatusOK, &dto.SelectFileResponse{
		SessionID: selection.Session.ID(),
		State:     string(selection.Session.State()),
		Price:     selection.Session.Amount(),
	})
}

// ConfirmPayment models the "payment done" click and blocks until the
// processor settles (or fails) the charge.
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	ctx := c.Request().Context()
	sessionID := c.Param("sessionID")

	session, err := h.paymentService.Confirm(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "payment session not found")
		case errors.Is(err, service.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrPaymentFailed):
			return c.JSON(http.StatusPaymentRequired, sessionResponse(session))
		}
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

func (h *PaymentHandler) CancelPayment(c echo.Context) error {
	sessionID := c.Param("sessionID")

	if err := h.paymentService.Cancel(sessionID); err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "payment session not found")
		case errors.Is(err, service.ErrInvalidTransition):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "cancelled"})
}

func (h *PaymentHandler) GetPaymentSession(c echo.Context) error {
	session, err := h.paymentService.Get(c.Param("sessionID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "payment session not found")
	}

	return c.JSON(http.StatusOK, sessionResponse(session))
}

func sessionResponse(session *service.PaymentSession) *dto.PaymentSessionResponse {
	return &dto.PaymentSessionResponse{
		SessionID:     session.ID(),
		FileID:        session.File().ID,
		Price:         session.Amount(),
		State:         string(session.State()),
		DownloadURL:   session.DownloadURL(),
		FailureReason: session.FailureReason(),
	}
}
