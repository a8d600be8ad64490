package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/connec_payment_sync/internal/connec"
	portssvc "github.com/SscSPs/connec_payment_sync/internal/core/ports/services"
	"github.com/SscSPs/connec_payment_sync/internal/dto"
	"github.com/SscSPs/connec_payment_sync/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxPayloadBytes bounds inbound webhook bodies.
const maxPayloadBytes = 1 << 20

// syncHandler handles HTTP requests moving payments across systems.
type syncHandler struct {
	syncService portssvc.PaymentSyncSvc
}

func newSyncHandler(svc portssvc.PaymentSyncSvc) *syncHandler {
	return &syncHandler{syncService: svc}
}

// registerWebhookRoutes registers the inbound webhook routes. Extra middleware (rate limiting) runs before the handlers.
func registerWebhookRoutes(rg *gin.RouterGroup, svc portssvc.PaymentSyncSvc, mw ...gin.HandlerFunc) {
	h := newSyncHandler(svc)

	webhooks := rg.Group("/webhooks", mw...)
	{
		webhooks.POST("/payments", h.importPayment)
	}
}

// registerPaymentRoutes registers the export routes.
func registerPaymentRoutes(rg *gin.RouterGroup, svc portssvc.PaymentSyncSvc) {
	h := newSyncHandler(svc)

	payments := rg.Group("/payments")
	{
		payments.GET("/:paymentID/remote", h.exportPayment)
	}
}

// importPayment godoc
// @Summary Apply a remote payment payload
// @Description Maps a CUSTOMER or SUPPLIER payment payload onto a local payment, creating it when no correspondence exists
// @Tags webhooks
// @Accept  json
// @Produce  json
// @Param   payment body connec.PaymentResource true "Remote payment payload"
// @Success 200 {object} dto.ImportPaymentResponse
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "A linked invoice is not synchronized yet"
// @Failure 422 {object} map[string]string "No mapper accepts the payload"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to import payment"
// @Security ApiKeyAuth
// @Security BearerAuth
// @Router /webhooks/payments [post]
func (h *syncHandler) importPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Caller ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPayloadBytes)
	body, err := c.GetRawData()
	if err != nil {
		logger.Warn("Failed to read webhook body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	res, err := connec.DecodePaymentResource(body)
	if err != nil {
		logger.Warn("Failed to decode webhook payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("type", res.Type), slog.String("remote_guid", res.ID.First()))
	payment, err := h.syncService.ImportPayment(c.Request.Context(), res, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to import payment")
		return
	}

	logger.Info("Webhook payment applied", slog.Int64("payment_id", payment.PaymentID))
	c.JSON(http.StatusOK, dto.ToImportPaymentResponse(payment))
}

// exportPayment godoc
// @Summary Build the remote payload of a payment
// @Description Returns the payload the driver sends to the remote API for a stored payment
// @Tags payments
// @Produce  json
// @Param   paymentID path int true "Local payment ID"
// @Success 200 {object} connec.PaymentResource
// @Failure 400 {object} map[string]string "Invalid payment ID"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to export payment"
// @Security BearerAuth
// @Router /payments/{paymentID}/remote [get]
func (h *syncHandler) exportPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	paymentID, err := strconv.ParseInt(c.Param("paymentID"), 10, 64)
	if err != nil || paymentID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment ID must be a positive integer"})
		return
	}

	logger = logger.With(slog.Int64("payment_id", paymentID))
	res, err := h.syncService.ExportPayment(c.Request.Context(), paymentID)
	if err != nil {
		respondError(c, logger, err, "Failed to export payment")
		return
	}

	c.JSON(http.StatusOK, res)
}
