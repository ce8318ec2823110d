package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/altruist/ucp-payments/internal/dto"
	"github.com/altruist/ucp-payments/internal/middleware"
	"github.com/altruist/ucp-payments/internal/model"
	"github.com/altruist/ucp-payments/internal/service"
)

type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// Process runs a payment intent through the pipeline. Anything short of a
// SUCCESS outcome is a 400 carrying the same response shape.
func (h *PaymentHandler) Process(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
		})
		return
	}

	resp, err := h.svc.ProcessPayment(c.Request.Context(), &req)
	if err != nil {
		status, errResp := middleware.MapDBError(err)
		c.JSON(status, errResp)
		return
	}

	if resp.Status == model.StatusSuccess {
		c.JSON(http.StatusOK, resp)
	} else {
		c.JSON(http.StatusBadRequest, resp)
	}
}

func (h *PaymentHandler) Gateways(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.AvailableGateways())
}

func (h *PaymentHandler) History(c *gin.Context) {
	payments, err := h.svc.PaymentHistory(c.Request.Context())
	if err != nil {
		status, errResp := middleware.MapDBError(err)
		c.JSON(status, errResp)
		return
	}
	c.JSON(http.StatusOK, payments)
}
