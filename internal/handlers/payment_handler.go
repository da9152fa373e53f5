package handlers

import (
	"net/http"

	"fitlife-service/internal/domain/payment"
	"fitlife-service/internal/pkg/response"
	paymentservice "fitlife-service/internal/service/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService *paymentservice.PaymentService
}

func NewPaymentHandler(paymentService *paymentservice.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Create records a payment. A payment with status "Pago" also extends the
// member's membership in the same transaction.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req payment.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	p, err := h.paymentService.CreatePayment(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "Failed to create payment")
		return
	}

	response.Success(c, http.StatusCreated, "Payment created", p)
}

func (h *PaymentHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid payment ID", err)
		return
	}

	var req payment.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	p, err := h.paymentService.UpdatePayment(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err, "Failed to update payment")
		return
	}

	response.Success(c, http.StatusOK, "Payment updated", p)
}

func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid payment ID", err)
		return
	}

	p, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Payment not found")
		return
	}

	response.Success(c, http.StatusOK, "OK", p)
}

func (h *PaymentHandler) List(c *gin.Context) {
	var filters payment.PaymentListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "Invalid query parameters", err)
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, err, "Failed to list payments")
		return
	}

	response.Success(c, http.StatusOK, "OK", payments)
}
