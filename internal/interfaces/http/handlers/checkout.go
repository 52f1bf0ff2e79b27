// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-cart/internal/domain/checkout"
)

// ReceiptRenderer turns a placed order into a downloadable receipt
type ReceiptRenderer interface {
	GeneratePDF(record *checkout.OrderRecord) (*bytes.Buffer, error)
}

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	sessions *Sessions
	service  *checkout.Service
	receipts ReceiptRenderer
	logger   logrus.FieldLogger
}

// NewCheckoutHandler creates a new checkout handler. receipts may be nil.
func NewCheckoutHandler(sessions *Sessions, service *checkout.Service, receipts ReceiptRenderer, logger logrus.FieldLogger) *CheckoutHandler {
	return &CheckoutHandler{
		sessions: sessions,
		service:  service,
		receipts: receipts,
		logger:   logger,
	}
}

// SelectMethodRequest selects how the order is fulfilled
type SelectMethodRequest struct {
	Method string `json:"payment_method" form:"payment_method"`
}

// GetSummary handles GET /checkout/summary. ?method= previews another
// fulfillment method without selecting it; unknown methods preview the default.
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	session := h.sessions.Open(c)
	view := session.View()

	if raw, ok := c.GetQuery("method"); ok {
		method, err := checkout.ParseMethod(raw)
		if err != nil {
			h.logger.WithField("method", raw).Warn("Unknown fulfillment method in summary preview, using default")
		}

		view.Summary = h.service.Calculator().Summarize(view.Entries, method)
		view.AddressRequired = method.RequiresAddress()
		view.ShowPaymentQR = method.ShowsPaymentQR()
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order summary retrieved successfully",
		"data":    NewCartResponse(view),
	})
}

// SelectMethod handles PUT /checkout/method
func (h *CheckoutHandler) SelectMethod(c *gin.Context) {
	var req SelectMethodRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	session := h.sessions.Open(c)
	session.SelectMethod(c.Request.Context(), req.Method)

	c.JSON(http.StatusOK, gin.H{
		"message": "Fulfillment method updated successfully",
		"data":    NewCartResponse(session.View()),
	})
}

// PlaceOrder handles POST /checkout/orders. With ?receipt=pdf the response
// is the PDF receipt of the placed order.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var form checkout.OrderForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	session := h.sessions.Open(c)
	confirmation, err := h.service.PlaceOrder(c.Request.Context(), session, form)
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{
			"error":    "Your cart is empty. Please add items before placing an order.",
			"redirect": "/products",
		})
		return
	case errors.Is(err, checkout.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	case err != nil:
		h.logger.WithError(err).Error("Failed to place order")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	if c.Query("receipt") == "pdf" && h.receipts != nil {
		pdfBuffer, err := h.receipts.GeneratePDF(confirmation.Record)
		if err == nil {
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", confirmation.Record.OrderNumber))
			c.Header("Content-Length", strconv.Itoa(pdfBuffer.Len()))
			c.Data(http.StatusCreated, "application/pdf", pdfBuffer.Bytes())
			return
		}
		h.logger.WithError(err).WithField("order_number", confirmation.Record.OrderNumber).Warn("Receipt PDF unavailable, answering with JSON")
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": confirmation.Title,
		"data":    confirmation,
	})
}
