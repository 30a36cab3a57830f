package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/swark/arkpay/internal/core/domain"
	"github.com/swark/arkpay/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	logger  *zap.Logger
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		logger:  logger,
		service: service,
	}, nil
}

type createOrderReq struct {
	Number   uint64  `json:"number" binding:"required"`
	Currency string  `json:"currency" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
}

type orderResp struct {
	Number           uint64    `json:"number"`
	Currency         string    `json:"currency"`
	InvoiceAmount    string    `json:"invoice_amount"`
	ExpectedAmount   string    `json:"expected_amount"`
	RecipientAddress string    `json:"recipient_address"`
	VendorField      string    `json:"vendor_field"`
	TransactionID    string    `json:"transaction_id,omitempty"`
	PaymentStatus    string    `json:"payment_status"`
	CreatedAt        time.Time `json:"created_at"`
}

func newOrderResp(o *domain.Order) orderResp {
	return orderResp{
		Number:           o.Number,
		Currency:         o.Currency,
		InvoiceAmount:    o.InvoiceAmount.String(),
		ExpectedAmount:   o.ExpectedAmount.String(),
		RecipientAddress: o.RecipientAddress,
		VendorField:      o.VendorField,
		TransactionID:    o.TransactionID,
		PaymentStatus:    string(o.PaymentStatus),
		CreatedAt:        o.CreatedAt,
	}
}

// CreateOrder registers an order and provisions its reconciliation
// attributes in one go; the shop calls this from its order-creation
// hook.
func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req createOrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		handleValidationError(ctx, err)
		return
	}

	order := &domain.Order{
		Number:        req.Number,
		Currency:      req.Currency,
		InvoiceAmount: amount,
	}

	created, err := oh.service.RegisterOrder(ctx, order)
	if err != nil {
		handleError(ctx, err)
		return
	}

	handleSuccessWithStatus(ctx, newOrderResp(created), http.StatusCreated)
}

// ProcessOrder re-provisions an existing order.
func (oh *OrderHandler) ProcessOrder(ctx *gin.Context) {
	number, err := strconv.ParseUint(ctx.Param("number"), 10, 64)
	if err != nil {
		handleValidationError(ctx, err)
		return
	}

	if err := oh.service.ProvisionOrder(ctx, number); err != nil {
		handleError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, number)
	if err != nil {
		handleError(ctx, err)
		return
	}

	handleSuccess(ctx, newOrderResp(order))
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	number, err := strconv.ParseUint(ctx.Param("number"), 10, 64)
	if err != nil {
		handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, number)
	if err != nil {
		handleError(ctx, err)
		return
	}

	handleSuccess(ctx, newOrderResp(order))
}

type sweepResp struct {
	Considered int `json:"considered"`
	Failed     int `json:"failed"`
}

// Reconcile triggers one sweep over the open orders. Per-order
// failures are reported in the summary, not as a request failure.
func (oh *OrderHandler) Reconcile(ctx *gin.Context) {
	result, err := oh.service.ReconcileAll(ctx)
	if err != nil && result.Considered == 0 {
		handleError(ctx, err)
		return
	}
	if err != nil {
		oh.logger.Error("Sweep finished with failures", zap.Int("failed", result.Failed), zap.Error(err))
	}

	handleSuccess(ctx, sweepResp{Considered: result.Considered, Failed: result.Failed})
}

// CheckPayment tells the shop whether a payment method id belongs to
// this gateway.
func (oh *OrderHandler) CheckPayment(ctx *gin.Context) {
	paymentID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		handleValidationError(ctx, err)
		return
	}

	if !oh.service.CheckPayment(paymentID) {
		handleError(ctx, domain.ErrNotOurPayment)
		return
	}

	handleSuccess(ctx, gin.H{"payment_id": paymentID, "owned": true})
}
