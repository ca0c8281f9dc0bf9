package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/ride-sharing-service/internal/api/dto"
	"github.com/spec-kit/ride-sharing-service/internal/domain"
	"github.com/spec-kit/ride-sharing-service/internal/service"
	apperrors "github.com/spec-kit/ride-sharing-service/pkg/util"
)

// TransactionsHandler exposes the admin payment record endpoints.
type TransactionsHandler struct {
	transactions *service.TransactionService
}

// NewTransactionsHandler constructs handler.
func NewTransactionsHandler(transactionService *service.TransactionService) *TransactionsHandler {
	return &TransactionsHandler{transactions: transactionService}
}

// List handles GET /transactions.
func (h *TransactionsHandler) List(c *fiber.Ctx) error {
	txs, err := h.transactions.List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		items = append(items, dto.NewTransactionResponse(&txs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create handles POST /transactions.
func (h *TransactionsHandler) Create(c *fiber.Ctx) error {
	var req dto.TransactionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	tx, err := h.transactions.Create(c.UserContext(), service.TransactionCreateInput{
		UserID:   req.UserID,
		DriverID: req.DriverID,
		RideID:   req.RideID,
		Amount:   req.Amount,
		Status:   domain.TransactionStatus(req.Status),
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTransactionResponse(tx)})
}

// Update handles PATCH /transactions/:id.
func (h *TransactionsHandler) Update(c *fiber.Ctx) error {
	var req dto.TransactionUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	var status *domain.TransactionStatus
	if req.Status != nil {
		s := domain.TransactionStatus(*req.Status)
		status = &s
	}
	tx, err := h.transactions.Update(c.UserContext(), c.Params("id"), service.TransactionUpdateInput{
		Amount: req.Amount,
		Status: status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTransactionResponse(tx)})
}
