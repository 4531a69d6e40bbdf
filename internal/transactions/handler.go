package transactions

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the transactions CRUD and summary endpoints.
type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// List handles GET /api/transactions/:userId.
func (h *Handler) List(c *fiber.Ctx) error {
	userID := c.Params("userId")

	items, err := h.Store.ListByUser(c.UserContext(), userID)
	if err != nil {
		slog.Error("failed to list transactions", "user_id", userID, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error.")
	}
	return c.JSON(items)
}

// Create handles POST /api/transactions.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "All fields are required.")
	}

	// A zero amount is rejected along with missing fields, matching the
	// behavior existing clients depend on.
	if req.Title == "" || req.Category == "" || req.UserID == "" || req.Amount.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "All fields are required.")
	}

	t := Transaction{
		UserID:   req.UserID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
	}
	if err := h.Store.Create(c.UserContext(), &t); err != nil {
		slog.Error("failed to create transaction", "user_id", req.UserID, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error.")
	}

	return c.Status(fiber.StatusCreated).JSON(t)
}

// Delete handles DELETE /api/transactions/:id.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid transaction id.")
	}

	deleted, err := h.Store.DeleteByID(c.UserContext(), id)
	if err != nil {
		slog.Error("failed to delete transaction", "id", id, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error.")
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "Transaction not found.")
	}

	return c.JSON(fiber.Map{"message": "Transaction deleted successfully."})
}

// Summary handles GET /api/transactions/summary/:userId.
func (h *Handler) Summary(c *fiber.Ctx) error {
	userID := c.Params("userId")

	s, err := h.Store.SummaryByUser(c.UserContext(), userID)
	if err != nil {
		slog.Error("failed to compute summary", "user_id", userID, "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Internal server error.")
	}
	return c.JSON(s)
}
