package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"spendsmart/api/http/presenter"
	"spendsmart/pkg/auth"
	"spendsmart/pkg/finance"
	"spendsmart/pkg/security/jwt"
)

type UserHandler struct {
	accounts auth.AccountUseCase
	finance  finance.UseCase
}

func NewUserHandler(accounts auth.AccountUseCase, financeUC finance.UseCase) *UserHandler {
	return &UserHandler{accounts: accounts, finance: financeUC}
}

// Dashboard returns all personal finance data for the caller.
// @Summary Dashboard
// @Tags    user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /user/dashboard [get]
func (h *UserHandler) Dashboard(c *fiber.Ctx) error {
	ident, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Authorization token missing")
	}

	profile, err := h.accounts.Profile(c.Context(), ident.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "User not found")
		}
		log.Printf("dashboard: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Internal server error")
	}

	dash, err := h.finance.Dashboard(c.Context(), ident.UserID)
	if err != nil {
		log.Printf("dashboard: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Internal server error")
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"user":         profile,
		"goals":        dash.Goals,
		"transactions": dash.Transactions,
		"incomes":      dash.Incomes,
	})
}

// CreateGoal creates a budget goal for the caller.
// @Summary Create budget goal
// @Tags    user
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body goalInput true "goal payload"
// @Success 201 {object} finance.BudgetGoal
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /user/goals [post]
func (h *UserHandler) CreateGoal(c *fiber.Ctx) error {
	ident, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Authorization token missing")
	}

	var req goalInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid goal data")
	}
	goal := req.toEntity()
	goal.UserID = ident.UserID

	created, err := h.finance.AddGoal(c.Context(), goal)
	if err != nil {
		var verr finance.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, "Invalid goal data")
		}
		log.Printf("create goal: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Internal server error")
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// CreateTransaction creates an income or expense entry for the caller.
// @Summary Create transaction
// @Tags    user
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body transactionInput true "transaction payload"
// @Success 201 {object} finance.Transaction
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /user/transactions [post]
func (h *UserHandler) CreateTransaction(c *fiber.Ctx) error {
	ident, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Authorization token missing")
	}

	var req transactionInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid transaction data")
	}
	tx := req.toEntity()
	tx.UserID = ident.UserID

	created, err := h.finance.AddTransaction(c.Context(), tx)
	if err != nil {
		var verr finance.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, "Invalid transaction data")
		}
		log.Printf("create transaction: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Internal server error")
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// CreateIncome creates an income record for the caller.
// @Summary Create income
// @Tags    user
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body incomeInput true "income payload"
// @Success 201 {object} finance.Income
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /user/incomes [post]
func (h *UserHandler) CreateIncome(c *fiber.Ctx) error {
	ident, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Authorization token missing")
	}

	var req incomeInput
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Invalid income data")
	}
	income := req.toEntity()
	income.UserID = ident.UserID

	created, err := h.finance.AddIncome(c.Context(), income)
	if err != nil {
		var verr finance.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, "Invalid income data")
		}
		log.Printf("create income: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Internal server error")
	}
	return presenter.JSON(c, http.StatusCreated, created)
}
