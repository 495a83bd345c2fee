package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"spendsmart/api/http/presenter"
	"spendsmart/pkg/auth"
	"spendsmart/pkg/finance"
	"spendsmart/pkg/security/jwt"
)

type AuthHandler struct {
	accounts auth.AccountUseCase
}

func NewAuthHandler(accounts auth.AccountUseCase) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type goalInput struct {
	Category     string     `json:"category"`
	GoalAmount   float64    `json:"goalAmount"`
	CurrentSpent float64    `json:"currentSpent"`
	Deadline     *time.Time `json:"deadline"`
}

type incomeInput struct {
	Amount float64    `json:"amount"`
	Source string     `json:"source"`
	Date   *time.Time `json:"date"`
	Notes  string     `json:"notes"`
}

type transactionInput struct {
	Amount   float64    `json:"amount"`
	Category string     `json:"category"`
	Type     string     `json:"type"`
	Date     *time.Time `json:"date"`
	Notes    string     `json:"notes"`
}

type signupRequest struct {
	Username     string             `json:"username"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	Password     string             `json:"password"`
	Income       *incomeInput       `json:"income"`
	BudgetGoals  []goalInput        `json:"budgetGoals"`
	Transactions []transactionInput `json:"transactions"`
}

func (r signupRequest) toInput() auth.SignupInput {
	in := auth.SignupInput{
		Username: r.Username,
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
	if r.Income != nil {
		inc := r.Income.toEntity()
		in.Income = &inc
	}
	for _, g := range r.BudgetGoals {
		in.BudgetGoals = append(in.BudgetGoals, g.toEntity())
	}
	for _, t := range r.Transactions {
		in.Transactions = append(in.Transactions, t.toEntity())
	}
	return in
}

func (g goalInput) toEntity() finance.BudgetGoal {
	out := finance.BudgetGoal{
		Category:     g.Category,
		GoalAmount:   g.GoalAmount,
		CurrentSpent: g.CurrentSpent,
	}
	if g.Deadline != nil {
		out.Deadline = *g.Deadline
	}
	return out
}

func (i incomeInput) toEntity() finance.Income {
	out := finance.Income{
		Amount: i.Amount,
		Source: i.Source,
		Notes:  i.Notes,
	}
	if i.Date != nil {
		out.Date = *i.Date
	}
	return out
}

func (t transactionInput) toEntity() finance.Transaction {
	out := finance.Transaction{
		Amount:   t.Amount,
		Category: t.Category,
		Type:     finance.TransactionType(t.Type),
		Notes:    t.Notes,
	}
	if t.Date != nil {
		out.Date = *t.Date
	}
	return out
}

// Signup handles account creation with optional seed records.
// @Summary Sign up
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body signupRequest true "signup payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.accounts.Signup(c.Context(), req.toInput())
	if err != nil {
		var missing *auth.MissingFieldsError
		switch {
		case errors.As(err, &missing):
			return presenter.JSON(c, http.StatusBadRequest, fiber.Map{
				"message": "Missing required fields",
				"missing": missing.Fields,
			})
		case errors.Is(err, auth.ErrWeakPassword):
			return presenter.Error(c, http.StatusBadRequest, "Password must be at least 6 characters")
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusConflict, err.Error())
		default:
			log.Printf("signup: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"message": "User created successfully",
		"userId":  result.UserID.Hex(),
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates a user and issues a bearer token.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.Username == "" || req.Password == "" {
		return presenter.Error(c, http.StatusBadRequest, "Username and password are required")
	}

	result, err := h.accounts.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, jwt.ErrNoSecret):
			return presenter.Error(c, http.StatusInternalServerError, "JWT secret not configured")
		default:
			log.Printf("login: %v", err)
			return presenter.Error(c, http.StatusInternalServerError, "Internal server error")
		}
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

// Me returns the authenticated user's profile with linked records.
// @Summary Current user
// @Tags    auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Overview
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ident, ok := jwt.IdentityFrom(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Authorization token missing")
	}

	me, err := h.accounts.Me(c.Context(), ident.UserID)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "User not found")
		}
		log.Printf("me: %v", err)
		return presenter.Error(c, http.StatusInternalServerError, "Internal server error")
	}
	return presenter.JSON(c, http.StatusOK, me)
}

// Logout clears the session cookie when present. Tokens are not revoked
// server-side; clients discard them.
// @Summary Logout
// @Tags    auth
// @Produce json
// @Success 200 {object} presenter.MessageResponse
// @Router  /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie("token")
	return presenter.Message(c, http.StatusOK, "Logged out")
}
