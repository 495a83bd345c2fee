package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	apihttp "spendsmart/api/http"
	"spendsmart/api/http/handlers"
	"spendsmart/pkg/auth"
	"spendsmart/pkg/finance"
	"spendsmart/pkg/health"
	"spendsmart/pkg/repository/memory"
	"spendsmart/pkg/security/jwt"
)

type testEnv struct {
	app   *fiber.App
	users *memory.UserRepository
}

type okChecker struct{}

func (okChecker) Name() string                    { return "store" }
func (okChecker) Check(ctx context.Context) error { return nil }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := memory.NewUserRepository()
	goals := memory.NewGoalRepository()
	incomes := memory.NewIncomeRepository()
	transactions := memory.NewTransactionRepository()

	gen := jwt.NewGenerator("test-secret", "spendsmart", time.Hour)
	accountUC := auth.NewAccountService(users, goals, incomes, transactions, gen)
	financeUC := finance.NewService(goals, incomes, transactions)
	readiness := health.NewService(okChecker{})

	app := fiber.New()
	apihttp.Register(app,
		handlers.NewAuthHandler(accountUC),
		handlers.NewUserHandler(accountUC, financeUC),
		handlers.NewHealthHandler(readiness),
		jwt.NewAuthMiddleware(gen),
	)
	return &testEnv{app: app, users: users}
}

func (e *testEnv) do(t *testing.T, method, path, token string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func (e *testEnv) signup(t *testing.T, payload any) (*http.Response, []byte) {
	return e.do(t, http.MethodPost, "/auth/signup", "", payload)
}

func (e *testEnv) login(t *testing.T, username, password string) (*http.Response, []byte) {
	return e.do(t, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
}
