package finance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UseCase covers creating finance records and reading them back per user.
type UseCase interface {
	AddGoal(ctx context.Context, g BudgetGoal) (BudgetGoal, error)
	AddIncome(ctx context.Context, in Income) (Income, error)
	AddTransaction(ctx context.Context, t Transaction) (Transaction, error)
	Dashboard(ctx context.Context, userID primitive.ObjectID) (Dashboard, error)
}

// Dashboard aggregates every finance record belonging to one user.
type Dashboard struct {
	Goals        []BudgetGoal  `json:"goals"`
	Incomes      []Income      `json:"incomes"`
	Transactions []Transaction `json:"transactions"`
}

// ErrValidation is a simple payload validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

type service struct {
	goals        GoalRepository
	incomes      IncomeRepository
	transactions TransactionRepository
}

func NewService(goals GoalRepository, incomes IncomeRepository, transactions TransactionRepository) UseCase {
	return &service{goals: goals, incomes: incomes, transactions: transactions}
}

func (s *service) AddGoal(ctx context.Context, g BudgetGoal) (BudgetGoal, error) {
	g.Category = strings.TrimSpace(g.Category)
	if g.Category == "" {
		return BudgetGoal{}, ErrValidation("category is required")
	}
	if g.GoalAmount <= 0 {
		return BudgetGoal{}, ErrValidation("goalAmount must be positive")
	}
	now := time.Now().UTC()
	if g.Deadline.IsZero() {
		g.Deadline = now
	}
	g.CreatedAt = now
	g.UpdatedAt = now
	id, err := s.goals.Create(ctx, &g)
	if err != nil {
		return BudgetGoal{}, fmt.Errorf("create goal: %w", err)
	}
	g.ID = id
	return g, nil
}

func (s *service) AddIncome(ctx context.Context, in Income) (Income, error) {
	in.Source = strings.TrimSpace(in.Source)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.Source == "" {
		return Income{}, ErrValidation("source is required")
	}
	if in.Amount == 0 {
		return Income{}, ErrValidation("amount is required")
	}
	now := time.Now().UTC()
	if in.Date.IsZero() {
		in.Date = now
	}
	in.CreatedAt = now
	in.UpdatedAt = now
	id, err := s.incomes.Create(ctx, &in)
	if err != nil {
		return Income{}, fmt.Errorf("create income: %w", err)
	}
	in.ID = id
	return in, nil
}

func (s *service) AddTransaction(ctx context.Context, t Transaction) (Transaction, error) {
	t.Category = strings.TrimSpace(t.Category)
	t.Notes = strings.TrimSpace(t.Notes)
	if t.Category == "" {
		return Transaction{}, ErrValidation("category is required")
	}
	if t.Amount == 0 {
		return Transaction{}, ErrValidation("amount is required")
	}
	switch t.Type {
	case TypeIncome, TypeExpense:
	case "":
		t.Type = TypeExpense
	default:
		return Transaction{}, ErrValidation("type must be income or expense")
	}
	now := time.Now().UTC()
	if t.Date.IsZero() {
		t.Date = now
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	id, err := s.transactions.Create(ctx, &t)
	if err != nil {
		return Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	t.ID = id
	return t, nil
}

func (s *service) Dashboard(ctx context.Context, userID primitive.ObjectID) (Dashboard, error) {
	goals, err := s.goals.ListByUser(ctx, userID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list goals: %w", err)
	}
	incomes, err := s.incomes.ListByUser(ctx, userID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list incomes: %w", err)
	}
	transactions, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("list transactions: %w", err)
	}
	return Dashboard{Goals: goals, Incomes: incomes, Transactions: transactions}, nil
}
