package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"spendsmart/pkg/finance"
)

type GoalRepository struct {
	mu    sync.Mutex
	goals []finance.BudgetGoal
}

func NewGoalRepository() *GoalRepository { return &GoalRepository{} }

func (r *GoalRepository) Create(ctx context.Context, g *finance.BudgetGoal) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *g
	stored.ID = primitive.NewObjectID()
	r.goals = append(r.goals, stored)
	return stored.ID, nil
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]finance.BudgetGoal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []finance.BudgetGoal{}
	for _, g := range r.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

type IncomeRepository struct {
	mu      sync.Mutex
	incomes []finance.Income
}

func NewIncomeRepository() *IncomeRepository { return &IncomeRepository{} }

func (r *IncomeRepository) Create(ctx context.Context, in *finance.Income) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *in
	stored.ID = primitive.NewObjectID()
	r.incomes = append(r.incomes, stored)
	return stored.ID, nil
}

func (r *IncomeRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]finance.Income, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []finance.Income{}
	for _, in := range r.incomes {
		if in.UserID == userID {
			out = append(out, in)
		}
	}
	return out, nil
}

type TransactionRepository struct {
	mu           sync.Mutex
	transactions []finance.Transaction
}

func NewTransactionRepository() *TransactionRepository { return &TransactionRepository{} }

func (r *TransactionRepository) Create(ctx context.Context, t *finance.Transaction) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *t
	stored.ID = primitive.NewObjectID()
	r.transactions = append(r.transactions, stored)
	return stored.ID, nil
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]finance.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []finance.Transaction{}
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}
