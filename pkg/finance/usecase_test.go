package finance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"spendsmart/pkg/finance"
	"spendsmart/pkg/repository/memory"
)

func newService() (finance.UseCase, *memory.GoalRepository, *memory.IncomeRepository, *memory.TransactionRepository) {
	goals := memory.NewGoalRepository()
	incomes := memory.NewIncomeRepository()
	transactions := memory.NewTransactionRepository()
	return finance.NewService(goals, incomes, transactions), goals, incomes, transactions
}

func TestAddGoal(t *testing.T) {
	svc, _, _, _ := newService()
	userID := primitive.NewObjectID()

	t.Run("valid", func(t *testing.T) {
		created, err := svc.AddGoal(context.Background(), finance.BudgetGoal{
			UserID:     userID,
			Category:   "  Food ",
			GoalAmount: 300,
		})
		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
		assert.Equal(t, "Food", created.Category)
		assert.False(t, created.Deadline.IsZero(), "deadline defaults to now")
	})

	tests := []struct {
		name string
		goal finance.BudgetGoal
	}{
		{name: "empty category", goal: finance.BudgetGoal{UserID: userID, GoalAmount: 10}},
		{name: "blank category", goal: finance.BudgetGoal{UserID: userID, Category: "   ", GoalAmount: 10}},
		{name: "zero amount", goal: finance.BudgetGoal{UserID: userID, Category: "Food"}},
		{name: "negative amount", goal: finance.BudgetGoal{UserID: userID, Category: "Food", GoalAmount: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddGoal(context.Background(), tt.goal)
			var verr finance.ErrValidation
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestAddIncome(t *testing.T) {
	svc, _, _, _ := newService()
	userID := primitive.NewObjectID()

	created, err := svc.AddIncome(context.Background(), finance.Income{
		UserID: userID,
		Amount: 1200,
		Source: " Salary ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Salary", created.Source)
	assert.False(t, created.Date.IsZero())

	_, err = svc.AddIncome(context.Background(), finance.Income{UserID: userID, Amount: 100})
	var verr finance.ErrValidation
	assert.ErrorAs(t, err, &verr, "missing source is rejected")

	_, err = svc.AddIncome(context.Background(), finance.Income{UserID: userID, Source: "Salary"})
	assert.ErrorAs(t, err, &verr, "missing amount is rejected")
}

func TestAddTransaction(t *testing.T) {
	svc, _, _, _ := newService()
	userID := primitive.NewObjectID()

	t.Run("type defaults to expense", func(t *testing.T) {
		created, err := svc.AddTransaction(context.Background(), finance.Transaction{
			UserID:   userID,
			Amount:   20,
			Category: "Books",
		})
		require.NoError(t, err)
		assert.Equal(t, finance.TypeExpense, created.Type)
	})

	t.Run("income type kept", func(t *testing.T) {
		created, err := svc.AddTransaction(context.Background(), finance.Transaction{
			UserID:   userID,
			Amount:   500,
			Category: "Bonus",
			Type:     finance.TypeIncome,
		})
		require.NoError(t, err)
		assert.Equal(t, finance.TypeIncome, created.Type)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		_, err := svc.AddTransaction(context.Background(), finance.Transaction{
			UserID:   userID,
			Amount:   5,
			Category: "Misc",
			Type:     "transfer",
		})
		var verr finance.ErrValidation
		assert.ErrorAs(t, err, &verr)
	})
}

func TestDashboardFiltersByOwner(t *testing.T) {
	svc, _, _, _ := newService()
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()
	now := time.Now().UTC()

	_, err := svc.AddGoal(context.Background(), finance.BudgetGoal{UserID: alice, Category: "Food", GoalAmount: 300, Deadline: now})
	require.NoError(t, err)
	_, err = svc.AddGoal(context.Background(), finance.BudgetGoal{UserID: bob, Category: "Travel", GoalAmount: 900, Deadline: now})
	require.NoError(t, err)
	_, err = svc.AddIncome(context.Background(), finance.Income{UserID: alice, Amount: 1000, Source: "Salary"})
	require.NoError(t, err)
	_, err = svc.AddTransaction(context.Background(), finance.Transaction{UserID: bob, Amount: 40, Category: "Taxi"})
	require.NoError(t, err)

	dash, err := svc.Dashboard(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, dash.Goals, 1)
	assert.Equal(t, "Food", dash.Goals[0].Category)
	assert.Len(t, dash.Incomes, 1)
	assert.Empty(t, dash.Transactions)
}
