package finance

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository ports for the finance collections. Implementations may be
// in-memory or backed by a document database; every read is scoped to a
// single owning user.

type GoalRepository interface {
	Create(ctx context.Context, g *BudgetGoal) (primitive.ObjectID, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]BudgetGoal, error)
}

type IncomeRepository interface {
	Create(ctx context.Context, in *Income) (primitive.ObjectID, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]Income, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, t *Transaction) (primitive.ObjectID, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]Transaction, error)
}
