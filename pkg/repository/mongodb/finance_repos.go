package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"spendsmart/pkg/finance"
)

// GoalRepository implements finance.GoalRepository backed by MongoDB.
type GoalRepository struct {
	coll *mongo.Collection
}

func NewGoalRepository(client *mongo.Client, database string) *GoalRepository {
	return &GoalRepository{coll: client.Database(database).Collection("budget_goals")}
}

func (r *GoalRepository) Create(ctx context.Context, g *finance.BudgetGoal) (primitive.ObjectID, error) {
	return insertOne(ctx, r.coll, g, "goal")
}

func (r *GoalRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]finance.BudgetGoal, error) {
	out := []finance.BudgetGoal{}
	if err := findByUser(ctx, r.coll, userID, &out); err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return out, nil
}

// IncomeRepository implements finance.IncomeRepository backed by MongoDB.
type IncomeRepository struct {
	coll *mongo.Collection
}

func NewIncomeRepository(client *mongo.Client, database string) *IncomeRepository {
	return &IncomeRepository{coll: client.Database(database).Collection("incomes")}
}

func (r *IncomeRepository) Create(ctx context.Context, in *finance.Income) (primitive.ObjectID, error) {
	return insertOne(ctx, r.coll, in, "income")
}

func (r *IncomeRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]finance.Income, error) {
	out := []finance.Income{}
	if err := findByUser(ctx, r.coll, userID, &out); err != nil {
		return nil, fmt.Errorf("list incomes: %w", err)
	}
	return out, nil
}

// TransactionRepository implements finance.TransactionRepository backed by MongoDB.
type TransactionRepository struct {
	coll *mongo.Collection
}

func NewTransactionRepository(client *mongo.Client, database string) *TransactionRepository {
	return &TransactionRepository{coll: client.Database(database).Collection("transactions")}
}

func (r *TransactionRepository) Create(ctx context.Context, t *finance.Transaction) (primitive.ObjectID, error) {
	return insertOne(ctx, r.coll, t, "transaction")
}

func (r *TransactionRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]finance.Transaction, error) {
	out := []finance.Transaction{}
	if err := findByUser(ctx, r.coll, userID, &out); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return out, nil
}

func insertOne(ctx context.Context, coll *mongo.Collection, doc any, kind string) (primitive.ObjectID, error) {
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert %s: %w", kind, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func findByUser(ctx context.Context, coll *mongo.Collection, userID primitive.ObjectID, out any) error {
	cursor, err := coll.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}
