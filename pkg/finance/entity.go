package finance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// BudgetGoal is a spending target for a category, owned by one user.
type BudgetGoal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user" json:"user"`
	Category     string             `bson:"category" json:"category"`
	GoalAmount   float64            `bson:"goal_amount" json:"goalAmount"`
	CurrentSpent float64            `bson:"current_spent" json:"currentSpent"`
	Deadline     time.Time          `bson:"deadline" json:"deadline"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Income is a single earning record.
type Income struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	Amount    float64            `bson:"amount" json:"amount"`
	Source    string             `bson:"source" json:"source"`
	Date      time.Time          `bson:"date" json:"date"`
	Notes     string             `bson:"notes" json:"notes"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Transaction is a dated income or expense entry.
type Transaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user" json:"user"`
	Amount    float64            `bson:"amount" json:"amount"`
	Category  string             `bson:"category" json:"category"`
	Type      TransactionType    `bson:"type" json:"type"`
	Date      time.Time          `bson:"date" json:"date"`
	Notes     string             `bson:"notes" json:"notes"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}
