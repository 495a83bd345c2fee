package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the persisted account record. Username and email are stored
// lowercase and trimmed; the credential store enforces their uniqueness.
type User struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Username      string               `bson:"username"`
	Name          string               `bson:"name"`
	Email         string               `bson:"email"`
	PasswordHash  string               `bson:"password"`
	MonthlyIncome float64              `bson:"monthly_income"`
	BudgetGoals   []primitive.ObjectID `bson:"budget_goals"`
	Incomes       []primitive.ObjectID `bson:"incomes"`
	Transactions  []primitive.ObjectID `bson:"transactions"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

// Profile is the public projection of a User. It never carries the
// password digest.
type Profile struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	MonthlyIncome float64 `json:"monthlyIncome"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:            u.ID.Hex(),
		Username:      u.Username,
		Name:          u.Name,
		Email:         u.Email,
		MonthlyIncome: u.MonthlyIncome,
	}
}
