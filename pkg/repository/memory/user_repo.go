// Package memory holds map-backed implementations of the repository
// ports. They mirror the store's behavior closely enough for tests:
// the user repository enforces the same username/email uniqueness the
// MongoDB indexes do.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"spendsmart/pkg/auth"
)

type UserRepository struct {
	mu      sync.Mutex
	byID    map[primitive.ObjectID]*auth.User
	byName  map[string]primitive.ObjectID
	byEmail map[string]primitive.ObjectID
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[primitive.ObjectID]*auth.User),
		byName:  make(map[string]primitive.ObjectID),
		byEmail: make(map[string]primitive.ObjectID),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *auth.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[user.Username]; ok {
		return primitive.NilObjectID, auth.ErrUserAlreadyExists
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return primitive.NilObjectID, auth.ErrUserAlreadyExists
	}
	stored := *user
	stored.ID = primitive.NewObjectID()
	r.byID[stored.ID] = &stored
	r.byName[stored.Username] = stored.ID
	r.byEmail[stored.Email] = stored.ID
	return stored.ID, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byName[username]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return r.copyOf(id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return r.copyOf(id)
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.copyOf(id)
}

func (r *UserRepository) PushLinks(ctx context.Context, id primitive.ObjectID, goals, incomes, transactions []primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return auth.ErrNotFound
	}
	user.BudgetGoals = append(user.BudgetGoals, goals...)
	user.Incomes = append(user.Incomes, incomes...)
	user.Transactions = append(user.Transactions, transactions...)
	return nil
}

// Delete removes a user; tests use it to simulate an account vanishing
// between token issuance and a later request.
func (r *UserRepository) Delete(id primitive.ObjectID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byID[id]
	if !ok {
		return
	}
	delete(r.byName, user.Username)
	delete(r.byEmail, user.Email)
	delete(r.byID, id)
}

func (r *UserRepository) copyOf(id primitive.ObjectID) (*auth.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	cp := *user
	return &cp, nil
}
