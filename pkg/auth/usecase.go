package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"spendsmart/pkg/finance"
	"spendsmart/pkg/security/password"
)

// MinPasswordLen is the shortest password accepted at signup.
const MinPasswordLen = 6

// AccountUseCase describes signup, login and profile behavior.
type AccountUseCase interface {
	Signup(ctx context.Context, in SignupInput) (SignupResult, error)
	Login(ctx context.Context, username, plain string) (AuthResult, error)
	Me(ctx context.Context, id primitive.ObjectID) (Overview, error)
	Profile(ctx context.Context, id primitive.ObjectID) (Profile, error)
}

// SignupInput carries the new account fields plus optional seed records
// that are created alongside the user and linked back to it.
type SignupInput struct {
	Username string
	Name     string
	Email    string
	Password string

	Income       *finance.Income
	BudgetGoals  []finance.BudgetGoal
	Transactions []finance.Transaction
}

type SignupResult struct {
	UserID primitive.ObjectID
}

type AuthResult struct {
	Token string
	User  Profile
}

// Overview is a profile together with every linked finance record.
type Overview struct {
	User         Profile               `json:"user"`
	BudgetGoals  []finance.BudgetGoal  `json:"budgetGoals"`
	Incomes      []finance.Income      `json:"incomes"`
	Transactions []finance.Transaction `json:"transactions"`
}

type accountService struct {
	users        UserRepository
	goals        finance.GoalRepository
	incomes      finance.IncomeRepository
	transactions finance.TransactionRepository
	tokens       TokenGenerator
}

// NewAccountService returns the default implementation of AccountUseCase.
func NewAccountService(
	users UserRepository,
	goals finance.GoalRepository,
	incomes finance.IncomeRepository,
	transactions finance.TransactionRepository,
	tokens TokenGenerator,
) AccountUseCase {
	return &accountService{
		users:        users,
		goals:        goals,
		incomes:      incomes,
		transactions: transactions,
		tokens:       tokens,
	}
}

// Signup creates the user, then seeds any supplied goal/income/transaction
// records and back-links their ids onto the user document. Only the user
// creation is mandatory: seeding and back-linking are best-effort and a
// failure there leaves the already created user in place.
func (s *accountService) Signup(ctx context.Context, in SignupInput) (SignupResult, error) {
	in.Username = strings.ToLower(strings.TrimSpace(in.Username))
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	var missing []string
	if in.Username == "" {
		missing = append(missing, "username")
	}
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return SignupResult{}, &MissingFieldsError{Fields: missing}
	}
	if len(in.Password) < MinPasswordLen {
		return SignupResult{}, ErrWeakPassword
	}

	// Field-specific pre-checks; the store's unique indexes backstop the
	// race between two concurrent signups. Only a not-found result means
	// the field is free, any other lookup failure aborts the signup.
	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return SignupResult{}, &DuplicateFieldError{Field: "email"}
	} else if !errors.Is(err, ErrNotFound) {
		return SignupResult{}, fmt.Errorf("check email: %w", err)
	}
	if _, err := s.users.GetByUsername(ctx, in.Username); err == nil {
		return SignupResult{}, &DuplicateFieldError{Field: "username"}
	} else if !errors.Is(err, ErrNotFound) {
		return SignupResult{}, fmt.Errorf("check username: %w", err)
	}

	digest, err := password.Hash(in.Password)
	if err != nil {
		return SignupResult{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &User{
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: digest,
		BudgetGoals:  []primitive.ObjectID{},
		Incomes:      []primitive.ObjectID{},
		Transactions: []primitive.ObjectID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.Income != nil {
		user.MonthlyIncome = in.Income.Amount
	}

	id, err := s.users.Create(ctx, user)
	if err != nil {
		return SignupResult{}, err
	}
	user.ID = id

	s.seed(ctx, user, in)

	return SignupResult{UserID: id}, nil
}

// seed inserts the optional records supplied at signup, tagged with the
// new user's id, then pushes the created ids onto the user document.
func (s *accountService) seed(ctx context.Context, user *User, in SignupInput) {
	now := time.Now().UTC()
	var goalIDs, incomeIDs, txIDs []primitive.ObjectID

	for _, g := range in.BudgetGoals {
		g.UserID = user.ID
		g.Category = strings.TrimSpace(g.Category)
		if g.Deadline.IsZero() {
			g.Deadline = now
		}
		g.CreatedAt = now
		g.UpdatedAt = now
		id, err := s.goals.Create(ctx, &g)
		if err != nil {
			log.Printf("signup: seed goal for user %s: %v", user.ID.Hex(), err)
			continue
		}
		goalIDs = append(goalIDs, id)
	}

	if in.Income != nil {
		inc := *in.Income
		inc.UserID = user.ID
		if strings.TrimSpace(inc.Source) == "" {
			inc.Source = "Income"
		}
		if inc.Date.IsZero() {
			inc.Date = now
		}
		inc.CreatedAt = now
		inc.UpdatedAt = now
		id, err := s.incomes.Create(ctx, &inc)
		if err != nil {
			log.Printf("signup: seed income for user %s: %v", user.ID.Hex(), err)
		} else {
			incomeIDs = append(incomeIDs, id)
		}
	}

	for _, t := range in.Transactions {
		t.UserID = user.ID
		if strings.TrimSpace(t.Category) == "" {
			t.Category = "Other"
		}
		if t.Type != finance.TypeIncome {
			t.Type = finance.TypeExpense
		}
		if t.Date.IsZero() {
			t.Date = now
		}
		t.CreatedAt = now
		t.UpdatedAt = now
		id, err := s.transactions.Create(ctx, &t)
		if err != nil {
			log.Printf("signup: seed transaction for user %s: %v", user.ID.Hex(), err)
			continue
		}
		txIDs = append(txIDs, id)
	}

	if len(goalIDs) == 0 && len(incomeIDs) == 0 && len(txIDs) == 0 {
		return
	}
	if err := s.users.PushLinks(ctx, user.ID, goalIDs, incomeIDs, txIDs); err != nil {
		// The user and the seed records already exist; nothing is rolled back.
		log.Printf("signup: back-link records for user %s: %v", user.ID.Hex(), err)
	}
}

// Login resolves the account and verifies the password. A missing user
// and a wrong password produce the same error so callers cannot tell
// which one failed.
func (s *accountService) Login(ctx context.Context, username, plain string) (AuthResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !password.Verify(plain, user.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{Token: token, User: user.Profile()}, nil
}

// Me returns the profile together with the user's finance records.
func (s *accountService) Me(ctx context.Context, id primitive.ObjectID) (Overview, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return Overview{}, err
	}
	goals, err := s.goals.ListByUser(ctx, id)
	if err != nil {
		return Overview{}, fmt.Errorf("list goals: %w", err)
	}
	incomes, err := s.incomes.ListByUser(ctx, id)
	if err != nil {
		return Overview{}, fmt.Errorf("list incomes: %w", err)
	}
	transactions, err := s.transactions.ListByUser(ctx, id)
	if err != nil {
		return Overview{}, fmt.Errorf("list transactions: %w", err)
	}
	return Overview{
		User:         user.Profile(),
		BudgetGoals:  goals,
		Incomes:      incomes,
		Transactions: transactions,
	}, nil
}

func (s *accountService) Profile(ctx context.Context, id primitive.ObjectID) (Profile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return user.Profile(), nil
}
