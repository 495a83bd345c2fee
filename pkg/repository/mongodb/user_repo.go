package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"spendsmart/pkg/auth"
)

// UserRepository implements auth.UserRepository backed by MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

// NewUserRepository also ensures the unique indexes the signup race
// depends on.
func NewUserRepository(client *mongo.Client, database string) (*UserRepository, error) {
	repo := &UserRepository{coll: client.Database(database).Collection("users")}
	if err := repo.ensureIndexes(context.Background()); err != nil {
		return nil, fmt.Errorf("ensure user indexes: %w", err)
	}
	return repo, nil
}

func (r *UserRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, user *auth.User) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, auth.ErrUserAlreadyExists
		}
		return primitive.NilObjectID, fmt.Errorf("insert user: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	return r.getOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*auth.User, error) {
	return r.getOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) getOne(ctx context.Context, filter bson.M) (*auth.User, error) {
	var user auth.User
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) PushLinks(ctx context.Context, id primitive.ObjectID, goals, incomes, transactions []primitive.ObjectID) error {
	push := bson.M{}
	if len(goals) > 0 {
		push["budget_goals"] = bson.M{"$each": goals}
	}
	if len(incomes) > 0 {
		push["incomes"] = bson.M{"$each": incomes}
	}
	if len(transactions) > 0 {
		push["transactions"] = bson.M{"$each": transactions}
	}
	if len(push) == 0 {
		return nil
	}
	update := bson.M{
		"$push": push,
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	if _, err := r.coll.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("push links: %w", err)
	}
	return nil
}
