package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"spendsmart/pkg/auth"
)

var (
	// ErrInvalidToken covers malformed, tampered and expired tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNoSecret is returned when the generator was built without a
	// signing secret; tokens are never signed with an empty key.
	ErrNoSecret = errors.New("signing secret not configured")
)

type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Claims carries the registered set plus the account's username.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Identity is the resolved caller attached to an authorized request.
type Identity struct {
	UserID   primitive.ObjectID
	Username string
}

func (g *Generator) Generate(ctx context.Context, user *auth.User) (string, error) {
	if len(g.secret) == 0 {
		return "", ErrNoSecret
	}
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
		Username: user.Username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

// Parse validates tokenStr (HS256 only) and returns the embedded identity.
// Every failure mode collapses to ErrInvalidToken.
func (g *Generator) Parse(tokenStr string) (Identity, error) {
	if len(g.secret) == 0 {
		return Identity{}, ErrNoSecret
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if g.issuer != "" && claims.Issuer != g.issuer {
		return Identity{}, ErrInvalidToken
	}
	id, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: id, Username: claims.Username}, nil
}
