package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rdelacruz/payroll-management/internal"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// User is the authenticated principal attached to request contexts.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// Can reports whether the user's role is allowed to perform op according to
// the policy table.
func (u *User) Can(op Operation) bool {
	return RoleAllowed(u.Role, op)
}

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (AuthTokens, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	Authorize(tokenString string, op Operation) (*Claims, error)
	GetUserByID(userID int64) (*User, error)
	HashPassword(password string) (string, error)
}

type RepositoryAPI interface {
	GetCredentialsByUsername(username string) (passwordHash string, userID int64, role string, err error)
	GetUserByID(userID int64) (*User, error)
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(userID int64, role string) (string, error)
	GenerateRefreshToken(userID int64, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Role         string `json:"role"`
}

// Claims are the signed session contents: who, what role, until when.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

// UserFromContext returns the user placed in the context by AuthMiddleware.
func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(internal.ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, internal.ContextUserKey, u)
}
