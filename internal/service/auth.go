package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nutridiary/backend/internal/model"
	"github.com/nutridiary/backend/internal/types"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserExists         = errors.New("user already exists")
)

// AuthService issues and validates the cosmetic sign-in identity. It gates
// only the profile display; the food and weight logs are not partitioned
// per user.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

// Register creates a user and returns a signed token.
func (s *AuthService) Register(name, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing model.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return "", ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}

	return s.GenerateToken(user.ID, user.Name)
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user model.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.GenerateToken(user.ID, user.Name)
}

// GetUser loads a user by id.
func (s *AuthService) GetUser(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GenerateToken signs a token for the user, valid for 24 hours.
func (s *AuthService) GenerateToken(userID uuid.UUID, name string) (string, error) {
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Name:   name,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
