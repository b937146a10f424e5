package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/applytrack/applytrack/internal/database"
	"github.com/applytrack/applytrack/internal/models"
)

// UserService backs the identity provider contract: accounts live in the
// users table, credentials are bcrypt hashes.
type UserService struct {
	DB *database.DB
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{DB: db}
}

func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	conn, err := s.DB.Handle()
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err = conn.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := conn.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	conn, err := s.DB.Handle()
	if err != nil {
		return nil, err
	}
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err = conn.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return &user, nil
}
