package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pos-backend/internal/model"
	"pos-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginRequest authenticates a back-office or POS terminal user.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenPair is the issued access/refresh token set.
type TokenPair struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	User         *model.SysUser `json:"user"`
}

// CreateUserRequest registers a login account.
type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role" binding:"required"`
	StoreCode   string `json:"store_code"`
}

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	CreateUser(ctx context.Context, req CreateUserRequest) (*model.SysUser, error)
	GetUser(ctx context.Context, id uint) (*model.SysUser, error)
	ListUsers(ctx context.Context, storeCode string) ([]model.SysUser, error)
	CleanupExpiredTokens(ctx context.Context) error
}

type authService struct {
	userRepo repository.SysUserRepository
	secret   []byte
}

func NewAuthService(userRepo repository.SysUserRepository, secret []byte) AuthService {
	return &authService{userRepo: userRepo, secret: secret}
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenPair, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account %s is disabled", user.Username)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates the refresh token: the presented token is consumed
// and a new pair is issued.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	stored, err := s.userRepo.FindRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh token not recognized")
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(ctx, refreshToken)
		return nil, fmt.Errorf("refresh token expired")
	}

	user, err := s.userRepo.FindByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account %s is disabled", user.Username)
	}

	if err := s.userRepo.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}
	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.userRepo.DeleteRefreshToken(ctx, refreshToken)
}

func (s *authService) CreateUser(ctx context.Context, req CreateUserRequest) (*model.SysUser, error) {
	validRole := false
	for _, role := range model.AllowedEmployeeRoles {
		if req.Role == role {
			validRole = true
			break
		}
	}
	if !validRole {
		return nil, fmt.Errorf("invalid role %q", req.Role)
	}

	if existing, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil && existing != nil {
		return nil, fmt.Errorf("username %s already in use", req.Username)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.SysUser{
		Username:    req.Username,
		Password:    string(hash),
		DisplayName: req.DisplayName,
		Role:        req.Role,
		IsActive:    true,
		StoreCode:   req.StoreCode,
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *authService) GetUser(ctx context.Context, id uint) (*model.SysUser, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *authService) ListUsers(ctx context.Context, storeCode string) ([]model.SysUser, error) {
	return s.userRepo.List(ctx, storeCode)
}

func (s *authService) CleanupExpiredTokens(ctx context.Context) error {
	return s.userRepo.DeleteExpiredRefreshTokens(ctx)
}

func (s *authService) issueTokens(ctx context.Context, user *model.SysUser) (*TokenPair, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        user.ID,
		"username":   user.Username,
		"role":       user.Role,
		"store_code": user.StoreCode,
		"iat":        now.Unix(),
		"exp":        now.Add(accessTokenTTL).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken := uuid.NewString()
	if err := s.userRepo.CreateRefreshToken(ctx, &model.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: now.Add(refreshTokenTTL),
	}); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
