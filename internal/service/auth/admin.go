package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nazzy-pedidos/internal/config"
	"nazzy-pedidos/internal/repository"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrUnknownAdmin    = errors.New("unknown admin id")
	ErrInvalidToken    = errors.New("invalid or expired token")
)

type AdminClaims struct {
	AdminID string `json:"admin_id"`
	jwt.RegisteredClaims
}

// AdminService authenticates the administrative collaborator: the configured
// admin key is exchanged for a short-lived token naming a seeded admin id.
type AdminService interface {
	IssueToken(adminID, key string) (string, error)
	ValidateToken(token string) (*AdminClaims, error)
}

type adminService struct {
	adminRepo repository.AdminRepository
	cfg       *config.Config
}

func NewAdminService(adminRepo repository.AdminRepository, cfg *config.Config) AdminService {
	return &adminService{adminRepo: adminRepo, cfg: cfg}
}

func (s *adminService) IssueToken(adminID, key string) (string, error) {
	if s.cfg.AdminKey == "" || key != s.cfg.AdminKey {
		return "", ErrInvalidAdminKey
	}
	if s.adminRepo.GetByID(context.Background(), adminID) == nil {
		return "", ErrUnknownAdmin
	}

	claims := AdminClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.AdminTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *adminService) ValidateToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
