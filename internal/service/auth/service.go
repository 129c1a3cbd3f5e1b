package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"nazzy-pedidos/internal/domain"
	"nazzy-pedidos/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrPhoneTaken         = errors.New("phone already registered")
	ErrMissingFields      = errors.New("nickname, phone and password are required")
)

// Service resolves the current identity and owns the login lifecycle.
// Credential checks are plain comparisons: the stored records interoperate
// with an admin panel that reads them verbatim.
type Service interface {
	CurrentSession(ctx context.Context) *domain.Session
	CurrentUser(ctx context.Context) *domain.User
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.User, error)
	Logout(ctx context.Context) error
	SetAvatar(ctx context.Context, url string) (*domain.User, error)
}

type service struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

func NewService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) Service {
	return &service{userRepo: userRepo, sessionRepo: sessionRepo}
}

func (s *service) CurrentSession(ctx context.Context) *domain.Session {
	return s.sessionRepo.Get(ctx)
}

// CurrentUser resolves the session to a full user record. A session whose
// phone no longer matches any user degrades to nil, same as anonymous.
func (s *service) CurrentUser(ctx context.Context) *domain.User {
	sess := s.sessionRepo.Get(ctx)
	if sess == nil {
		return nil
	}
	return s.userRepo.GetByPhone(ctx, sess.Phone)
}

func (s *service) Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	nickname := strings.TrimSpace(input.Nickname)
	phone := strings.TrimSpace(input.Phone)
	if nickname == "" || phone == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	if s.userRepo.ExistsByPhone(ctx, phone) {
		return nil, ErrPhoneTaken
	}

	user := &domain.User{
		ID:       uuid.New().String(),
		Nickname: nickname,
		Phone:    phone,
		Password: input.Password,
		Created:  time.Now().UnixMilli(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// The prototype logs a fresh account straight in.
	if err := s.sessionRepo.Set(ctx, &domain.Session{Phone: user.Phone, Nickname: user.Nickname}); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *service) Login(ctx context.Context, input domain.LoginInput) (*domain.User, error) {
	phone := strings.TrimSpace(input.Phone)
	user := s.userRepo.GetByPhone(ctx, phone)
	if user == nil || user.Password != input.Password {
		return nil, ErrInvalidCredentials
	}

	if err := s.sessionRepo.Set(ctx, &domain.Session{Phone: user.Phone, Nickname: user.Nickname}); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout clears the session key, symmetric to login setting it. Other tabs
// see the change through the store broadcast like any other write.
func (s *service) Logout(ctx context.Context) error {
	return s.sessionRepo.Clear(ctx)
}

// SetAvatar stores an avatar image reference on the current user.
func (s *service) SetAvatar(ctx context.Context, url string) (*domain.User, error) {
	user := s.CurrentUser(ctx)
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	user.Avatar = &url
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
