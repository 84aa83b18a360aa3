package services

import (
	"errors"
	"strings"
	"time"

	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/dto"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/entity"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/pkg/apperr"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/repository"
	"github.com/molinalorentejuan/TAILOR-HUB-RESTAURANTS-API/utils"
)

type AuthResult struct {
	Token     string   `json:"token"`
	User      AuthUser `json:"user"`
	ExpiresIn int64    `json:"expires_in"`
}

type AuthUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(userRepo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: secret, jwtTTL: ttl}
}

// Register creates the account and immediately issues a session. The
// unique email index backs up the pre-check, so a concurrent duplicate
// registration still comes back as EMAIL_IN_USE.
func (s *AuthService) Register(req dto.RegisterRequest) (*AuthResult, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.ErrEmailInUse
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		// blank display name falls back to the email local part
		name = strings.SplitN(req.Email, "@", 2)[0]
	}

	user := &entity.User{
		Name:     name,
		Email:    req.Email,
		Password: hash,
		Role:     entity.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.ErrEmailInUse
		}
		return nil, err
	}

	return s.issueSession(user)
}

func (s *AuthService) Login(req dto.LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPassword(req.Password, user.Password) {
		return nil, apperr.ErrInvalidCredentials
	}
	return s.issueSession(user)
}

func (s *AuthService) issueSession(user *entity.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:     token,
		User:      AuthUser{ID: user.ID, Email: user.Email, Role: user.Role},
		ExpiresIn: int64(s.jwtTTL.Seconds()),
	}, nil
}
