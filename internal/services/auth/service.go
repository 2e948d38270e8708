package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	apperrors "bankagent/internal/errors"
	"bankagent/internal/models"
	"bankagent/internal/repositories"
	"bankagent/internal/utils"
	"bankagent/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 15 * time.Minute

type Service interface {
	Login(ctx context.Context, email, password string) (*models.Operator, string, error)
	// Authenticate validates an access token and checks it has not been revoked.
	Authenticate(ctx context.Context, token string) (*models.OperatorClaims, error)
	Logout(ctx context.Context, operatorID uint) error
	CreateOperator(ctx context.Context, email, password, role string) (*models.Operator, error)
}

// Config holds token settings.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

type service struct {
	operators repositories.OperatorRepository
	cfg       Config
	log       *zap.Logger
}

func NewService(operators repositories.OperatorRepository, cfg Config, log *zap.Logger) Service {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &service{operators: operators, cfg: cfg, log: log}
}

func (s *service) Login(ctx context.Context, email, password string) (*models.Operator, string, error) {
	op, err := s.operators.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repositories.ErrOperatorNotFound) {
			s.log.Info("login failed: unknown operator", zap.String("email", email))
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(op.Password), []byte(password)); err != nil {
		s.log.Info("login failed: incorrect password", zap.Uint("operator_id", op.ID))
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(&models.OperatorClaims{
		OperatorID:   op.ID,
		Email:        op.Email,
		Role:         op.Role,
		Permissions:  models.GetDefaultPermissions(op.Role),
		TokenVersion: op.TokenVersion,
	}, s.cfg.Secret, s.cfg.TokenTTL)
	if err != nil {
		s.log.Error("error generating token", zap.Error(err))
		return nil, "", errors.New("error generating token")
	}

	if err := s.operators.TouchLastLogin(ctx, op.ID, time.Now()); err != nil {
		s.log.Warn("failed to record last login", zap.Uint("operator_id", op.ID), zap.Error(err))
	}
	return op, token, nil
}

func (s *service) Authenticate(ctx context.Context, token string) (*models.OperatorClaims, error) {
	claims, err := utils.ParseToken(token, s.cfg.Secret)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	op, err := s.operators.GetByID(ctx, claims.OperatorID)
	if err != nil {
		if errors.Is(err, repositories.ErrOperatorNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if op.TokenVersion != claims.TokenVersion {
		return nil, apperrors.ErrSessionExpired
	}
	return claims, nil
}

func (s *service) Logout(ctx context.Context, operatorID uint) error {
	return s.operators.IncrementTokenVersion(ctx, operatorID)
}

func (s *service) CreateOperator(ctx context.Context, email, password, role string) (*models.Operator, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	v := validation.New()
	v.Email("email", email)
	v.Password("password", password)
	v.Check(role == models.RoleAdmin || role == models.RoleOperator, "role", "must be admin or operator")
	if !v.Valid() {
		return nil, (&apperrors.DomainError{Code: "INVALID_OPERATOR", Message: "invalid operator"}).WithFields(v.Errors)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	op := &models.Operator{
		Email:        email,
		Password:     string(hashed),
		Role:         role,
		TokenVersion: 1,
	}
	if err := s.operators.Create(ctx, op); err != nil {
		return nil, err
	}
	return op, nil
}
