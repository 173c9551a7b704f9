package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-tracker/internal/platform/apperr"
	"pet-care-tracker/internal/platform/logger"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash se compara cuando el email no existe, para que el tiempo de
// respuesta no delate qué cuentas están registradas.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("petcare-dummy-password"), bcrypt.DefaultCost)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
	cost int
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "users"}),
		now:  time.Now,
		cost: bcrypt.DefaultCost,
	}
}

// NormalizeEmail deja el email en la forma con la que se guarda y se busca.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser registra un usuario con el password hasheado (bcrypt).
func (s *Service) CreateUser(ctx context.Context, email, password string) (User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return User{}, fmt.Errorf("%w: email is required", apperr.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return User{}, fmt.Errorf("%w: email is invalid", apperr.ErrValidation)
	}
	if password == "" {
		return User{}, fmt.Errorf("%w: password is required", apperr.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		// bcrypt solo falla con passwords > 72 bytes
		return User{}, fmt.Errorf("%w: password: %v", apperr.ErrValidation, err)
	}

	now := s.now()
	u, err := s.repo.Create(ctx, User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, apperr.ErrAlreadyExists) {
			return User{}, fmt.Errorf("%w: email already registered", apperr.ErrAlreadyExists)
		}
		return User{}, err
	}

	s.log.Info("user created", map[string]any{"user_id": u.ID})
	return u, nil
}

// Verify compara el password contra el hash guardado.
// Email desconocido y password incorrecto devuelven el mismo error.
func (s *Service) Verify(ctx context.Context, email, password string) (User, error) {
	email = NormalizeEmail(email)

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return User{}, err
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		s.log.Debug("login rejected", nil)
		return User{}, apperr.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.log.Debug("login rejected", nil)
		return User{}, apperr.ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}
