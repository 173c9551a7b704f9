package sessions

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-care-tracker/internal/domain/users"
	"pet-care-tracker/internal/platform/apperr"
	"pet-care-tracker/internal/platform/logger"
	"pet-care-tracker/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultTTL = 24 * time.Hour
	issuer     = "petcare"
)

// UserLookup es lo que el manager necesita del módulo users.
type UserLookup interface {
	Verify(ctx context.Context, email, password string) (users.User, error)
	GetByID(ctx context.Context, id int64) (users.User, error)
}

type Options struct {
	Secret string
	TTL    time.Duration
}

// tokenClaims: el jti es el id de sesión; el resto vive server-side.
type tokenClaims struct {
	jwt.RegisteredClaims
}

// Manager emite, resuelve y termina sesiones.
type Manager struct {
	repo   Repository
	users  UserLookup
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    logger.Logger
}

var _ auth.AuthVerifier = (*Manager)(nil)

func NewManager(repo Repository, users UserLookup, opts Options, log logger.Logger) (*Manager, error) {
	if strings.TrimSpace(opts.Secret) == "" {
		return nil, errors.New("sessions: secret required")
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Manager{
		repo:   repo,
		users:  users,
		secret: []byte(opts.Secret),
		ttl:    ttl,
		now:    time.Now,
		log:    log.With(map[string]any{"component": "sessions"}),
	}, nil
}

// Login verifica credenciales y abre una sesión nueva.
func (m *Manager) Login(ctx context.Context, email, password string) (Issued, error) {
	u, err := m.users.Verify(ctx, email, password)
	if err != nil {
		return Issued{}, err
	}
	return m.Start(ctx, u)
}

// Start abre una sesión para un usuario ya verificado (signup encadenado).
func (m *Manager) Start(ctx context.Context, u users.User) (Issued, error) {
	now := m.now()
	sid := uuid.NewString()
	expiresAt := now.Add(m.ttl)

	if err := m.repo.Create(ctx, Session{
		IDHash:    hashID(sid),
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}); err != nil {
		return Issued{}, fmt.Errorf("save session: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sid,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return Issued{}, fmt.Errorf("sign session token: %w", err)
	}

	m.log.Info("session started", map[string]any{"user_id": u.ID})
	return Issued{Token: signed, User: u, ExpiresAt: expiresAt}, nil
}

// CurrentUser resuelve el usuario de un token. "Sin usuario" no es error:
// token vacío, inválido, vencido, sesión cerrada o usuario borrado => ok=false.
// Solo las fallas de storage vuelven como error.
func (m *Manager) CurrentUser(ctx context.Context, token string) (users.User, bool, error) {
	sid, ok := m.parse(token)
	if !ok {
		return users.User{}, false, nil
	}

	s, err := m.repo.Get(ctx, hashID(sid))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return users.User{}, false, nil
		}
		return users.User{}, false, err
	}
	if s.Expired(m.now()) {
		return users.User{}, false, nil
	}

	u, err := m.users.GetByID(ctx, s.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return users.User{}, false, nil
		}
		return users.User{}, false, err
	}
	return u, true, nil
}

// Verify implementa auth.AuthVerifier para el middleware.
func (m *Manager) Verify(ctx context.Context, token string) (auth.Claims, error) {
	u, ok, err := m.CurrentUser(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}
	if !ok {
		return auth.Claims{}, apperr.ErrUnauthenticated
	}
	return auth.Claims{UserID: u.ID, Email: u.Email}, nil
}

// Logout cierra la sesión. Idempotente: token inválido o ya cerrado no es error.
func (m *Manager) Logout(ctx context.Context, token string) error {
	sid, ok := m.parseIgnoringExpiry(token)
	if !ok {
		return nil
	}
	if err := m.repo.Delete(ctx, hashID(sid)); err != nil {
		return err
	}
	m.log.Info("session closed", nil)
	return nil
}

// PurgeExpired borra sesiones vencidas.
func (m *Manager) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := m.repo.DeleteExpired(ctx, m.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		m.log.Info("expired sessions purged", map[string]any{"count": n})
	}
	return n, nil
}

func (m *Manager) parse(token string) (string, bool) {
	return m.parseWith(token, jwt.WithTimeFunc(m.now))
}

// Para logout alcanza con que la firma sea válida aunque el token haya vencido.
func (m *Manager) parseIgnoringExpiry(token string) (string, bool) {
	return m.parseWith(token, jwt.WithoutClaimsValidation())
}

func (m *Manager) parseWith(token string, opt jwt.ParserOption) (string, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		opt,
	)
	if err != nil || !parsed.Valid {
		return "", false
	}
	if strings.TrimSpace(claims.ID) == "" {
		return "", false
	}
	return claims.ID, true
}

func hashID(sid string) string {
	sum := sha256.Sum256([]byte(sid))
	return hex.EncodeToString(sum[:])
}
