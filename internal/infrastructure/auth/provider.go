// Package auth implements the AuthProvider port with a local account store:
// bcrypt-hashed credentials in Postgres and HS256-signed session tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"

	"cropguru/internal/domain"
	"cropguru/internal/domain/entities"
	"cropguru/internal/ports/output"
)

var _ output.AuthProvider = (*LocalProvider)(nil)

// LocalProvider owns the session lifecycle. Session-change callbacks are
// invoked synchronously, one at a time, in registration order; they run
// outside the provider lock so a callback may query the provider again.
type LocalProvider struct {
	users  output.UserRepository
	secret []byte
	ttl    time.Duration

	mu        sync.Mutex
	session   *entities.AuthSession
	callbacks []func(*entities.AuthSession)
}

// NewLocalProvider creates a LocalProvider issuing tokens valid for ttl.
func NewLocalProvider(users output.UserRepository, secret string, ttl time.Duration) *LocalProvider {
	return &LocalProvider{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// CurrentSession returns the active session, or nil. An expired session is
// dropped and announced as a logout.
func (p *LocalProvider) CurrentSession(_ context.Context) (*entities.AuthSession, error) {
	p.mu.Lock()
	session := p.session
	p.mu.Unlock()

	if session != nil && time.Now().After(session.ExpiresAt) {
		p.setSession(nil)
		return nil, nil
	}
	return session, nil
}

func (p *LocalProvider) OnSessionChange(fn func(*entities.AuthSession)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callbacks = append(p.callbacks, fn)
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password, fullName string) (*entities.AuthSession, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		ID:           xid.New().String(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
	}
	if err := p.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return p.establishSession(user)
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*entities.AuthSession, error) {
	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return p.establishSession(user)
}

// SignOut ends the session. Signing out twice is harmless: observers get a
// duplicate nil notification, which they are required to absorb.
func (p *LocalProvider) SignOut(_ context.Context) error {
	p.setSession(nil)
	return nil
}

// Verify parses and validates a previously issued session token.
func (p *LocalProvider) Verify(tokenString string) (*entities.AuthSession, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.ExpiresAt == nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &entities.AuthSession{
		UserID:    claims.Subject,
		Token:     tokenString,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (p *LocalProvider) establishSession(user *entities.User) (*entities.AuthSession, error) {
	expires := time.Now().Add(p.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expires),
	})
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	session := &entities.AuthSession{
		UserID:    user.ID,
		Email:     user.Email,
		Token:     signed,
		ExpiresAt: expires,
	}
	p.setSession(session)
	return session, nil
}

func (p *LocalProvider) setSession(session *entities.AuthSession) {
	p.mu.Lock()
	p.session = session
	callbacks := make([]func(*entities.AuthSession), len(p.callbacks))
	copy(callbacks, p.callbacks)
	p.mu.Unlock()

	for _, fn := range callbacks {
		fn(session)
	}
}
