package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/cursoteca/cursoteca/internal/auth/domain"
	"github.com/cursoteca/cursoteca/internal/auth/store"
	"github.com/cursoteca/cursoteca/pkg/captcha"
	"github.com/cursoteca/cursoteca/pkg/cryptox"
	"github.com/cursoteca/cursoteca/pkg/idx"
	"github.com/cursoteca/cursoteca/pkg/jwtx"
	"github.com/cursoteca/cursoteca/pkg/slogx"
)

// TokenPair is the access/refresh token pair handed out by every flow
// that establishes or renews a session. It carries the lifetimes the
// tokens were minted with so cookie expiry always matches token expiry.
type TokenPair struct {
	Access  string
	Refresh string

	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// AuthService implements the register, login and refresh flows.
type AuthService struct {
	Store   store.Store
	Codec   *jwtx.Codec
	Captcha captcha.Verifier
}

type RegisterParams struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	CaptchaToken    string
	Locale          domain.Locale
}

// Register validates the params, verifies the challenge token, creates
// the user and mints a fresh session so registration logs the user in.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (domain.User, TokenPair, error) {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(p.Name) == "" || p.Email == "" || p.Password == "" || p.ConfirmPassword == "" {
		return domain.User{}, TokenPair{}, validationErr("all fields are required")
	}

	if err := s.checkCaptcha(ctx, p.CaptchaToken); err != nil {
		return domain.User{}, TokenPair{}, err
	}

	if err := validateName(p.Name); err != nil {
		return domain.User{}, TokenPair{}, err
	}

	email := NormalizeEmail(p.Email)
	if err := validateEmail(email); err != nil {
		return domain.User{}, TokenPair{}, err
	}

	if err := validatePassword(p.Password); err != nil {
		return domain.User{}, TokenPair{}, err
	}
	if p.Password != p.ConfirmPassword {
		return domain.User{}, TokenPair{}, validationErr("passwords do not match")
	}

	locale := p.Locale
	if !domain.ValidLocale(locale) {
		locale = domain.DefaultLocale
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Name:         strings.TrimSpace(p.Name),
		Email:        email,
		PasswordHash: hash,
		Theme:        domain.ThemeSystem,
		Locale:       locale,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, TokenPair{}, ErrEmailTaken
		}
		return domain.User{}, TokenPair{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID))

	pair, err := s.mintPair(user)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}
	return user, pair, nil
}

type LoginParams struct {
	Email        string
	Password     string
	CaptchaToken string
}

// Login verifies credentials and mints a new session. Unknown emails
// and bad passwords both surface as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, p LoginParams) (domain.User, TokenPair, error) {
	log := slogx.FromContext(ctx)

	if p.Email == "" || p.Password == "" {
		return domain.User{}, TokenPair{}, validationErr("email and password are required")
	}

	if err := s.checkCaptcha(ctx, p.CaptchaToken); err != nil {
		return domain.User{}, TokenPair{}, err
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, NormalizeEmail(p.Email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, TokenPair{}, ErrInvalidCredentials
		}
		return domain.User{}, TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(p.Password, user.PasswordHash); err != nil {
		log.Info("login password mismatch", slog.String("user_id", user.ID))
		return domain.User{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.mintPair(user)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}
	return user, pair, nil
}

// Refresh verifies a refresh token, re-reads the user from the store so
// revoked accounts stop refreshing, and rotates both tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (domain.User, TokenPair, error) {
	if refreshToken == "" {
		return domain.User{}, TokenPair{}, ErrInvalidRefresh
	}

	id, err := s.Codec.Verify(refreshToken, jwtx.KindRefresh)
	if err != nil {
		// The cause (expired, forged, wrong kind) only ever reaches the
		// logs; the client sees the same 401 either way.
		slogx.FromContext(ctx).Warn("refresh token verification failed", "err", err)
		return domain.User{}, TokenPair{}, ErrInvalidRefresh
	}

	user, err := s.Store.Users().GetUserByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, TokenPair{}, ErrInvalidRefresh
		}
		return domain.User{}, TokenPair{}, err
	}

	pair, err := s.mintPair(user)
	if err != nil {
		return domain.User{}, TokenPair{}, err
	}
	return user, pair, nil
}

func (s *AuthService) checkCaptcha(ctx context.Context, token string) error {
	if token == "" {
		return ErrCaptchaRequired
	}
	if !s.Captcha.Verify(ctx, token) {
		return ErrCaptchaFailed
	}
	return nil
}

func (s *AuthService) mintPair(user domain.User) (TokenPair, error) {
	identity := jwtx.Identity{UserID: user.ID, Email: user.Email, Name: user.Name}

	access, err := s.Codec.Mint(identity, jwtx.KindAccess)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.Codec.Mint(identity, jwtx.KindRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		Access:     access,
		Refresh:    refresh,
		AccessTTL:  s.Codec.AccessTTL,
		RefreshTTL: s.Codec.RefreshTTL,
	}, nil
}
