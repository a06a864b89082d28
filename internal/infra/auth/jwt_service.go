package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"authapi/config"
	"authapi/internal/domain/entity"
	"authapi/internal/domain/service"
	"authapi/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using
// HMAC-SHA-256 signed tokens.
type jwtService struct {
	secret     []byte           // Symmetric key shared by both token kinds.
	accessTTL  time.Duration    // Time-to-live for access tokens.
	refreshTTL time.Duration    // Time-to-live for refresh tokens.
	now        func() time.Time // Clock, replaceable in tests.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Token.SecretKey == "" {
		return nil, errors.New("token secret key must be provided")
	}

	return &jwtService{
		secret:     []byte(cfg.Token.SecretKey),
		accessTTL:  cfg.Token.AccessTokenTTL(),
		refreshTTL: cfg.Token.RefreshTokenTTL(),
		now:        time.Now,
	}, nil
}

// IssuePair creates a new access/refresh token pair for the given account.
// Both tokens carry the same claim shape and differ only in lifetime.
func (s *jwtService) IssuePair(accountID uuid.UUID) (*entity.TokenPair, error) {
	now := s.now()
	accessExpiresAt := now.Add(s.accessTTL)
	refreshExpiresAt := now.Add(s.refreshTTL)

	accessToken, err := s.sign(accountID, accessExpiresAt)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.sign(accountID, refreshExpiresAt)
	if err != nil {
		return nil, err
	}

	return &entity.TokenPair{
		ID:               uuid.New(),
		AccountID:        accountID,
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiresAt,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
		CreatedAt:        now,
	}, nil
}

// Verify checks the token signature and expiry and extracts the claims.
// Expiry is a strict inequality: a token expiring exactly now is expired.
func (s *jwtService) Verify(tokenText string) (*service.TokenClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.Parse(tokenText, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		switch {
		// A disallowed signing method is a wrong-key condition, not a
		// structural one. The keyfunc never fails here, so unverifiable
		// tokens can only mean method rejection.
		case errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, errors.Wrap(service.ErrInvalidSignature, err.Error())
		default:
			return nil, errors.Wrap(service.ErrMalformedClaims, err.Error())
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.WithStack(service.ErrMalformedClaims)
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, errors.Wrap(service.ErrMalformedClaims, "missing sub claim")
	}
	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, errors.Wrap(service.ErrMalformedClaims, "missing exp claim")
	}

	if !expiresAt.Time.After(s.now()) {
		return nil, errors.WithStack(service.ErrTokenExpired)
	}

	return &service.TokenClaims{
		AccountID: subject,
		ExpiresAt: expiresAt.Time,
	}, nil
}

// sign builds and signs one token carrying the sub and exp claims.
func (s *jwtService) sign(accountID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub": accountID.String(), // Subject (who the token is for)
		"exp": expiresAt.Unix(),   // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(service.ErrSigningFailed, err.Error())
	}

	return signed, nil
}
