package services

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/soletrade/soletrade/controllers/entities"
	"github.com/soletrade/soletrade/exceptions"
	"github.com/soletrade/soletrade/models"
)

const (
	AccessTokenTTL  = 30 * time.Minute
	RefreshTokenTTL = 14 * 24 * time.Hour

	refreshKeyPrefix = "soletrade:refresh_token:"
)

// KeyStore is the piece of the cache the token service needs; the
// Redis CacheService satisfies it, tests plug in a map-backed fake.
type KeyStore interface {
	GetKey(key string, src interface{}) error
	SetKey(key string, value interface{}, expiration time.Duration) error
	DeleteKey(key string) error
}

type TokenClaims struct {
	UID  string `json:"uid"`
	Role string `json:"role"`

	jwt.StandardClaims
}

type TokenService struct {
	store  KeyStore
	secret []byte
}

func NewTokenService(store KeyStore) *TokenService {
	return &TokenService{
		store:  store,
		secret: []byte(os.Getenv("JWT_SECRET")),
	}
}

// IssuePair signs a fresh access/refresh pair and records the refresh
// token so a reissue can be checked against it.
func (s *TokenService) IssuePair(member *models.Member) (*entities.MemberLoginEntity, error) {
	access, err := s.sign(member.UID, member.Role, AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := s.sign(member.UID, member.Role, RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	if err := s.store.SetKey(refreshKeyPrefix+member.UID, refresh, RefreshTokenTTL); err != nil {
		return nil, err
	}

	return &entities.MemberLoginEntity{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// Parse verifies an access token, mapping verification failures onto
// the token error codes.
func (s *TokenService) Parse(token string) (*TokenClaims, error) {
	if len(token) == 0 {
		return nil, exceptions.TokenNotFound()
	}

	claims := &TokenClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})

	if err != nil {
		if validation_err, ok := err.(*jwt.ValidationError); ok && validation_err.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, exceptions.TokenExpired()
		}

		return nil, exceptions.TokenInvalid()
	}

	return claims, nil
}

// ParseAllowExpired reads the claims out of an access token that may
// already be past its expiry, as happens during a reissue.
func (s *TokenService) ParseAllowExpired(token string) (*TokenClaims, error) {
	if len(token) == 0 {
		return nil, exceptions.TokenNotFound()
	}

	claims := &TokenClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})

	if err != nil {
		validation_err, ok := err.(*jwt.ValidationError)
		if !ok || validation_err.Errors&jwt.ValidationErrorExpired == 0 {
			return nil, exceptions.TokenInvalid()
		}
	}

	return claims, nil
}

// Reissue rotates the pair when the presented refresh token matches the
// stored one and has not expired.
func (s *TokenService) Reissue(member *models.Member, refresh string) (*entities.MemberLoginEntity, error) {
	claims := &TokenClaims{}

	_, err := jwt.ParseWithClaims(refresh, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})

	if err != nil {
		if validation_err, ok := err.(*jwt.ValidationError); ok && validation_err.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, exceptions.ExpiredRefreshToken()
		}

		return nil, exceptions.InvalidRefreshToken()
	}

	if claims.UID != member.UID {
		return nil, exceptions.InvalidRefreshToken()
	}

	var stored string
	if err := s.store.GetKey(refreshKeyPrefix+member.UID, &stored); err != nil || stored != refresh {
		return nil, exceptions.InvalidRefreshToken()
	}

	return s.IssuePair(member)
}

func (s *TokenService) sign(uid, role string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := &TokenClaims{
		UID:  uid,
		Role: role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
