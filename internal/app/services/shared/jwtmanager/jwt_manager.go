package jwtmanager

import (
	"context"
	"directory-service/internal/app/config"
	"directory-service/internal/app/models"
	"directory-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// JWTManager verifies the bearer tokens issued to directory users and turns
// them into sessions.
type JWTManager struct {
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
}

// SessionClaims are the claims the directory reads from a token.
type SessionClaims struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	jwt.RegisteredClaims
}

type CreateTokenInput struct {
	Subject  string
	FullName string
	Email    string
	Phone    string
}

type CreateTokenOutput struct {
	Token string
}

type VerifyTokenInput struct {
	Token string
}

type VerifyTokenOutput struct {
	Valid   bool
	Session *models.Session
}

func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.JWT.Secret)
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	return &JWTManager{
		log:    log,
		secret: []byte(secret),
		ttl:    time.Hour,
	}, nil
}

// CreateToken signs an HS256 token. The directory never logs users in; this
// exists for local tooling and tests.
func (j *JWTManager) CreateToken(ctx context.Context, in *CreateTokenInput) (*CreateTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.CreateToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Subject) == "" {
		return nil, fmt.Errorf("subject is required")
	}

	now := time.Now().UTC()
	claims := SessionClaims{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   in.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, err
	}
	return &CreateTokenOutput{Token: signed}, nil
}

// VerifyToken validates signature and expiry. An invalid token is reported
// through Valid, not through the error.
func (j *JWTManager) VerifyToken(ctx context.Context, in *VerifyTokenInput) (*VerifyTokenOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	j.log.Info("JWTManager.VerifyToken called", zap.String(constvars.LoggingRequestIDKey, requestID))

	if in == nil || strings.TrimSpace(in.Token) == "" {
		return &VerifyTokenOutput{Valid: false}, errors.New("token is required")
	}

	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(in.Token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return &VerifyTokenOutput{Valid: false}, nil
	}

	return &VerifyTokenOutput{
		Valid: true,
		Session: &models.Session{
			Subject:  claims.Subject,
			FullName: claims.FullName,
			Email:    claims.Email,
			Phone:    claims.Phone,
			Token:    in.Token,
		},
	}, nil
}
