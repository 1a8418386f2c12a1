package devserver

import (
	"sync"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	apperrors "github.com/paycanvas/console/internal/errors"
	"github.com/paycanvas/console/session"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// AccessClaims is the decoded payload of a verified access token.
type AccessClaims struct {
	UserID      int
	Email       string
	Name        string
	Role        session.Role
	CompanyID   int
	CompanyName string
	Features    []string
}

type refreshRecord struct {
	userID    int
	expiresAt time.Time
}

// TokenService issues and verifies HS256 access tokens and rotates opaque
// refresh tokens. One refresh token exists per user at a time.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration

	mu            sync.Mutex
	refreshTokens map[string]refreshRecord
	byUser        map[int]string
}

func NewTokenService(secret, accessTTL, refreshTTL string) (*TokenService, error) {
	access, err := time.ParseDuration(accessTTL)
	if err != nil {
		return nil, errors.Wrap(err, "[NewTokenService] access token TTL")
	}
	refresh, err := time.ParseDuration(refreshTTL)
	if err != nil {
		return nil, errors.Wrap(err, "[NewTokenService] refresh token TTL")
	}
	return &TokenService{
		secret:        []byte(secret),
		accessTTL:     access,
		refreshTTL:    refresh,
		refreshTokens: make(map[string]refreshRecord),
		byUser:        make(map[int]string),
	}, nil
}

// IssueAccessToken signs a token carrying the account's identity and role.
func (t *TokenService) IssueAccessToken(account Account) (string, time.Time, error) {
	expiresAt := NowTimeFunc().Add(t.accessTTL)
	claims := jwtlib.MapClaims{
		"sub":         account.Email,
		"userId":      account.ID,
		"name":        account.Name,
		"role":        string(account.Role),
		"companyId":   account.CompanyID,
		"companyName": account.CompanyName,
		"features":    account.Features,
		"iat":         NowTimeFunc().Unix(),
		"exp":         expiresAt.Unix(),
		"jti":         uuid.New().String(),
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "[TokenService.IssueAccessToken] sign")
	}
	return signed, expiresAt, nil
}

// VerifyAccessToken parses and validates a bearer token.
func (t *TokenService) VerifyAccessToken(raw string) (*AccessClaims, error) {
	parsed, err := jwtlib.Parse(raw, func(token *jwtlib.Token) (any, error) {
		if _, ok := token.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %s", token.Method.Alg())
		}
		return t.secret, nil
	}, jwtlib.WithTimeFunc(func() time.Time { return NowTimeFunc() }))
	if err != nil {
		return nil, apperrors.Wrapf(err, "verify access token")
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok || !parsed.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return &AccessClaims{
		UserID:      intClaim(claims, "userId"),
		Email:       stringClaim(claims, "sub"),
		Name:        stringClaim(claims, "name"),
		Role:        session.Role(stringClaim(claims, "role")),
		CompanyID:   intClaim(claims, "companyId"),
		CompanyName: stringClaim(claims, "companyName"),
		Features:    stringSliceClaim(claims, "features"),
	}, nil
}

// IssueRefreshToken replaces any existing refresh token for the user.
func (t *TokenService) IssueRefreshToken(userID int) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if old, ok := t.byUser[userID]; ok {
		delete(t.refreshTokens, old)
	}
	token := uuid.New().String()
	t.refreshTokens[token] = refreshRecord{userID: userID, expiresAt: NowTimeFunc().Add(t.refreshTTL)}
	t.byUser[userID] = token
	return token
}

// RedeemRefreshToken validates and consumes a refresh token, returning the
// user it belongs to. The caller issues a new pair afterwards.
func (t *TokenService) RedeemRefreshToken(token string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	record, ok := t.refreshTokens[token]
	if !ok {
		return 0, apperrors.ErrInvalidRefreshToken
	}
	if NowTimeFunc().After(record.expiresAt) {
		delete(t.refreshTokens, token)
		delete(t.byUser, record.userID)
		return 0, apperrors.ErrInvalidRefreshToken
	}

	delete(t.refreshTokens, token)
	delete(t.byUser, record.userID)
	return record.userID, nil
}

func stringClaim(claims jwtlib.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

func intClaim(claims jwtlib.MapClaims, key string) int {
	if v, ok := claims[key].(float64); ok {
		return int(v)
	}
	return 0
}

func stringSliceClaim(claims jwtlib.MapClaims, key string) []string {
	raw, ok := claims[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
