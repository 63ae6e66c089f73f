package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

// DefaultValidity is how long an issued credential stays valid.
const DefaultValidity = 4 * time.Hour

// Role of the authenticated subject.
type Role string

const (
	RoleManager Role = "Manager"
	RoleNurse   Role = "Nurse"
)

func (r Role) Valid() bool {
	return r == RoleManager || r == RoleNurse
}

// Claims is the signed claim set carried by the session cookie.
// SubjectID references the nurses or managers table depending on Role.
type Claims struct {
	SubjectID int64  `json:"id"`
	Role      Role   `json:"role"`
	CenterID  int64  `json:"id_center"`
	ZoneID    *int64 `json:"id_zone,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies claim sets with a shared HMAC secret.
type Codec struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
	parser   *jwt.Parser
}

type Option func(*Codec)

// WithClock overrides the time source used to issue and verify tokens.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

func NewCodec(secret string, validity time.Duration, opts ...Option) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if validity <= 0 {
		validity = DefaultValidity
	}

	c := &Codec{
		secret:   []byte(secret),
		validity: validity,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
		jwt.WithStrictDecoding(),
	)
	return c, nil
}

// Validity returns the lifetime of issued credentials.
func (c *Codec) Validity() time.Duration {
	return c.validity
}

// Issue builds a claim set for a freshly authenticated subject.
// The zone is only kept for nurses.
func (c *Codec) Issue(subjectID int64, role Role, centerID int64, zoneID *int64) *Claims {
	now := c.now().Truncate(time.Second)
	if role != RoleNurse {
		zoneID = nil
	}
	return &Claims{
		SubjectID: subjectID,
		Role:      role,
		CenterID:  centerID,
		ZoneID:    zoneID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
	}
}

func (c *Codec) Encode(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature before looking at the payload, so any
// altered byte is reported as an invalid signature.
func (c *Codec) Decode(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, apperrors.MalformedToken(jwt.ErrTokenMalformed)
	}

	sig, err := base64.RawURLEncoding.Strict().DecodeString(parts[2])
	if err != nil {
		return nil, apperrors.InvalidSignature(err)
	}
	if err := jwt.SigningMethodHS256.Verify(parts[0]+"."+parts[1], sig, c.secret); err != nil {
		return nil, apperrors.InvalidSignature(err)
	}

	claims := &Claims{}
	if _, err := c.parser.ParseWithClaims(token, claims, c.keyFunc); err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, apperrors.Expired(err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, apperrors.InvalidSignature(err)
		default:
			return nil, apperrors.MalformedToken(err)
		}
	}
	return claims, nil
}

func (c *Codec) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return c.secret, nil
}
