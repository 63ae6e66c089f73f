package auth

import (
	"net/http"
	"time"

	apperrors "github.com/jwalitptl/homecare-api/pkg/errors"
)

// CookieName is the cookie carrying the signed credential.
const CookieName = "token"

// Carrier moves credentials between the codec and HTTP cookies.
type Carrier struct {
	codec *Codec
}

func NewCarrier(codec *Codec) *Carrier {
	return &Carrier{codec: codec}
}

func (c *Carrier) Codec() *Codec {
	return c.codec
}

// Extract reads and verifies the credential cookie. A missing cookie is
// reported without attempting to decode anything.
func (c *Carrier) Extract(r *http.Request) (*Claims, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, apperrors.TokenNotProvided()
	}
	return c.codec.Decode(cookie.Value)
}

// Attach encodes the claims into a session cookie.
func (c *Carrier) Attach(claims *Claims) (*http.Cookie, error) {
	token, err := c.codec.Encode(claims)
	if err != nil {
		return nil, err
	}
	return c.build(token, int(c.codec.Validity().Seconds())), nil
}

// Clear returns a cookie that makes the client drop its credential.
func (c *Carrier) Clear() *http.Cookie {
	cookie := c.build("", -1)
	cookie.Expires = time.Unix(0, 0)
	return cookie
}

func (c *Carrier) build(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
