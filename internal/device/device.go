package device

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	// TokenTTL is how long an anonymous device token stays valid.
	TokenTTL = 30 * 24 * time.Hour

	// ClaimDeviceID is the JWT claim holding the device uuid.
	ClaimDeviceID = "device_id"
	// LocalsKey is where the verified token is stored in fiber locals.
	LocalsKey = "user"
)

var ErrEmptySigningKey = errors.New("device token signing key is empty")

// Token is an anonymous device identity. It carries no credentials; it only
// lets the service keep per-device favorites, cart and feed sessions apart.
type Token struct {
	Token     string    `json:"token"`
	DeviceID  string    `json:"deviceId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewIssuer(key []byte) (*Issuer, error) {
	if len(key) == 0 {
		return nil, ErrEmptySigningKey
	}
	return &Issuer{key: key, ttl: TokenTTL, now: time.Now}, nil
}

// Issue signs an HS256 token for a fresh random device id.
func (i *Issuer) Issue() (Token, error) {
	id := uuid.NewString()
	exp := i.now().Add(i.ttl)

	claims := jwt.MapClaims{
		ClaimDeviceID: id,
		"iat":         i.now().Unix(),
		"exp":         exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return Token{}, fmt.Errorf("sign device token: %w", err)
	}
	return Token{Token: signed, DeviceID: id, ExpiresAt: exp.UTC()}, nil
}

// Middleware guards protected routes with the device token.
func Middleware(key []byte) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:    key,
		SigningMethod: "HS256",
		ContextKey:    LocalsKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "missing or invalid device token"})
		},
	})
}

// GetDeviceIDFromCtx reads the device id placed in locals by Middleware.
func GetDeviceIDFromCtx(c *fiber.Ctx) (string, error) {
	tok, ok := c.Locals(LocalsKey).(*jwt.Token)
	if !ok || tok == nil {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	id, ok := claims[ClaimDeviceID].(string)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", fiber.ErrUnauthorized
	}
	return id, nil
}
