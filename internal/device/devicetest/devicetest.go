// Package devicetest lets handler tests act as a device without signing tokens.
package devicetest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/wichananm65/kg-market-backend/internal/device"
)

// HeaderDeviceID is read by FakeAuth.
const HeaderDeviceID = "X-Device-ID"

// FakeAuth puts an unsigned token for the X-Device-ID header into locals,
// where the signing middleware would put a verified one.
func FakeAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id := c.Get(HeaderDeviceID); id != "" {
			c.Locals(device.LocalsKey, &jwt.Token{Claims: jwt.MapClaims{device.ClaimDeviceID: id}})
		}
		return c.Next()
	}
}
