package http

import (
	"net/http"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Identity arrives already authenticated from the gateway in front of the service.
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "actor"
)

// ActorMiddleware reads the caller's identity from the request headers and
// rejects requests without a usable one.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := kernel.UUIDFromString(c.Request().Header.Get(HeaderActorID))
			if err != nil {
				return unauthorized(c, "Missing or invalid "+HeaderActorID+" header")
			}

			switch strings.ToLower(strings.TrimSpace(c.Request().Header.Get(HeaderActorRole))) {
			case "", "customer":
				c.Set(actorContextKey, services.NewCustomer(id))
			case "admin":
				c.Set(actorContextKey, services.NewAdmin(id))
			default:
				return unauthorized(c, "Unknown "+HeaderActorRole+" header")
			}

			return next(c)
		}
	}
}

// actorFrom returns the actor stored by ActorMiddleware. Routes outside the
// middleware get the zero Actor, which no policy accepts.
func actorFrom(c echo.Context) services.Actor {
	actor, _ := c.Get(actorContextKey).(services.Actor)
	return actor
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: message})
}
