package handlers

import (
	"fmt"
	"strconv"

	"personal-finance/internal/dto"
	"personal-finance/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext reads the caller set by the auth middleware
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}
	return value
}

func toNotificationDTOs(notifications []services.Notification) []dto.Notification {
	out := make([]dto.Notification, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.Notification{Kind: n.Kind, Message: n.Message})
	}
	return out
}

// lastMessage is the message of the most recent notification, if any
func lastMessage(collector *services.CollectingNotifier) string {
	if last, ok := collector.Last(); ok {
		return last.Message
	}
	return ""
}
