package handlers

import (
	"net/http"
	"time"

	"personal-finance/internal/errors"
	"personal-finance/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler serves development-only endpoints. It is only routed when the server
// runs in the development environment with a signing key configured.
type DevHandler struct {
	tokenService services.TokenServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(tokenService services.TokenServiceInterface) *DevHandler {
	return &DevHandler{tokenService: tokenService}
}

// DevTokenRequest selects the user a development token is issued for
type DevTokenRequest struct {
	UserID string `json:"user_id" validate:"omitempty,uuid"`
	Email  string `json:"email" validate:"omitempty,email"`
}

// DevTokenResponse carries a freshly signed access token
type DevTokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      uuid.UUID `json:"user_id"`
}

// IssueToken signs an access token so the API can be exercised without the identity provider
//
// Method: POST /api/v1/dev/token
// Body: {"user_id": "<uuid>", "email": "..."}; a random user is used when user_id is empty
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID := uuid.New()
	if req.UserID != "" {
		userID = uuid.MustParse(req.UserID)
	}

	token, expiresAt, err := h.tokenService.IssueAccessToken(userID, req.Email)
	if err != nil {
		return SendSystemError(c, err)
	}

	return sendData(c, http.StatusOK, DevTokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		UserID:      userID,
	}, "")
}
