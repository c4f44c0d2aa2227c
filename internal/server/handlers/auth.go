// Handles user authentication and session management.

package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/maruel/ksid"

	"github.com/chembot/admin/internal/server/dto"
	"github.com/chembot/admin/internal/server/reqctx"
	"github.com/chembot/admin/internal/storage/identity"
)

const tokenExpiration = 24 * time.Hour

// AuthHandler handles authentication requests.
type AuthHandler struct {
	svc *Services
	cfg *Config
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *Services, cfg *Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

// Login handles user login and returns a JWT token.
func (h *AuthHandler) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := h.svc.User.Authenticate(req.Email, req.Password)
	if err != nil {
		return nil, dto.NewAPIError(401, dto.ErrorCodeUnauthorized, "Invalid credentials")
	}

	token, err := h.GenerateTokenWithSession(user, reqctx.ClientIP(ctx), reqctx.UserAgent(ctx))
	if err != nil {
		return nil, dto.InternalWithError("Failed to generate token", err)
	}

	if _, err := h.svc.User.Modify(user.ID, func(u *identity.User) error {
		u.LastLogin = time.Now()
		return nil
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to record last login", "err", err, "user_id", user.ID)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  userToResponse(user),
	}, nil
}

// GenerateTokenWithSession creates a session and generates a JWT token with
// the session ID embedded in the "sid" claim.
func (h *AuthHandler) GenerateTokenWithSession(user *identity.User, clientIP, userAgent string) (string, error) {
	expiresAt := time.Now().Add(tokenExpiration)

	// Pre-generate the session ID so it can be embedded in the JWT.
	sessionID := ksid.NewID()

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"sid":   sessionID.String(),
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(h.cfg.JWTSecret)
	if err != nil {
		return "", err
	}

	deviceInfo := userAgent
	if len(deviceInfo) > 200 {
		deviceInfo = deviceInfo[:200]
	}
	countryCode := ""
	if h.svc.Geo != nil {
		countryCode = h.svc.Geo.CountryCode(clientIP)
	}
	if _, err := h.svc.Session.CreateWithID(sessionID, user.ID, identity.HashToken(tokenString), deviceInfo, clientIP, countryCode, expiresAt, h.cfg.Quotas.MaxSessionsPerUser); err != nil {
		return "", err
	}
	return tokenString, nil
}

// Logout revokes the current session.
func (h *AuthHandler) Logout(ctx context.Context, user *identity.User, req *dto.LogoutRequest) (*dto.LogoutResponse, error) {
	sessionID := reqctx.SessionID(ctx)
	if sessionID == 0 {
		return &dto.LogoutResponse{Ok: true}, nil
	}
	if err := h.svc.Session.Revoke(sessionID); err != nil {
		slog.ErrorContext(ctx, "Failed to revoke session", "err", err, "session_id", sessionID)
		return nil, dto.InternalWithError("Failed to logout", err)
	}
	return &dto.LogoutResponse{Ok: true}, nil
}

// GetMe returns the current user info.
func (h *AuthHandler) GetMe(ctx context.Context, user *identity.User, req *dto.GetMeRequest) (*dto.UserResponse, error) {
	return userToResponse(user), nil
}

// UpdateUserSettings updates per-user preferences.
func (h *AuthHandler) UpdateUserSettings(ctx context.Context, user *identity.User, req *dto.UpdateUserSettingsRequest) (*dto.UserResponse, error) {
	updated, err := h.svc.User.Modify(user.ID, func(u *identity.User) error {
		if req.Theme != "" {
			u.Theme = req.Theme
		}
		if req.Language != "" {
			u.Language = req.Language
		}
		return nil
	})
	if err != nil {
		return nil, dto.InternalWithError("Failed to update settings", err)
	}
	return userToResponse(updated), nil
}
