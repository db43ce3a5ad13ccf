package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bellathena/cityhill-backoffice/internal/session"
	"github.com/bellathena/cityhill-backoffice/internal/upstream"
	"github.com/bellathena/cityhill-backoffice/internal/utils"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Login verifies credentials against the upstream API, then issues an access
// token and a refresh token.  Only the SHA-256 hash of the refresh token is
// stored.
func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.API.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, upstream.ErrBadCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return h.upstreamError(c, err)
	}

	return h.issueTokens(c, user.ID, string(user.Role), echo.Map{"user": user})
}

// Refresh rotates a refresh token and issues a new access token.  The old
// refresh token is revoked even if the client never uses the new one.
func (h *Handler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	hash := utils.HashRefreshRaw(req.RefreshToken)
	userID, role, err := h.Sessions.Lookup(ctx, hash)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
		}
		h.Log.Error().Err(err).Msg("session lookup failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	if err := h.Sessions.Delete(ctx, hash); err != nil {
		h.Log.Warn().Err(err).Msg("stale session delete failed")
	}

	return h.issueTokens(c, userID, role, echo.Map{})
}

// Logout revokes a refresh token.  Unknown tokens succeed; logout is
// idempotent.
func (h *Handler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if err := h.Sessions.Delete(c.Request().Context(), utils.HashRefreshRaw(req.RefreshToken)); err != nil {
		h.Log.Error().Err(err).Msg("session delete failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) issueTokens(c echo.Context, userID int64, role string, extra echo.Map) error {
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, userID, role, h.Cfg.AccessTTLMin)
	if err != nil {
		h.Log.Error().Err(err).Msg("access token signing failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	refresh, err := utils.NewRefreshToken(h.Cfg.RefreshTTLDays)
	if err != nil {
		h.Log.Error().Err(err).Msg("refresh token generation failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	ttl := time.Until(refresh.Exp)
	if err := h.Sessions.Save(c.Request().Context(), utils.HashRefreshRaw(refresh.Raw), userID, role, ttl); err != nil {
		h.Log.Error().Err(err).Msg("session save failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}

	resp := echo.Map{
		"accessToken":      access.Token,
		"accessExpiresAt":  access.Exp,
		"refreshToken":     refresh.Raw,
		"refreshExpiresAt": refresh.Exp,
	}
	for k, v := range extra {
		resp[k] = v
	}
	return c.JSON(http.StatusOK, resp)
}
