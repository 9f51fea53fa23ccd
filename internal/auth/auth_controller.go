package auth

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/DhavalSuthar-24/matchday/config"
	"github.com/DhavalSuthar-24/matchday/internal/common"
	"github.com/DhavalSuthar-24/matchday/internal/user"
	"github.com/DhavalSuthar-24/matchday/pkg/responses"
	"github.com/DhavalSuthar-24/matchday/pkg/token"
	"github.com/DhavalSuthar-24/matchday/pkg/utils"
	"github.com/DhavalSuthar-24/matchday/pkg/validator"
	hash "github.com/DhavalSuthar-24/matchday/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{
		repo:   repo,
		config: cfg,
	}
}

func (ac *AuthController) generateAndSaveTokens(c *gin.Context, u *user.User) (string, string, error) {
	role := ""
	if names := u.RoleNames(); len(names) > 0 {
		role = names[0]
	}
	accessToken, err := token.GenerateJWT(u.ID, role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		return "", "", fmt.Errorf("access token generation failed: %w", err)
	}

	refreshTokenString, err := utils.GenerateRefreshToken(u.ID, ac.config.JWT.RefreshTokenSecret, ac.config.JWT.RefreshTokenExpiryDays)
	if err != nil {
		return "", "", fmt.Errorf("refresh token generation failed: %w", err)
	}

	refreshToken := &user.RefreshToken{
		UserID:    u.ID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().AddDate(0, 0, ac.config.JWT.RefreshTokenExpiryDays),
	}
	if err := ac.repo.SaveRefreshToken(c.Request.Context(), refreshToken); err != nil {
		return "", "", fmt.Errorf("failed to save refresh token: %w", err)
	}
	return accessToken, refreshTokenString, nil
}

// @Summary      Login
// @Description  Authenticate a staff account with email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200   {object} responses.SuccessResponse{data=AuthResponse}
// @Failure      400   {object} responses.ErrorResponse "Invalid input"
// @Failure      401   {object} responses.ErrorResponse "Invalid credentials"
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	found, err := ac.repo.GetUserByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, ErrUserNotFound) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}
	if err != nil {
		ac.fail(c, "find user", err)
		return
	}
	if !hash.CheckPassword(found.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	accessToken, refreshToken, err := ac.generateAndSaveTokens(c, found)
	if err != nil {
		ac.fail(c, "issue tokens", err)
		return
	}

	now := time.Now()
	if err := ac.repo.TouchLastLogin(c.Request.Context(), found.ID, now); err != nil {
		slog.Warn("could not record last login", slog.Uint64("user_id", uint64(found.ID)), slog.Any("error", err))
	} else {
		found.LastLogin = &now
	}

	responses.SendSuccess(c, http.StatusOK, "Login successful", AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(found),
	})
}

// @Summary      Refresh access token
// @Description  Issues a new access token for a valid, unrevoked refresh token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh token"
// @Success      200 {object} responses.SuccessResponse
// @Failure      400 {object} responses.ErrorResponse "Invalid input"
// @Failure      401 {object} responses.ErrorResponse "Invalid or expired refresh token"
// @Router       /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	userID, err := utils.VerifyRefreshToken(req.RefreshToken, ac.config.JWT.RefreshTokenSecret)
	if err != nil {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}
	rt, err := ac.repo.GetRefreshToken(c.Request.Context(), req.RefreshToken)
	if errors.Is(err, ErrRefreshTokenNotFound) || (err == nil && rt.UserID != userID) {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}
	if err != nil {
		ac.fail(c, "load refresh token", err)
		return
	}

	u, err := ac.repo.GetUserByID(c.Request.Context(), userID)
	if errors.Is(err, ErrUserNotFound) {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}
	if err != nil {
		ac.fail(c, "load user", err)
		return
	}

	role := ""
	if names := u.RoleNames(); len(names) > 0 {
		role = names[0]
	}
	accessToken, err := token.GenerateJWT(u.ID, role, ac.config.JWT.AccessTokenSecret, ac.config.JWT.AccessTokenExpiryMinutes)
	if err != nil {
		ac.fail(c, "issue access token", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Token refreshed", gin.H{"access_token": accessToken})
}

// @Summary      Current user
// @Tags         Auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} responses.SuccessResponse{data=UserResponse}
// @Failure      401 {object} responses.ErrorResponse "Unauthorized"
// @Router       /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	u, err := ac.repo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		ac.fail(c, "get profile", err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Profile retrieved successfully", FilterUserRecord(u))
}

// @Summary      Logout
// @Description  Revokes the given refresh token, or every session of the user.
// @Tags         Auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body LogoutRequest false "Logout options"
// @Success      200 {object} responses.SuccessResponse
// @Failure      401 {object} responses.ErrorResponse "Unauthorized"
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if req.RefreshToken != "" {
		if err := ac.repo.InvalidateRefreshToken(c.Request.Context(), req.RefreshToken); err != nil {
			ac.fail(c, "revoke refresh token", err)
			return
		}
	}
	if req.InvalidateAllSessions {
		if err := ac.repo.InvalidateAllRefreshTokensForUser(c.Request.Context(), userID); err != nil {
			ac.fail(c, "revoke sessions", err)
			return
		}
	}
	responses.SendSuccess(c, http.StatusOK, "Logged out successfully", gin.H{
		"all_sessions_invalidated": req.InvalidateAllSessions,
	})
}

// @Summary      Create a staff account
// @Description  Administrators open accounts for other staff. Admin grants the admin role.
// @Tags         Auth
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        user body CreateUserRequest true "New account"
// @Success      201 {object} responses.SuccessResponse{data=UserResponse}
// @Failure      400 {object} responses.ErrorResponse "Invalid input"
// @Failure      409 {object} responses.ErrorResponse "Email already registered"
// @Router       /auth/users [post]
func (ac *AuthController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	u, err := createAccount(c.Request.Context(), ac.repo, req.Name, req.Email, req.Password, ac.config.JWT.BcryptCost, req.Admin)
	if err != nil {
		ac.fail(c, "create user", err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "User created successfully", FilterUserRecord(u))
}

func (ac *AuthController) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		responses.NotFound(c, "User")
	case errors.Is(err, ErrEmailTaken):
		responses.Conflict(c, "Email already registered")
	default:
		slog.Error(op+" failed", slog.String("request_id", common.RequestID(c)), slog.Any("error", err))
		responses.InternalServerError(c)
	}
}
