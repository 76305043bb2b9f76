package handlers

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
	"github.com/vidtube/vidtube_backend/internal/platform/config"
)

// AuthHandler handles registration and the credential lifecycle.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// setTokenCookies sets the accessToken/refreshToken pair as httpOnly, secure cookies.
func (h *AuthHandler) setTokenCookies(c *gin.Context, accessToken string, refreshToken string) {
	c.SetCookie(h.cfg.AccessTokenCookieName, accessToken, int(h.cfg.AccessTokenExpiry.Seconds()), "/", "", true, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, refreshToken, int(h.cfg.RefreshTokenExpiry.Seconds()), "/", "", true, true)
}

// clearTokenCookies expires both token cookies.
func (h *AuthHandler) clearTokenCookies(c *gin.Context) {
	c.SetCookie(h.cfg.AccessTokenCookieName, "", -1, "/", "", true, true)
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, "/", "", true, true)
}

// formFileUpload opens an optional multipart file as a dto.FileUpload.
// Callers must close the returned closer when non-nil.
func formFileUpload(header *multipart.FileHeader) (*dto.FileUpload, multipart.File, error) {
	if header == nil {
		return nil, nil, nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &dto.FileUpload{Filename: header.Filename, Reader: f}, f, nil
}

// Register godoc
// @Summary Register a new user
// @Description Creates a user from a multipart form: text fields plus a mandatory avatar file and optional cover image.
// @Tags auth
// @Accept mpfd
// @Produce json
// @Param fullName formData string true "Full name"
// @Param username formData string true "Username (stored lowercase)"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req := dto.RegisterRequest{
		FullName: c.PostForm("fullName"),
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	// Avatar is mandatory; its absence is reported by the service so the
	// validation rules live in one place.
	if avatarHeader, err := c.FormFile("avatar"); err == nil {
		upload, f, err := formFileUpload(avatarHeader)
		if err != nil {
			respondError(c, err)
			return
		}
		defer f.Close()
		req.Avatar = upload
	}
	if coverHeader, err := c.FormFile("coverImage"); err == nil {
		upload, f, err := formFileUpload(coverHeader)
		if err != nil {
			respondError(c, err)
			return
		}
		defer f.Close()
		req.CoverImage = upload
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, dto.ToUserResponse(user), "User registered successfully")
}

// Login godoc
// @Summary User login
// @Description Authenticates by username or email and sets the token cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request body: "+err.Error())
		return
	}

	user, pair, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookies(c, pair.AccessToken, pair.RefreshToken)
	respond(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "User logged in successfully")
}

// Logout godoc
// @Summary User logout
// @Description Clears the stored refresh token and both cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	h.clearTokenCookies(c)
	respond(c, http.StatusOK, nil, "User logged out")
}

// Refresh godoc
// @Summary Rotate the refresh token
// @Description Exchanges the refresh token (cookie or body) for a fresh pair. A reused token fails.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRequest false "Refresh token when not using the cookie"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Router /users/refresh-token [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	presented, _ := c.Cookie(h.cfg.RefreshTokenCookieName)
	if presented == "" {
		var req dto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	user, pair, err := h.authService.Refresh(c.Request.Context(), presented)
	if err != nil {
		respondError(c, err)
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Refresh token rotated", slog.String("user_id", user.UserID))

	h.setTokenCookies(c, pair.AccessToken, pair.RefreshToken)
	respond(c, http.StatusOK, dto.LoginResponse{
		User:         dto.ToUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Access token refreshed")
}

// ChangePassword godoc
// @Summary Change the current user's password
// @Tags auth
// @Accept json
// @Produce json
// @Param change body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, nil, "Invalid request body: "+err.Error())
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Password changed successfully")
}
