package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
)

// userHandler handles HTTP requests for the authenticated user's own record
// and watch history.
type userHandler struct {
	userService    portssvc.UserSvcFacade
	profileService portssvc.ProfileSvcFacade
}

// newUserHandler creates a new userHandler.
func newUserHandler(us portssvc.UserSvcFacade, ps portssvc.ProfileSvcFacade) *userHandler {
	return &userHandler{
		userService:    us,
		profileService: ps,
	}
}

// getMe godoc
// @Summary Get the current user
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToUserResponse(user), "Current user fetched successfully")
}

// getWatchHistory godoc
// @Summary Get the current user's watch history
// @Description Returns entries in watch order, duplicates included; entries whose video was deleted are omitted.
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/history [get]
func (h *userHandler) getWatchHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	history, err := h.profileService.GetWatchHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, history, "Watch history fetched successfully")
}

// recordWatch godoc
// @Summary Append a video to the current user's watch history
// @Produce json
// @Param videoId path string true "Video ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /users/history/{videoId} [post]
func (h *userHandler) recordWatch(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	if err := h.profileService.RecordWatch(c.Request.Context(), userID, c.Param("videoId")); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Watch recorded")
}
