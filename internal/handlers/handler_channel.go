package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/middleware"
)

// channelHandler handles HTTP requests for public channel profiles.
type channelHandler struct {
	profileService portssvc.ProfileSvcFacade
}

// newChannelHandler creates a new channelHandler.
func newChannelHandler(ps portssvc.ProfileSvcFacade) *channelHandler {
	return &channelHandler{profileService: ps}
}

// getChannelProfile godoc
// @Summary Get a channel's profile
// @Description Returns the channel's public fields, subscriber counts, and whether the (optional) viewer is subscribed.
// @Tags channels
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /channels/{username} [get]
func (h *channelHandler) getChannelProfile(c *gin.Context) {
	// viewerID stays empty for anonymous requests; the profile's
	// isSubscribed flag is false in that case.
	viewerID, _ := middleware.GetUserIDFromContext(c)

	profile, err := h.profileService.GetChannelProfile(c.Request.Context(), c.Param("username"), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, profile, "Channel profile fetched successfully")
}
