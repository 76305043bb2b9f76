package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vidtube/vidtube_backend/internal/core/ports/services"
	"github.com/vidtube/vidtube_backend/internal/dto"
	"github.com/vidtube/vidtube_backend/internal/middleware"
)

// subscriptionHandler handles HTTP requests for subscription edges.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

// newSubscriptionHandler creates a new subscriptionHandler.
func newSubscriptionHandler(ss portssvc.SubscriptionSvcFacade) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: ss}
}

// ToggleResponse reports the edge state after a toggle.
type ToggleResponse struct {
	Subscribed bool `json:"subscribed"`
}

// toggle godoc
// @Summary Toggle a subscription
// @Description Subscribes the caller to the channel, or unsubscribes if already subscribed.
// @Tags subscriptions
// @Produce json
// @Param channelId path string true "Channel (user) ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIResponse
// @Security BearerAuth
// @Router /subscriptions/{channelId} [post]
func (h *subscriptionHandler) toggle(c *gin.Context) {
	subscriberID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	subscribed, err := h.subscriptionService.Toggle(c.Request.Context(), subscriberID, c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Channel unsubscribed"
	if subscribed {
		message = "Channel subscribed"
	}
	respond(c, http.StatusOK, ToggleResponse{Subscribed: subscribed}, message)
}

// listSubscribers godoc
// @Summary List a channel's subscribers
// @Tags subscriptions
// @Produce json
// @Param channelId path string true "Channel (user) ID"
// @Success 200 {object} dto.APIResponse
// @Router /subscriptions/{channelId}/subscribers [get]
func (h *subscriptionHandler) listSubscribers(c *gin.Context) {
	subscribers, err := h.subscriptionService.ListSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToChannelCards(subscribers), "All subscribers fetched successfully")
}

// listSubscribedChannels godoc
// @Summary List the channels a user is subscribed to
// @Tags subscriptions
// @Produce json
// @Param channelId path string true "Subscriber (user) ID"
// @Success 200 {object} dto.APIResponse
// @Router /subscriptions/{channelId}/channels [get]
func (h *subscriptionHandler) listSubscribedChannels(c *gin.Context) {
	channels, err := h.subscriptionService.ListSubscribedChannels(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, dto.ToChannelCards(channels), "All subscribed channels fetched successfully")
}
