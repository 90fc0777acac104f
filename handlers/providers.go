package handlers

import (
	"net/http"

	"helperhub/services/listing"
	"helperhub/services/matching"
	"helperhub/services/request"
	"helperhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves the provider listing.
type ProviderHandler struct {
	MatchingSvc matching.MatchingService
	RequestSvc  request.RequestService
}

// ListProvidersHandler handles GET /api/providers?category=&subService=&location=.
// subService may repeat; every listed sub-service must be offered.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	logger := getLogger(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var q matching.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, "invalid provider query", utils.NewValidationError("Invalid search filters."))
		return
	}

	state := listing.New().SelectCategory(q.Category).SetLocation(q.Location)
	for _, name := range q.SubServices {
		state = state.ToggleSubService(name)
	}
	requested, err := h.RequestSvc.RequestedJobSeekers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "requested lookup failed", err)
		return
	}
	for jobSeekerID := range requested {
		state = state.MarkRequested(jobSeekerID)
	}

	providers, err := h.MatchingSvc.FindProviders(c.Request.Context(), state.Query())
	if err != nil {
		respondError(c, "provider search failed", err)
		return
	}
	logger.Debug("providers matched", zap.Int("count", len(providers)), zap.String("category", state.Category))
	c.JSON(http.StatusOK, gin.H{
		"category":    state.Category,
		"subServices": state.SubServices,
		"location":    state.Location,
		"providers":   state.Cards(providers),
	})
}
