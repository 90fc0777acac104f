package handlers

import (
	"net/http"

	"helperhub/models"
	"helperhub/services/identity"
	"helperhub/services/profile"
	"helperhub/services/request"
	"helperhub/utils"

	"github.com/gin-gonic/gin"
)

// RequestHandler serves service requests.
type RequestHandler struct {
	RequestSvc  request.RequestService
	ProfileSvc  profile.ProfileService
	IdentitySvc identity.IdentityService
}

// SendRequestHandler handles POST /api/requests.
func (h *RequestHandler) SendRequestHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var in models.SendRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, "invalid request payload", utils.NewValidationError("A provider must be selected."))
		return
	}
	id, err := h.IdentitySvc.GetIdentity(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "identity lookup failed", err)
		return
	}
	req, err := h.RequestSvc.SendRequest(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, "send request failed", err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// ListRequestsHandler handles GET /api/requests.
func (h *RequestHandler) ListRequestsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	userType, err := h.ProfileSvc.ResolveUserType(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "user type resolution failed", err)
		return
	}
	reqs, err := h.RequestSvc.ListRequests(c.Request.Context(), userID, userType)
	if err != nil {
		respondError(c, "list requests failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userType": userType, "requests": reqs})
}
