package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"helperhub/models"
	"helperhub/services/identity"
	"helperhub/services/profile"
	"helperhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxProfileImageBytes = 5 << 20

// ProfileHandler serves signup, profile and account-type endpoints.
type ProfileHandler struct {
	ProfileSvc  profile.ProfileService
	IdentitySvc identity.IdentityService
}

// SignupHandler handles POST /api/signup.
func (h *ProfileHandler) SignupHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "invalid signup payload", utils.NewValidationError("Invalid signup details."))
		return
	}
	id, err := h.IdentitySvc.GetIdentity(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "identity lookup failed", err)
		return
	}
	record, err := h.ProfileSvc.RegisterSignup(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, "signup failed", err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GetUserTypeHandler handles GET /api/me/type.
func (h *ProfileHandler) GetUserTypeHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	userType, err := h.ProfileSvc.ResolveUserType(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "user type resolution failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"userType": userType})
}

// GetProfileHandler handles GET /api/profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	p, err := h.ProfileSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "profile fetch failed", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler handles PATCH /api/profile. The body is either JSON
// or multipart with a "profile" JSON field and an optional "image" file.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var (
		req   models.ProfileUpdateRequest
		image *profile.ImageUpload
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if raw := c.PostForm("profile"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req); err != nil {
				respondError(c, "invalid profile field", utils.NewValidationError("Invalid profile details."))
				return
			}
		}
		fileHeader, err := c.FormFile("image")
		if err == nil {
			if fileHeader.Size > maxProfileImageBytes {
				respondError(c, "profile image too large", utils.NewValidationError("Profile image must be 5 MB or smaller."))
				return
			}
			file, err := fileHeader.Open()
			if err != nil {
				respondError(c, "profile image unreadable", utils.NewValidationError("Could not read profile image."))
				return
			}
			defer file.Close()
			image = &profile.ImageUpload{Reader: file, ContentType: fileHeader.Header.Get("Content-Type")}
		} else if err != http.ErrMissingFile {
			respondError(c, "invalid image part", utils.NewValidationError("Could not read profile image."))
			return
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "invalid profile payload", utils.NewValidationError("Invalid profile details."))
		return
	}

	id, err := h.IdentitySvc.GetIdentity(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "identity lookup failed", err)
		return
	}
	updated, err := h.ProfileSvc.UpsertProfile(c.Request.Context(), id, req, image)
	if err != nil {
		respondError(c, "profile update failed", err)
		return
	}
	logger.Debug("profile updated", zap.String("userID", userID), zap.Bool("image", image != nil))
	c.JSON(http.StatusOK, updated)
}

// GetCompletenessHandler handles GET /api/profile/completeness.
func (h *ProfileHandler) GetCompletenessHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	result, err := h.ProfileSvc.Completeness(c.Request.Context(), userID)
	if err != nil {
		respondError(c, "completeness check failed", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
