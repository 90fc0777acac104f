package handlers

import (
	"helperhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request logger from the Gin context, falling back
// to the global logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get("logger"); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}

// currentUserID returns the uid stored by the auth middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		utils.RespondError(c, utils.NewUnauthenticatedError("Please sign in to continue."))
		return "", false
	}
	return userID, true
}

// respondError logs err and writes the standard error body.
func respondError(c *gin.Context, msg string, err error) {
	logger := getLogger(c)
	if utils.StatusFor(err) >= 500 {
		logger.Error(msg, zap.Error(err))
	} else {
		logger.Debug(msg, zap.Error(err))
	}
	utils.RespondError(c, err)
}
