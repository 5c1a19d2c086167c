package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkpress-io/inkpress/internal/shared/constants"
)

// currentUserID reads the authenticated user from the request context. The
// second return is false for guests.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// cartIdentity resolves the cart owner for optionally authenticated routes.
// Signed-in users are keyed by user ID, guests by the session header.
func cartIdentity(c *gin.Context) (*uint, *string) {
	if userID, ok := currentUserID(c); ok {
		return &userID, nil
	}
	if session := c.GetHeader(constants.HeaderCartSession); session != "" {
		return nil, &session
	}
	return nil, nil
}

func paramUint(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

func parsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	if err != nil || page < 1 {
		page = constants.DefaultPage
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}
