package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"wanderwise/pkg/middleware"
	"wanderwise/pkg/utils"
)

// callerID returns the authenticated account or uuid.Nil for anonymous calls.
func callerID(c *gin.Context) uuid.UUID {
	id, err := uuid.Parse(c.GetString(middleware.CtxUserID))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// requireCaller responds 401 when no account is attached to the request.
func requireCaller(c *gin.Context) (uuid.UUID, bool) {
	id := callerID(c)
	if id == uuid.Nil {
		utils.HandleServiceError(c, utils.ErrUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// optionalQueryUUID treats an absent parameter as nil.
func optionalQueryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return nil, false
	}
	return &id, true
}

func parsePaging(c *gin.Context, defaultSize string) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("limit", defaultSize))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return 0, 0, false
	}

	return page, pageSize, true
}

// queryInt falls back to def when the parameter is missing or malformed.
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

func queryFloat(c *gin.Context, name string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Query(name)), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// queryList accepts repeated (?tags=a&tags=b) and comma separated (?tags=a,b) values.
func queryList(c *gin.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryArray(name) {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func sortDesc(c *gin.Context) bool {
	return !strings.EqualFold(c.DefaultQuery("sortOrder", "desc"), "asc")
}
