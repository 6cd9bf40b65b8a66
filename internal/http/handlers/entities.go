package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

// entityFromParam resolves the :entity path segment. Unknown names are a 404,
// same as an unknown route.
func entityFromParam(c *gin.Context) (domain.Entity, bool) {
	e, ok := domain.EntityByName(c.Param("entity"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "unknown collection",
			"entities": domain.EntityNames(),
		})
		return domain.Entity{}, false
	}
	return e, true
}

// parseListQuery reads the shared list parameters: search, status, date_from,
// date_to, page, page_size. Dates are calendar days; date_to is stretched to
// the end of its day so the range stays inclusive.
func parseListQuery(c *gin.Context) services.ListQuery {
	q := services.ListQuery{
		Search: utils.NormalizeSpace(c.Query("search")),
		Status: strings.TrimSpace(c.Query("status")),
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("page_size")); err == nil {
		q.PageSize = v
	}
	if t, ok := utils.ParseAnyTime(c.Query("date_from")); ok {
		q.DateFrom = &t
	}
	if t, ok := utils.ParseAnyTime(c.Query("date_to")); ok {
		end := t.Add(24*time.Hour - time.Second)
		q.DateTo = &end
	}
	return q
}

// GET /api/:entity
func ListEntity(c *gin.Context) {
	e, ok := entityFromParam(c)
	if !ok {
		return
	}

	res, err := getDeps().Lists.List(c.Request.Context(), e, parseListQuery(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/:entity/:id
func GetEntity(c *gin.Context) {
	e, ok := entityFromParam(c)
	if !ok {
		return
	}

	record, err := getDeps().Gateway.Get(c.Request.Context(), e, c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": record})
}

// POST /api/:entity
func CreateEntity(c *gin.Context) {
	e, ok := entityFromParam(c)
	if !ok {
		return
	}

	var payload map[string]any
	if !BindJSONOrError(c, &payload) {
		return
	}

	d := getDeps()
	record, err := d.Gateway.Create(c.Request.Context(), e, payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	d.Lists.Invalidate(e)
	utils.LogEvent(middleware.GetRequestID(c), "entities", "create", e.Name)
	c.JSON(http.StatusCreated, gin.H{"data": record})
}

// PUT /api/:entity/:id
func UpdateEntity(c *gin.Context) {
	e, ok := entityFromParam(c)
	if !ok {
		return
	}

	var payload map[string]any
	if !BindJSONOrError(c, &payload) {
		return
	}

	d := getDeps()
	record, err := d.Gateway.Update(c.Request.Context(), e, c.Param("id"), payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	d.Lists.Invalidate(e)
	utils.LogEvent(middleware.GetRequestID(c), "entities", "update", e.Name+" "+c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"data": record})
}

// DELETE /api/:entity/:id
func DeleteEntity(c *gin.Context) {
	e, ok := entityFromParam(c)
	if !ok {
		return
	}

	d := getDeps()
	if err := d.Gateway.Remove(c.Request.Context(), e, c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	d.Lists.Invalidate(e)
	utils.LogEvent(middleware.GetRequestID(c), "entities", "delete", e.Name+" "+c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
