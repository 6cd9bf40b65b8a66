package handlers

import (
	"net/http"
	"strconv"

	"backoffice/internal/domain"
	"backoffice/internal/export"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"
	"backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

type exportRequest struct {
	Format      string   `json:"format"`
	SelectedIDs []string `json:"selected_ids"`
}

// POST /api/:entity/export
//
// Renders the current filtered view of a collection (or just the selected
// records) into a downloadable file. The list filters ride in as the usual
// query parameters; the format and selection come in the body.
func ExportEntity(c *gin.Context) {
	e, ok := entityFromParam(c)
	if !ok {
		return
	}

	var req exportRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if len(req.SelectedIDs) == 0 {
		req.SelectedIDs = utils.SplitList(c.Query("ids"))
	}

	format, ok := export.ParseFormat(req.Format)
	if !ok {
		RespondDomainError(c, domain.ValidationError{Field: "format", Msg: "unsupported export format"})
		return
	}

	requestedBy := ""
	if rc := middleware.GetRequestContext(c); rc.UserID != 0 {
		requestedBy = strconv.FormatInt(int64(rc.UserID), 10)
	}

	artifact, err := getDeps().Exports.Export(c.Request.Context(), services.ExportRequest{
		Entity:      e,
		Format:      format,
		Query:       parseListQuery(c),
		SelectedIDs: req.SelectedIDs,
		RequestedBy: requestedBy,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+artifact.Filename+`"`)
	c.Header("X-Row-Count", strconv.Itoa(artifact.RowCount))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// GET /api/exports
func ExportHistoryList(c *gin.Context) {
	limit := 0
	if v, err := strconv.Atoi(c.Query("limit")); err == nil {
		limit = v
	}

	rows, err := getDeps().History.ListRecent(limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// GET /api/exports/:id
func ExportHistoryDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "must be a positive integer"})
		return
	}

	row, err := getDeps().History.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": row})
}
