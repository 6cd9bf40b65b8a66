package handlers

import (
	"io"
	"net/http"

	"backoffice/internal/domain"

	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

// POST /api/uploads
//
// Accepts a multipart file and forwards it to the media host, returning the
// hosted URL for the admin UI to attach to a room or hall payload.
func UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondDomainError(c, domain.ValidationError{Field: "file", Msg: "file is required"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		RespondDomainError(c, domain.ValidationError{Field: "file", Msg: "file exceeds 10MB"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "failed to read upload", Err: err})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "failed to read upload", Err: err})
		return
	}

	result, err := getDeps().Uploader.Upload(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}
