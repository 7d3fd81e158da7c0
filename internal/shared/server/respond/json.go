package respond

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Juste120/cvPro/internal/shared/util"
)

const fallbackFileName = "download"

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}

// Attachment sends data as a download that clients must not cache. An unusable
// filename is replaced with a generic one.
func Attachment(c *gin.Context, filename, contentType string, data []byte) {
	filename, err := util.SanitizeFileName(filename)
	if err != nil {
		filename = fallbackFileName
	}
	h := c.Writer.Header()
	h.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	h.Set("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, contentType, data)
}
