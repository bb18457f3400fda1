package httperr

import (
	"log/slog"
	"net/http"

	"yacht-charter/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps a usecase error onto its HTTP status by error class.
// Anything unclassified is logged and reported as a bare 500.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	switch status {
	case http.StatusInternalServerError:
		slog.Error("unhandled error",
			"path", c.Request.URL.Path,
			"error", err,
			"stack", errs.ExtractStackLines(err, 12))
		AbortWithError(c, status, err, "Internal server error", nil)
	case http.StatusUnprocessableEntity:
		fields := errs.Fields(err)
		if len(fields) == 0 {
			fields = errs.FieldErrors{{Message: errs.Cause(err).Error()}}
		}
		AbortWithError(c, status, err, "Validation failed", fields)
	default:
		AbortWithError(c, status, err, errs.Cause(err).Error(), nil)
	}
}

func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrPrecondition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// BadRequest reports a malformed request (unparsable body, id or query).
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
