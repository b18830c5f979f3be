package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the body of every error answer. Code is stable for clients,
// Message is meant for the person using the client.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// preserves original error for logging in ErrorHandler
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers without an underlying error, e.g. for rejected credentials.
func Abort(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, NewResponse(status, code, msg, nil))
}
