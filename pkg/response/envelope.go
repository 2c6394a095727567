// Package response builds the JSON envelope every endpoint answers with.
package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/gogotex/backend/blog-service/pkg/validation"
)

// Envelope is the uniform response body.
//
//	success: {success: true,  statusCode, message, data?}
//	error:   {success: false, statusCode, message, error?, errors?}
type Envelope struct {
	Success    bool                    `json:"success"`
	StatusCode int                     `json:"statusCode"`
	Message    string                  `json:"message"`
	Data       interface{}             `json:"data,omitempty"`
	Error      interface{}             `json:"error,omitempty"`
	Errors     []validation.FieldError `json:"errors,omitempty"`
}

// Success builds a success envelope. data may be nil.
func Success(code int, message interface{}, data interface{}) Envelope {
	return Envelope{
		Success:    true,
		StatusCode: code,
		Message:    toString(message),
		Data:       data,
	}
}

// Error builds an error envelope. A *validation.Error payload lifts its first
// field message to the top level and exposes all field errors under errors.
func Error(code int, message interface{}, payload interface{}) Envelope {
	env := Envelope{
		Success:    false,
		StatusCode: code,
		Message:    toString(message),
	}
	if payload == nil {
		return env
	}
	if err, ok := payload.(error); ok {
		env.Error = err.Error()
		var verr *validation.Error
		if errors.As(err, &verr) && len(verr.Fields) > 0 {
			env.Message = verr.Fields[0].Message
			env.Errors = verr.Fields
		}
		return env
	}
	env.Error = payload
	return env
}

// JSON writes env with the given HTTP status.
func JSON(c *gin.Context, httpStatus int, env Envelope) {
	c.JSON(httpStatus, env)
}

// InternalError writes a 500 envelope carrying err's message and err itself.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Error(http.StatusInternalServerError, err.Error(), err))
}

func toString(v interface{}) string {
	switch m := v.(type) {
	case nil:
		return ""
	case string:
		return m
	case error:
		return m.Error()
	case fmt.Stringer:
		return m.String()
	default:
		return fmt.Sprint(m)
	}
}
