package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success writes a success envelope to the response.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	})
}

// Error writes an error envelope to the response.
func Error(ctx *gin.Context, status int, message string, details interface{}) {
	ctx.JSON(status, errBody(ctx, status, message, details))
}

// AbortError writes an error envelope and aborts the handler chain. Used by
// middleware to short-circuit the request.
func AbortError(ctx *gin.Context, status int, message string, details interface{}) {
	ctx.AbortWithStatusJSON(status, errBody(ctx, status, message, details))
}

func errBody(ctx *gin.Context, status int, message string, details interface{}) APIResponse[any] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse[any]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     details,
	}
}
