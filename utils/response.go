package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse defines the uniform structure for API responses.
type JSONResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success returns a standard success response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, JSONResponse{Code: 0, Message: "success", Data: data})
}

// SuccessWithMessage returns a success response carrying a user-facing status text.
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, JSONResponse{Code: 0, Message: message, Data: data})
}

// Error returns a standard error response.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, JSONResponse{Code: status, Message: message})
}

// ErrorWithData returns an error response carrying extra payload.
func ErrorWithData(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, JSONResponse{Code: status, Message: message, Data: data})
}
