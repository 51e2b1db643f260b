package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResponseData is the envelope of every API response.
type ResponseData struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a 200 response carrying data.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, ResponseData{Status: http.StatusOK, Message: message, Data: data})
}

// Created sends a 201 response carrying the created resource.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, ResponseData{Status: http.StatusCreated, Message: message, Data: data})
}

// Error sends an error envelope with the given status.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	c.JSON(statusCode, errorBody(statusCode, errorMessage))
}

// Abort sends an error envelope and stops the handler chain. Middleware uses
// it so later handlers never run for a rejected request.
func Abort(c *gin.Context, statusCode int, errorMessage string) {
	c.AbortWithStatusJSON(statusCode, errorBody(statusCode, errorMessage))
}

func errorBody(statusCode int, errorMessage string) ResponseData {
	return ResponseData{
		Status:  statusCode,
		Message: http.StatusText(statusCode),
		Error:   errorMessage,
	}
}

func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

func Unauthorized(c *gin.Context, errorMessage string) {
	Error(c, http.StatusUnauthorized, errorMessage)
}

func Forbidden(c *gin.Context, errorMessage string) {
	Error(c, http.StatusForbidden, errorMessage)
}

func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}
