package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondStatus(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	RespondStatus(c, http.StatusCreated, data, message)
}

func RespondStatus(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// errorStatus maps sentinel errors to the status and public message.
var errorStatus = []struct {
	err     error
	code    int
	message string
}{
	{ErrInvalidPage, http.StatusBadRequest, "Page must be greater than 0"},
	{ErrInvalidPageSize, http.StatusBadRequest, "Page size must be between 1 and 100"},
	{ErrInvalidInput, http.StatusBadRequest, ""},
	{ErrSessionNotFound, http.StatusNotFound, "Quiz session not found or expired"},
	{ErrInvalidTransition, http.StatusConflict, ""},
	{ErrEmailTaken, http.StatusConflict, "Email already registered"},
	{ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{ErrAccountNotFound, http.StatusNotFound, "Account not found"},
	{ErrHabitNotFound, http.StatusNotFound, "Habit not found"},
	{ErrQuestionNotFound, http.StatusNotFound, "Question not found"},
	{ErrLibraryItemNotFound, http.StatusNotFound, "Library item not found"},
	{ErrChatUnavailable, http.StatusServiceUnavailable, "AI chat is not configured"},
	{ErrEmptyCompletion, http.StatusBadGateway, "No response from AI"},
	{ErrChatFailed, http.StatusBadGateway, "Failed to get AI response"},
}

// HandleServiceError writes the response for an error returned by a
// service. Errors wrapping ErrInvalidInput or ErrInvalidTransition expose
// their own message; unknown errors are logged and hidden.
func HandleServiceError(c *gin.Context, err error) {
	for _, e := range errorStatus {
		if !errors.Is(err, e.err) {
			continue
		}
		message := e.message
		if message == "" {
			message = err.Error()
		}
		RespondError(c, e.code, message)
		return
	}

	_ = c.Error(err)
	zap.L().Error("unhandled service error",
		zap.Error(err),
		zap.String("trace_id", c.GetString("trace_id")),
		zap.String("path", c.FullPath()))
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
