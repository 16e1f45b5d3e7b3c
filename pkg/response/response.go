package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Envelope is the uniform shape of every API response. Data is null on
// failure.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success writes a 200 envelope with the given data and message.
func Success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// Error writes a failure envelope with a null data field.
func Error(c *gin.Context, status int, message string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, Envelope{Success: false, Message: message, Data: nil})
}

// AbortError writes a failure envelope and aborts the handler chain.
// Used by middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message, Data: nil})
}

// Internal logs the underlying error and answers with the generic
// message. Internal detail never reaches the client.
func Internal(c *gin.Context, logger *logrus.Logger, err error) {
	if logger != nil {
		logger.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	Error(c, http.StatusBadRequest, "Something went wrong")
}
