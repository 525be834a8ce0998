package responses

import "github.com/gin-gonic/gin"

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func JSON(c *gin.Context, statusCode int, success bool, data interface{}, message string, err error) {
	response := APIResponse{
		Success: success,
		Message: message,
		Data:    data,
	}

	if err != nil {
		response.Error = err.Error()
	}

	c.JSON(statusCode, response)
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	JSON(c, statusCode, true, data, message, nil)
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	JSON(c, statusCode, false, nil, message, err)
}

// Abort writes a failure and stops the handler chain. Used by middlewares.
func Abort(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, APIResponse{Success: false, Message: message})
}
