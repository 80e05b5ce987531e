package api

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/vkarpenko/flightdesk/internal/domain"
)

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}

// respondError performs the sole error-to-status mapping of the API.
// Business errors keep their exact message; binding failures return the
// field-to-message map; anything unanticipated becomes a 500.
func respondError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[jsonFieldName(fe.Field())] = "field is required"
		}
		c.JSON(http.StatusBadRequest, Response{Success: false, Message: "validation error", Data: fields})
		return
	}

	var de *domain.Error
	if errors.As(err, &de) {
		c.JSON(statusFor(de.Kind), Response{Success: false, Message: de.Message, Data: nil})
		return
	}

	c.JSON(http.StatusInternalServerError, Response{Success: false, Message: "ERROR INTERNO: " + err.Error(), Data: nil})
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrorBadInput:
		return http.StatusBadRequest
	case domain.ErrorNotFound:
		return http.StatusNotFound
	case domain.ErrorConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// jsonFieldName lowers the first rune of a struct field name so validation
// errors refer to the JSON key the client actually sent.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
