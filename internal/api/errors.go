package api

import (
	"errors"
	"log"
	"net/http"

	"sms-dashboard/internal/dashboard"
	"sms-dashboard/internal/gateway"

	"github.com/gin-gonic/gin"
)

// respondError maps a gateway or validation failure onto the screen's response.
func respondError(c *gin.Context, err error, loginRoute string) {
	var (
		verr *dashboard.ValidationError
		rerr *gateway.RequestError
		terr *gateway.TransportError
	)
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Fields})
	case errors.Is(err, gateway.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "redirect": loginRoute})
	case errors.As(err, &rerr):
		c.JSON(rerr.StatusCode, gin.H{"error": rerr.Message})
	case errors.As(err, &terr):
		log.Printf("Backend unreachable on %s %s: %v", c.Request.Method, c.Request.URL.Path, terr.Err)
		c.JSON(http.StatusBadGateway, gin.H{"error": terr.Error()})
	case errors.Is(err, gateway.ErrMissingToken):
		log.Printf("Login on %s returned no token", c.Request.URL.Path)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		log.Printf("Error handling %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func invalidField(field, message string) error {
	return &dashboard.ValidationError{Fields: map[string]string{field: message}}
}
