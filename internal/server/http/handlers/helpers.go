package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/agronhq/agron/internal/domain/errors"
	"github.com/agronhq/agron/internal/domain/model"
	"github.com/agronhq/agron/internal/server/http/middleware"
)

// CurrentActor extracts the authenticated actor from context.
func CurrentActor(c *gin.Context) model.Actor {
	val, ok := c.Get(middleware.ActorContextKey)
	if !ok {
		return model.Actor{}
	}
	actor, _ := val.(model.Actor)
	return actor
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// writeError renders an error response with a human-readable message body.
func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// writeDomainError maps domain errors onto HTTP statuses shared by the
// marketplace handlers.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domainErrors.ErrUnauthorized):
		writeError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrInvalidStatus),
		errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidInput),
		errors.Is(err, domainErrors.ErrInsufficientQuantity),
		errors.Is(err, domainErrors.ErrCropUnavailable),
		errors.Is(err, domainErrors.ErrInvalidRole):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, domainErrors.ErrJobNotOpen),
		errors.Is(err, domainErrors.ErrActiveOrders),
		errors.Is(err, domainErrors.ErrAlreadyExists):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal server error")
	}
}
