package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sufipulse-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondServiceError translates service-layer failures into one JSON error
// body. Validation blocks get 400, illegal transitions and guarded workflow
// conflicts 409, missing rows 404, everything else a logged 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var transitionErr *services.TransitionError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{"error": transitionErr.Error()})
	case errors.Is(err, services.ErrVocalistAlreadyAssigned),
		errors.Is(err, services.ErrNotAwaitingVocalist),
		errors.Is(err, services.ErrNotReadyToPost):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	default:
		log.Printf("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// pagination reads skip/limit query params with defaults.
func pagination(c *gin.Context, defaultLimit int) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return skip, limit
}
