package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"admin_backend/internal/generator"
	"admin_backend/internal/repositories"
	"admin_backend/internal/responses"
	"admin_backend/internal/services"
	"admin_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// listParams reads ?page=&per_page=&sort=&filter[col]= from the query string.
func listParams(c *gin.Context) repositories.ListParams {
	page, _ := strconv.Atoi(c.Query("page"))
	perPage, _ := strconv.Atoi(c.Query("per_page"))
	return repositories.ListParams{
		Page:    page,
		PerPage: perPage,
		Sort:    c.Query("sort"),
		Filters: c.QueryMap("filter"),
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid id")
		return 0, false
	}
	return id, true
}

// fail maps service and repository errors onto HTTP statuses.
func fail(c *gin.Context, op string, err error, message string) {
	switch {
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, generator.ErrTableNotFound):
		responses.Fail(c, http.StatusNotFound, err, "Resource not found")
	case errors.Is(err, repositories.ErrInvalidQuery), errors.Is(err, services.ErrEmptyPayload):
		responses.Fail(c, http.StatusBadRequest, err, message)
	case errors.Is(err, services.ErrInvalidInput):
		responses.Fail(c, http.StatusUnprocessableEntity, err, message)
	default:
		log.Printf("ERROR in %s handler: %v", op, err)
		responses.Fail(c, http.StatusInternalServerError, err, message)
	}
}
