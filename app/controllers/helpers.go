// Package controllers holds the thin HTTP layer: decode, delegate to a
// service, translate the result to a JSON envelope.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"storefront/app/services"
	"storefront/pkg/bind"
	"storefront/pkg/logger"
	"storefront/pkg/response"
)

// bindJSON decodes and validates a JSON body into dest.
func bindJSON(r *http.Request, dest interface{}) (map[string]string, error) {
	return bind.JSON(r, dest)
}

// paramID reads the {id} URL parameter.
func paramID(r *http.Request) (uint, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// pageQuery reads ?page= and ?limit= with defaults handled downstream.
func pageQuery(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

// respondServiceError maps service error kinds onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrReferenceNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidArgument):
		response.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrConflict):
		response.Conflict(w, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
