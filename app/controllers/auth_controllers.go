package controllers

import (
	"net/http"

	"storefront/app/services"
	"storefront/pkg/middleware"
	"storefront/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register creates a new account and returns it with its first token pair.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegisterInput
	if errs, err := bindJSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, tokens, err := c.service.Register(input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Created(w, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"token":    tokens,
	})
}

// Login verifies credentials and returns a fresh token pair.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if errs, err := bindJSON(r, &input); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, tokens, err := c.service.Login(input)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"token":    tokens,
	})
}

// Account returns the authenticated user.
func (c *AuthController) Account(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	user, err := c.service.Account(userID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}
