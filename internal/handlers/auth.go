package handlers

import (
	"errors"
	"net/http"

	"sauna_api/internal/repository"
	"sauna_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Single, shared credentials payload for both sign-up and sign-in.
type authCredentials struct {
	Username string `json:"username" binding:"required" example:"owner@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.log.Infow("auth_bad_request_body", "err", err)
		writeError(c, http.StatusBadRequest, detailInvalidBodyPref+err.Error())
		return false
	}
	return true
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      200  {object}  map[string]int
// @Failure      400  {object}  models.HTTPError
// @Failure      403  {object}  models.HTTPError
// @Failure      409  {object}  models.HTTPError
// @Router       /auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	if h.opts.SignUpDisabled {
		writeError(c, http.StatusForbidden, detailSignUpDisabled)
		return
	}
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.log.Infow("auth_sign_up_failed", "username", input.Username, "err", err)
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			writeError(c, http.StatusConflict, repository.ErrDuplicateUsername.Error())
		case errors.Is(err, service.ErrEmptyUsername):
			writeError(c, http.StatusBadRequest, err.Error())
		default:
			writeError(c, http.StatusBadRequest, "could not create user")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// @Summary      Obtain a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  authCredentials  true  "Credentials"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  models.HTTPError
// @Failure      401  {object}  models.HTTPError
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input authCredentials
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		h.log.Infow("auth_sign_in_failed", "username", input.Username, "err", err)
		writeError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
