package api

import (
	"cloudvault/internal/auth"
	"cloudvault/internal/entity"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	msgCredentialsRequired = "Email and password are required"
	msgLoginSuccessful     = "Login successful"
	msgInvalidCredentials  = "Invalid email or password"
	msgUserRegistered      = "User registered successfully"
)

// bindCredentials answers 405 or 400 itself and reports whether the handler
// may continue.
func bindCredentials(c *gin.Context) (entity.AuthRequest, bool) {
	var req entity.AuthRequest
	if c.Request.Method != http.MethodPost {
		MethodNotAllowed(c, http.MethodPost)
		return req, false
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, ErrCodeMissingCredentials, msgCredentialsRequired)
		return req, false
	}
	// Whitespace-only values count as missing, matching the form's required
	// check. A plain presence test would let them through to a 401 instead.
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		BadRequest(c, ErrCodeMissingCredentials, msgCredentialsRequired)
		return req, false
	}
	return req, true
}

// SignIn checks the body against the placeholder credential pair. There is no
// session: a 200 only tells the form to move on.
func (h *HTTPHandler) SignIn(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	if err := h.verifier.Verify(req.Email, req.Password); err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			logrus.WithError(err).Error("credential verification failed")
		}
		Unauthorized(c, ErrCodeInvalidCredentials, msgInvalidCredentials)
		return
	}

	c.JSON(http.StatusOK, entity.AuthResponse{Message: msgLoginSuccessful})
}

// SignUp accepts any well-formed body. Nothing is stored, so repeating a
// registration succeeds every time.
func (h *HTTPHandler) SignUp(c *gin.Context) {
	if _, ok := bindCredentials(c); !ok {
		return
	}
	c.JSON(http.StatusCreated, entity.AuthResponse{Message: msgUserRegistered})
}
