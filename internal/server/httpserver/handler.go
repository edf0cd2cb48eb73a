package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mp28jam28/board-auth/internal/common"
	"github.com/mp28jam28/board-auth/internal/server/services"
)

type registerRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Password   string `json:"password"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

// claimsBody is the user object echoed back by /verify.
type claimsBody struct {
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
	Department string `json:"department,omitempty"`
	Role       string `json:"role,omitempty"`
	ExpiresAt  int64  `json:"exp"`
}

func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Health Check OK"})
}

func (s *HTTPServer) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrorMissingField)
		return
	}

	err := s.users.Register(c.Request.Context(), services.RegisterRequest{
		Username:   req.Username,
		Email:      req.Email,
		Name:       req.Name,
		Password:   req.Password,
		Department: req.Department,
		Role:       req.Role,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "username", req.Username)
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrorMissingField)
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *HTTPServer) verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, common.ErrorMissingField)
		return
	}

	claims, err := s.users.VerifyToken(c.Request.Context(), req.Token)
	if err != nil {
		s.writeError(c, err)
		return
	}

	user := claimsBody{
		Username:   claims.Username,
		Email:      claims.Email,
		Name:       claims.Name,
		Department: claims.Department,
		Role:       claims.Role,
	}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Unix()
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token is valid", "user": user})
}

func (s *HTTPServer) notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found", "code": "not_found"})
}

// writeError maps a service error onto the transport contract. Bodies keep a
// stable machine-readable code and never echo internal error detail; the
// detail goes to the log instead.
func (s *HTTPServer) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "code": "missing_fields"})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists", "code": "user_exists"})
	case errors.Is(err, common.ErrorUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "code": "invalid_credentials"})
	case errors.Is(err, common.ErrInvalidToken):
		// The wrapped cause distinguishes expired/malformed/bad-signature;
		// it is logged here and never surfaced.
		s.logger.Debug(c.Request.Context(), "token rejected", "error", err.Error())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "code": "invalid_token"})
	default:
		s.logger.Error(c.Request.Context(), "operation failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error", "code": "internal_error"})
	}
}
