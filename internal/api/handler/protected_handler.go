package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/sweet-shop-api/internal/api/middleware"
)

// ProtectedHandler serves the claim-echo routes used to exercise the auth gates.
type ProtectedHandler struct{}

func NewProtectedHandler() *ProtectedHandler {
	return &ProtectedHandler{}
}

type claimsResponse struct {
	Message string `json:"message"`
	Subject string `json:"sub"`
	Role    string `json:"role"`
}

// User handles GET /api/protected/user for any authenticated identity.
func (h *ProtectedHandler) User(c echo.Context) error {
	sub, _ := c.Get(middleware.CtxSubject).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	return c.JSON(http.StatusOK, claimsResponse{Message: "Hello user", Subject: sub, Role: role})
}

// Admin handles GET /api/protected/admin, admin role required.
func (h *ProtectedHandler) Admin(c echo.Context) error {
	sub, _ := c.Get(middleware.CtxSubject).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	return c.JSON(http.StatusOK, claimsResponse{Message: "Hello admin", Subject: sub, Role: role})
}
