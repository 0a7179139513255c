package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "minify/internal/errors"
	"minify/internal/models"
	"minify/internal/services"
)

// AdminHandler exposes user management to administrators.
type AdminHandler struct {
	userService  services.UserServicer
	auditService services.AuditServicer
	sessions     Sessions
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(userService services.UserServicer, auditService services.AuditServicer, sessions Sessions) *AdminHandler {
	return &AdminHandler{userService: userService, auditService: auditService, sessions: sessions}
}

// AdminUpdateUserRequest lists what an administrator may change on an account.
type AdminUpdateUserRequest struct {
	FullName *string            `json:"full_name" binding:"omitempty,max=200"`
	Role     *models.UserRole   `json:"role" binding:"omitempty,user_role"`
	Status   *models.UserStatus `json:"status" binding:"omitempty,user_status"`
}

// ListUsers returns a filtered page of accounts
// @Summary     List users
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       role      query string false "user or admin"
// @Param       status    query string false "active, pending or suspended"
// @Param       q         query string false "Email or name fragment"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.User]
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Router      /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, err := bindPage(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := services.UserFilter{Query: c.Query("q")}
	if v := c.Query("role"); v != "" {
		role := models.UserRole(v)
		if role != models.UserRoleUser && role != models.UserRoleAdmin {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown role"))
			return
		}
		filter.Role = &role
	}
	if v := c.Query("status"); v != "" {
		status := models.UserStatus(v)
		filter.Status = &status
	}

	result, err := h.userService.ListUsers(c.Request.Context(), filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateUser changes the role, status or name of an account
// @Summary     Update a user
// @Description Suspending a user also drops their cached dashboard
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                 true "User ID"
// @Param       request body AdminUpdateUserRequest true "Fields to change"
// @Success     200 {object} models.User
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Forbidden"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /admin/users/{id} [patch]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	adminID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AdminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}
	if id == adminID && req.Status != nil && *req.Status == models.UserStatusSuspended {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "cannot suspend yourself"))
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, services.UserPatch{
		FullName: req.FullName,
		Role:     req.Role,
		Status:   req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	if user.Status == models.UserStatusSuspended {
		h.sessions.Drop(user.ID)
	}

	changes := map[string]interface{}{}
	if req.Role != nil {
		changes["role"] = *req.Role
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	h.auditService.Log(adminID, "ADMIN_UPDATE_USER", "user", user.ID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, gin.H{"user": user})
}
