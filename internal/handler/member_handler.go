package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccbc-ox/boathouse-api/internal/middleware"
	"github.com/ccbc-ox/boathouse-api/internal/service"
	appErrors "github.com/ccbc-ox/boathouse-api/pkg/errors"
	"github.com/ccbc-ox/boathouse-api/pkg/response"
)

// MemberHandler exposes roster endpoints.
type MemberHandler struct {
	members *service.MemberService
}

// NewMemberHandler constructs MemberHandler.
func NewMemberHandler(members *service.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

// List godoc
// @Summary List club members
// @Tags Members
// @Produce json
// @Param force query bool false "Bypass the cache"
// @Success 200 {object} response.Envelope
// @Router /members [get]
func (h *MemberHandler) List(c *gin.Context) {
	force := c.Query("force") == "true"
	hit := !force && h.members.Cached()

	members, err := h.members.List(c.Request.Context(), force)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.JSON(c, http.StatusOK, members, middleware.ExtractMeta(c))
}

// Get godoc
// @Summary Get one member
// @Tags Members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} response.Envelope
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c *gin.Context) {
	member, err := h.members.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, member)
}

// Create godoc
// @Summary Sign up a new member
// @Tags Members
// @Accept json
// @Produce json
// @Param payload body service.CreateMemberRequest true "Member payload"
// @Success 201 {object} response.Envelope
// @Router /members [post]
func (h *MemberHandler) Create(c *gin.Context) {
	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	member, err := h.members.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, member)
}
