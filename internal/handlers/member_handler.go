package handlers

import (
	"net/http"
	"strconv"

	"fitlife-service/internal/domain/member"
	"fitlife-service/internal/pkg/response"
	memberservice "fitlife-service/internal/service/member"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *memberservice.MemberService
}

func NewMemberHandler(memberService *memberservice.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) Create(c *gin.Context) {
	var req member.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	m, err := h.memberService.CreateMember(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "Failed to create member")
		return
	}

	response.Success(c, http.StatusCreated, "Member created", m)
}

func (h *MemberHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid member ID", err)
		return
	}

	m, err := h.memberService.GetMember(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err, "Member not found")
		return
	}

	response.Success(c, http.StatusOK, "OK", m)
}

func (h *MemberHandler) List(c *gin.Context) {
	var filters member.MemberListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "Invalid query parameters", err)
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, err, "Failed to list members")
		return
	}

	response.Success(c, http.StatusOK, "OK", members)
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid member ID", err)
		return
	}

	var req member.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	m, err := h.memberService.UpdateMember(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err, "Failed to update member")
		return
	}

	response.Success(c, http.StatusOK, "Member updated", m)
}

func (h *MemberHandler) Deactivate(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.ValidationError(c, "Invalid member ID", err)
		return
	}

	if err := h.memberService.DeactivateMember(c.Request.Context(), id); err != nil {
		response.FromError(c, err, "Failed to deactivate member")
		return
	}

	response.Success(c, http.StatusOK, "Member deactivated", nil)
}

func parseIDParam(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
