package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffpoint/hr-backend-go/internal/domain/member"
	"github.com/staffpoint/hr-backend-go/internal/handler/http/response"
)

type MemberHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type memberHandlerImpl struct {
	memberService member.Service
}

func NewMemberHandler(memberService member.Service) MemberHandler {
	return &memberHandlerImpl{memberService: memberService}
}

// Register implements MemberHandler.
func (h *memberHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req member.RegisterMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.memberService.Register(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Registration queued for approval", result)
}

// List implements MemberHandler.
func (h *memberHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.memberService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Approve implements MemberHandler.
func (h *memberHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var req member.ApproveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.memberService.Approve(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Member approved and added to payroll", result)
}

// Reject implements MemberHandler.
func (h *memberHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.memberService.Reject(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Registration rejected", nil)
}
