package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/group"
	"github.com/peopledesk/peopledesk-backend-go/internal/handler/http/response"
)

type GroupHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddMembers(w http.ResponseWriter, r *http.Request)
	RemoveMember(w http.ResponseWriter, r *http.Request)
	SendMessage(w http.ResponseWriter, r *http.Request)
}

type groupHandlerImpl struct {
	groupService group.GroupService
}

func NewGroupHandler(groupService group.GroupService) GroupHandler {
	return &groupHandlerImpl{groupService: groupService}
}

// Create implements GroupHandler
func (h *groupHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req group.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.groupService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Group created", result)
}

// GetByID implements GroupHandler
func (h *groupHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Group ID is required", nil)
		return
	}

	result, err := h.groupService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAll implements GroupHandler
func (h *groupHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.groupService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements GroupHandler
func (h *groupHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Group ID is required", nil)
		return
	}

	var req group.UpdateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.groupService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Group updated", result)
}

// Delete implements GroupHandler
func (h *groupHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Group ID is required", nil)
		return
	}

	if err := h.groupService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Group deleted", nil)
}

// AddMembers implements GroupHandler
func (h *groupHandlerImpl) AddMembers(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupId")
	if groupID == "" {
		response.BadRequest(w, "Group ID is required", nil)
		return
	}

	var req group.AddMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.groupService.AddMembers(r.Context(), groupID, req.MemberIDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Members added", result)
}

// RemoveMember implements GroupHandler
func (h *groupHandlerImpl) RemoveMember(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupId")
	memberID := chi.URLParam(r, "memberId")
	if groupID == "" || memberID == "" {
		response.BadRequest(w, "Group ID and member ID are required", nil)
		return
	}

	result, err := h.groupService.RemoveMember(r.Context(), groupID, memberID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Member removed", result)
}

// SendMessage implements GroupHandler
func (h *groupHandlerImpl) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req group.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	summary, err := h.groupService.SendMessage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Message dispatched", summary)
}
