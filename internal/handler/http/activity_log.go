package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peopledesk/peopledesk-backend-go/internal/domain/activitylog"
	"github.com/peopledesk/peopledesk-backend-go/internal/handler/http/response"
)

type LogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByEmployeeID(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type logHandlerImpl struct {
	logService activitylog.LogService
}

func NewLogHandler(logService activitylog.LogService) LogHandler {
	return &logHandlerImpl{logService: logService}
}

// Create implements LogHandler
func (h *logHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req activitylog.CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.logService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Activity log created", result)
}

// GetByEmployeeID implements LogHandler
func (h *logHandlerImpl) GetByEmployeeID(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	results, err := h.logService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// GetAll implements LogHandler
func (h *logHandlerImpl) GetAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.logService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements LogHandler
func (h *logHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Log ID is required", nil)
		return
	}

	var req activitylog.UpdateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.logService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity log updated", result)
}

// Delete implements LogHandler
func (h *logHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Log ID is required", nil)
		return
	}

	if err := h.logService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Activity log deleted", nil)
}
