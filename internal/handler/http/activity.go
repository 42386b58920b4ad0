package http

import (
	"net/http"

	"github.com/emptrack/tracker-backend-go/internal/domain/employee"
	"github.com/emptrack/tracker-backend-go/internal/handler/http/response"
	"github.com/emptrack/tracker-backend-go/internal/pkg/validator"
	"github.com/emptrack/tracker-backend-go/internal/service/activity"
	"github.com/go-chi/chi/v5"
)

type ActivityHandler interface {
	ListRecent(w http.ResponseWriter, r *http.Request)
}

type activityHandlerImpl struct {
	activityService activity.ActivityService
}

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &activityHandlerImpl{activityService: activityService}
}

// ListRecent implements ActivityHandler.
func (h *activityHandlerImpl) ListRecent(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if !validator.IsValidUUID(employeeID) {
		response.HandleError(w, employee.ErrEmployeeNotFound)
		return
	}

	results, err := h.activityService.ListRecent(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
