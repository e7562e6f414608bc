package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"schoolactivities/internal/delivery/http/helpers"
	"schoolactivities/internal/domain"
	"schoolactivities/internal/metrics"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityService
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityService) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ListActivitiesSuccessResponse is the success response envelope for GET /activities (200).
type ListActivitiesSuccessResponse struct {
	Data  map[string]*domain.Activity `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns every activity keyed by name, including schedule, capacity, and current participants.
// @Tags activities
// @Produce json
// @Success 200 {object} controllers.ListActivitiesSuccessResponse "data maps activity name to its details"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, activities)
}

// SignupSuccessResponse is the success response envelope for POST /activities/{activityName}/signup (200).
type SignupSuccessResponse struct {
	Data  *MessageResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// activityNameAndEmail extracts and validates the activityName path value and
// the email query parameter. On failure it writes a 400 and returns ok=false.
func activityNameAndEmail(w http.ResponseWriter, r *http.Request) (name, email string, ok bool) {
	name = r.PathValue("activityName")
	if strings.TrimSpace(name) == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing activity name")
		return "", "", false
	}
	email = strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "email is required")
		return "", "", false
	}
	if !emailRegex.MatchString(email) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid email")
		return "", "", false
	}
	return name, email, true
}

// Signup godoc
// @Summary Sign a student up for an activity
// @Description Adds the student identified by email to the activity's participant list. Capacity is not enforced.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} controllers.SignupSuccessResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (already signed up or invalid input)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activities/{activityName}/signup [post]
func (c *ActivityController) Signup(w http.ResponseWriter, r *http.Request) {
	name, email, ok := activityNameAndEmail(w, r)
	if !ok {
		return
	}

	msg, err := c.Service.Signup(r.Context(), name, email)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "activity not found")
			return
		}
		if errors.Is(err, domain.ErrAlreadySignedUp) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "student is already signed up")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	metrics.SignupsTotal.WithLabelValues(name).Inc()
	helpers.WriteJSONSuccess(w, http.StatusOK, &MessageResponse{Message: msg})
}

// UnregisterSuccessResponse is the success response envelope for DELETE /activities/{activityName}/unregister (200).
type UnregisterSuccessResponse struct {
	Data  *MessageResponse  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Unregister godoc
// @Summary Remove a student from an activity
// @Description Removes the student identified by email from the activity's participant list.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} controllers.UnregisterSuccessResponse "data contains a confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (not signed up or invalid input)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activities/{activityName}/unregister [delete]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	name, email, ok := activityNameAndEmail(w, r)
	if !ok {
		return
	}

	msg, err := c.Service.Unregister(r.Context(), name, email)
	if err != nil {
		if errors.Is(err, domain.ErrActivityNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "activity not found")
			return
		}
		if errors.Is(err, domain.ErrNotSignedUp) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "student is not signed up for this activity")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	metrics.UnregistrationsTotal.WithLabelValues(name).Inc()
	helpers.WriteJSONSuccess(w, http.StatusOK, &MessageResponse{Message: msg})
}
