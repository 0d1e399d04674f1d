package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"extracurricular/internal/delivery/http/helpers"
	"extracurricular/internal/domain"
)

type ActivityController struct {
	Logger  *slog.Logger
	Service domain.ActivityRegistry
}

func NewActivityController(logger *slog.Logger, svc domain.ActivityRegistry) *ActivityController {
	return &ActivityController{
		Logger:  logger,
		Service: svc,
	}
}

// ParticipantRequest identifies a participant on an activity roster.
// ActivityName comes from the path and Email from the query string.
type ParticipantRequest struct {
	ActivityName string `param:"activityName" validate:"required"`
	Email        string `query:"email" validate:"required"`
}

func participantRequest(r *http.Request) *ParticipantRequest {
	return &ParticipantRequest{
		ActivityName: r.PathValue("activityName"),
		Email:        r.URL.Query().Get("email"),
	}
}

// ListActivitiesSuccessResponse is the success response envelope for GET /activities (200).
type ListActivitiesSuccessResponse struct {
	Data  map[string]*domain.Activity `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// ListActivities godoc
// @Summary List all activities
// @Description Returns every activity keyed by name, with description, schedule, capacity and current participants.
// @Tags activities
// @Produce json
// @Success 200 {object} controllers.ListActivitiesSuccessResponse "data maps activity name to details"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activities [get]
func (c *ActivityController) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := c.Service.ListActivities(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if activities == nil {
		activities = map[string]*domain.Activity{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, activities)
}

// ConfirmationSuccessResponse is the success response envelope for signup and unregister (200).
type ConfirmationSuccessResponse struct {
	Data  *domain.Confirmation `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// SignUp godoc
// @Summary Sign up for an activity
// @Description Adds the email to the activity roster. Fails when the activity does not exist, the email is already signed up, or the activity is full.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Participant email"
// @Success 200 {object} controllers.ConfirmationSuccessResponse "data.message: Signed up {email} for {activity}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, already_enrolled or activity_full"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activities/{activityName}/signup [post]
func (c *ActivityController) SignUp(w http.ResponseWriter, r *http.Request) {
	req := participantRequest(r)
	if !helpers.ValidateRequest(w, req) {
		return
	}

	conf, err := c.Service.Enroll(r.Context(), req.ActivityName, req.Email)
	if err != nil {
		c.writeRegistryError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conf)
}

// Unregister godoc
// @Summary Unregister from an activity
// @Description Removes the email from the activity roster.
// @Tags activities
// @Produce json
// @Param activityName path string true "Activity name"
// @Param email query string true "Participant email"
// @Success 200 {object} controllers.ConfirmationSuccessResponse "data.message: Unregistered {email} from {activity}"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or not_enrolled"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /activities/{activityName}/participants [delete]
func (c *ActivityController) Unregister(w http.ResponseWriter, r *http.Request) {
	req := participantRequest(r)
	if !helpers.ValidateRequest(w, req) {
		return
	}

	conf, err := c.Service.Withdraw(r.Context(), req.ActivityName, req.Email)
	if err != nil {
		c.writeRegistryError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, conf)
}

func (c *ActivityController) writeRegistryError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Activity not found")
	case errors.Is(err, domain.ErrAlreadyEnrolled):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeAlreadyEnrolled, "Student is already signed up")
	case errors.Is(err, domain.ErrNotEnrolled):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeNotEnrolled, "Student is not signed up for this activity")
	case errors.Is(err, domain.ErrCapacityExceeded):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeActivityFull, "Activity is full")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
