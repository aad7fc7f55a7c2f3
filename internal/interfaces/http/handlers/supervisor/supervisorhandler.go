// Package supervisor exposes the console's super-admin endpoints.
package supervisor

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sanad/internal/application/supervisor/usecases"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type Handler struct {
	upsertUC       usecases.UpsertSupervisorExecutor
	updateStatusUC usecases.UpdateSupervisorStatusExecutor
	getUC          usecases.GetSupervisorExecutor
	listUC         usecases.ListSupervisorsExecutor
	logger         logger.Interface
}

func NewHandler(
	upsertUC usecases.UpsertSupervisorExecutor,
	updateStatusUC usecases.UpdateSupervisorStatusExecutor,
	getUC usecases.GetSupervisorExecutor,
	listUC usecases.ListSupervisorsExecutor,
) *Handler {
	return &Handler{
		upsertUC:       upsertUC,
		updateStatusUC: updateStatusUC,
		getUC:          getUC,
		listUC:         listUC,
		logger:         logger.NewLogger(),
	}
}

// Upsert handles POST /SuperAdmin/UpsertSuperAdmin
func (h *Handler) Upsert(c *gin.Context) {
	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for supervisor upsert", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.toCommand()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.upsertUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Created {
		utils.CreatedResponse(c, result.Supervisor, result.Message)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result.Message, result.Supervisor)
}

// UpdateStatus handles PATCH /SuperAdmin/UpdateSuperAdminStatus
func (h *Handler) UpdateStatus(c *gin.Context) {
	employeeID, err := parseEmployeeIDQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	statusID, err := strconv.Atoi(c.Query("statusId"))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("statusId must be an integer"))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateSupervisorStatusCommand{
		EmployeeID: employeeID,
		StatusID:   statusID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Supervisor status updated successfully", result)
}

// Get handles GET /SuperAdmin/GetSuperAdminById
func (h *Handler) Get(c *gin.Context) {
	employeeID, err := parseEmployeeIDQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetSupervisorQuery{
		EmployeeID: employeeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /SuperAdmin/GetAllSuperAdmins
func (h *Handler) List(c *gin.Context) {
	req := parseListSupervisorsRequest(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListSupervisorsQuery{
		StatusID:  req.StatusID,
		Search:    req.Search,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Supervisors, result.TotalCount)
}
