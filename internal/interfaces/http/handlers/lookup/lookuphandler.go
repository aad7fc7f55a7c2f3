// Package lookup exposes the shared Account/Common reference-data
// endpoint.
package lookup

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"sanad/internal/application/lookup/usecases"
	domain "sanad/internal/domain/lookup"
	"sanad/internal/shared/errors"
	"sanad/internal/shared/logger"
	"sanad/internal/shared/utils"
)

type CommonRequest struct {
	SPName    string `json:"spName" binding:"required"`
	Parameter string `json:"parameter"`
	Language  string `json:"language"`
}

type UpsertRequest struct {
	Entries []EntryPayload `json:"entries" binding:"required"`
}

type EntryPayload struct {
	SPName    string `json:"spName" binding:"required"`
	Parameter string `json:"parameter"`
	Language  string `json:"language"`
	Label     string `json:"label" binding:"required"`
	Value     string `json:"value"`
	SortOrder int    `json:"sortOrder"`
}

type Handler struct {
	queryUC  usecases.QueryLookupExecutor
	upsertUC usecases.UpsertLookupExecutor
	logger   logger.Interface
}

func NewHandler(
	queryUC usecases.QueryLookupExecutor,
	upsertUC usecases.UpsertLookupExecutor,
) *Handler {
	return &Handler{
		queryUC:  queryUC,
		upsertUC: upsertUC,
		logger:   logger.NewLogger(),
	}
}

// Common handles POST /Account/Common. The legacy contract serializes
// the rows as a JSON string under data, not as a nested array.
func (h *Handler) Common(c *gin.Context) {
	var req CommonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for lookup query", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	entries, err := h.queryUC.Execute(c.Request.Context(), usecases.QueryLookupQuery{
		SPName:    req.SPName,
		Parameter: req.Parameter,
		Language:  req.Language,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	encoded, err := json.Marshal(entries)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", string(encoded))
}

// Upsert handles POST /Account/UpsertCommon for seeding and maintaining
// reference rows.
func (h *Handler) Upsert(c *gin.Context) {
	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for lookup upsert", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	entries := make([]domain.Entry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, domain.Entry{
			SPName:    e.SPName,
			Parameter: e.Parameter,
			Language:  e.Language,
			Label:     e.Label,
			Value:     e.Value,
			SortOrder: e.SortOrder,
		})
	}

	err := h.upsertUC.Execute(c.Request.Context(), usecases.UpsertLookupCommand{
		Entries: entries,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Lookup entries saved successfully", nil)
}
