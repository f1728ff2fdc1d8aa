package handler

import (
	"github.com/gin-gonic/gin"

	"basesync/internal/domain"
	"basesync/internal/service"
)

// SyncHandler handles sync endpoints.
type SyncHandler struct {
	syncService service.SyncService
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncService service.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Run handles POST /api/v1/sync/:domain
// @Summary      Run a synchronization pass
// @Description  Fetches the latest cadastro export and reconciles it against the client registry
// @Tags         sync
// @Produce      json
// @Param        domain path string true "Sheet domain" Enums(cadastro)
// @Success      200 {object} APIResponse{data=domain.SyncOutcome}
// @Failure      400 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Router       /sync/{domain} [post]
func (h *SyncHandler) Run(c *gin.Context) {
	d, err := domain.ParseDomain(c.Param("domain"))
	if err != nil {
		HandleError(c, err)
		return
	}

	outcome, err := h.syncService.Run(c.Request.Context(), d)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, outcome)
}
