package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"basesync/internal/service"
)

// ClientHandler handles client registry endpoints.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles GET /api/v1/clients
// @Summary      List persisted clients
// @Description  Lists clients from the registry, active and inactive, ordered by code
// @Tags         clients
// @Produce      json
// @Param        offset query int false "Pagination offset" default(0)
// @Param        limit query int false "Pagination limit" default(50)
// @Success      200 {object} APIResponse{data=[]domain.Client,meta=PagMeta}
// @Failure      400 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	offset := 0
	limit := 50
	if offsetStr := c.Query("offset"); offsetStr != "" {
		v, err := strconv.Atoi(offsetStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'offset': must be an integer")
			return
		}
		offset = v
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		v, err := strconv.Atoi(limitStr)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid 'limit': must be an integer")
			return
		}
		limit = v
	}

	clients, total, err := h.clientService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, clients, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Get handles GET /api/v1/clients/:code
// @Summary      Get a client by code
// @Tags         clients
// @Produce      json
// @Param        code path string true "Client code"
// @Success      200 {object} APIResponse{data=domain.Client}
// @Failure      404 {object} APIResponse
// @Failure      500 {object} APIResponse
// @Router       /clients/{code} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.clientService.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, client)
}
