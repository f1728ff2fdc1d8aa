package handler

import (
	"github.com/gin-gonic/gin"

	"basesync/internal/domain"
	"basesync/internal/service"
)

// SearchHandler handles search endpoints.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Groups handles GET /api/v1/search/groups
// @Summary      Cross-sheet group search
// @Description  Searches all three sheets for a group term; succeeds only when every sheet matches
// @Tags         search
// @Produce      json
// @Param        term query string true "Group name or fragment"
// @Success      200 {object} APIResponse{data=domain.AggregateResult}
// @Failure      400 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Router       /search/groups [get]
func (h *SearchHandler) Groups(c *gin.Context) {
	result, err := h.searchService.SearchGroups(c.Request.Context(), c.Query("term"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Clients handles GET /api/v1/search/clients
// @Summary      Cross-sheet client search
// @Description  Searches all three sheets for a client term; succeeds only when every sheet matches
// @Tags         search
// @Produce      json
// @Param        term query string true "Client name, trade name or fragment"
// @Success      200 {object} APIResponse{data=domain.AggregateResult}
// @Failure      400 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Router       /search/clients [get]
func (h *SearchHandler) Clients(c *gin.Context) {
	result, err := h.searchService.SearchClients(c.Request.Context(), c.Query("term"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// DomainGroups handles GET /api/v1/search/:domain/groups
// @Summary      Single-sheet group search
// @Description  Searches one sheet (cadastro, produtos or saida) for a group term
// @Tags         search
// @Produce      json
// @Param        domain path string true "Sheet domain" Enums(cadastro, produtos, saida)
// @Param        term query string true "Group name or fragment"
// @Success      200 {object} APIResponse{data=domain.SearchResult}
// @Failure      400 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Router       /search/{domain}/groups [get]
func (h *SearchHandler) DomainGroups(c *gin.Context) {
	d, err := domain.ParseDomain(c.Param("domain"))
	if err != nil {
		HandleError(c, err)
		return
	}

	result, err := h.searchService.SearchDomain(c.Request.Context(), d, c.Query("term"), domain.SearchGroups)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
