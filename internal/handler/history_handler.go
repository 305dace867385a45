package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ottodot/mathpal-backend/internal/response"
	"github.com/ottodot/mathpal-backend/internal/service"
)

type HistoryHandler struct {
	historyService *service.HistoryService
}

func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// GetHistory godoc
// GET /api/v1/history
// Returns the most recent problem sessions, newest first.
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	sessions, err := h.historyService.Recent(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sessions": sessions})
}
