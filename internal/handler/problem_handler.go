package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ottodot/mathpal-backend/internal/llm"
	"github.com/ottodot/mathpal-backend/internal/response"
	"github.com/ottodot/mathpal-backend/internal/service"
)

type ProblemHandler struct {
	problemService *service.ProblemService
}

func NewProblemHandler(problemService *service.ProblemService) *ProblemHandler {
	return &ProblemHandler{problemService: problemService}
}

// GenerateProblem godoc
// POST /api/v1/generate-problem
// Generates a new problem, stores it as a session, and returns it.
func (h *ProblemHandler) GenerateProblem(c *gin.Context) {
	session, err := h.problemService.Generate(c.Request.Context())
	if err != nil {
		var notCfg *llm.ErrNotConfigured
		switch {
		case errors.As(err, &notCfg):
			response.Fail(c, http.StatusInternalServerError, response.ErrLLMNotConfigured)
		case errors.Is(err, service.ErrGenerationFailed):
			response.Fail(c, http.StatusBadGateway, response.ErrGenerationFailed)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"session": session})
}
