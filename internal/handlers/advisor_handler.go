package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Divyanshusamdani/Expense-Tracker/internal/services"
)

// AdvisorHandler handles finance questions
type AdvisorHandler struct {
	advisorService services.AdvisorServicer
}

// NewAdvisorHandler creates a new AdvisorHandler
func NewAdvisorHandler(advisorService services.AdvisorServicer) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// AskRequest represents a question for the advisor
type AskRequest struct {
	Question string `json:"question" binding:"required,max=500"`
}

// Ask answers a question about the user's finances
// @Summary     Ask the advisor
// @Description Answer a free-text question from the user's totals. A failing language model yields a degraded answer, not an error.
// @Tags        advisor
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AskRequest true "Question"
// @Success     200 {object} services.Answer "Answer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /advisor/ask [post]
func (h *AdvisorHandler) Ask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	answer, err := h.advisorService.Ask(c.Request.Context(), userID, req.Question)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, answer)
}
