package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/service"
	"github.com/qa-forum-api/internal/validation"
	"github.com/rs/zerolog"
)

// AnswerHandler handles answer requests
type AnswerHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(services *service.Services, log zerolog.Logger) *AnswerHandler {
	return &AnswerHandler{
		services: services,
		log:      log.With().Str("handler", "answer").Logger(),
	}
}

type answerRequest struct {
	QuestionID string        `json:"id"`
	Answer     models.Answer `json:"answer"`
}

type deleteAnswerRequest struct {
	ID         string `json:"id"`
	QuestionID string `json:"qid"`
}

// GetAnswers handles GET /answers
func (h *AnswerHandler) GetAnswers(c *gin.Context) {
	answers, err := h.services.Answer.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}

// AddAnswer handles POST /answers
func (h *AnswerHandler) AddAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateAnswer(req.Answer.Text); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	question, err := h.services.Answer.Add(c.Request.Context(), sessionEmail(c), req.QuestionID, &req.Answer)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// UpdateAnswer handles POST /updateanswer
func (h *AnswerHandler) UpdateAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateAnswer(req.Answer.Text); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	question, err := h.services.Answer.Update(c.Request.Context(), req.QuestionID, &req.Answer)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// EditAnswer handles POST /editanswer, returning the answer with comments
func (h *AnswerHandler) EditAnswer(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	answer, err := h.services.Answer.Edit(c.Request.Context(), req.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

// DeleteAnswer handles POST /deleteanswer
func (h *AnswerHandler) DeleteAnswer(c *gin.Context) {
	var req deleteAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	question, err := h.services.Answer.Remove(c.Request.Context(), actingEmail(c), req.ID, req.QuestionID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}
