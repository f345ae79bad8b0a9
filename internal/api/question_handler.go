package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qa-forum-api/internal/models"
	"github.com/qa-forum-api/internal/service"
	"github.com/qa-forum-api/internal/validation"
	"github.com/rs/zerolog"
)

// QuestionHandler handles question, vote and comment requests
type QuestionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(services *service.Services, log zerolog.Logger) *QuestionHandler {
	return &QuestionHandler{
		services: services,
		log:      log.With().Str("handler", "question").Logger(),
	}
}

type questionRequest struct {
	Question models.Question `json:"question"`
	Tags     []string        `json:"tags"`
}

type idRequest struct {
	ID string `json:"id"`
}

type voteRequest struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	QuestionID string `json:"qid"`
	Change     int    `json:"change"`
}

type commentRequest struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	QuestionID string         `json:"qid"`
	Comment    models.Comment `json:"comment"`
}

// GetQuestions handles GET /questions
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	questions, err := h.services.Question.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetData handles GET /data, the bulk fetch the UI boots from
func (h *QuestionHandler) GetData(c *gin.Context) {
	ctx := c.Request.Context()

	questions, err := h.services.Question.GetAll(ctx)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	tags, err := h.services.Tag.GetAll(ctx)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	answers, err := h.services.Answer.GetAll(ctx)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions": questions,
		"tags":      tags,
		"answers":   answers,
	})
}

// ViewQuestion handles GET /posts/question/:id. Every fetch through this
// route counts a view.
func (h *QuestionHandler) ViewQuestion(c *gin.Context) {
	question, err := h.services.Question.View(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// EditQuestion handles POST /editquestion, a populated fetch with no view
// side effect
func (h *QuestionHandler) EditQuestion(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	question, err := h.services.Question.Edit(c.Request.Context(), req.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// AddQuestion handles POST /questions
func (h *QuestionHandler) AddQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := h.validate(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	question, err := h.services.Question.Add(c.Request.Context(), sessionEmail(c), &req.Question, req.Tags)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// UpdateQuestion handles POST /updatequestion
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req questionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := h.validate(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	question, err := h.services.Question.Update(c.Request.Context(), actingEmail(c), &req.Question, req.Tags)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// DeleteQuestion handles POST /deletequestion
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	profile, err := h.services.Question.Remove(c.Request.Context(), actingEmail(c), req.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UserAnswers handles POST /useranswers, returning the question with its
// answers partitioned around the acting user's own
func (h *QuestionHandler) UserAnswers(c *gin.Context) {
	var req idRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	answers, err := h.services.Question.UserAnswers(c.Request.Context(), actingEmail(c), req.ID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, answers)
}

// Vote handles POST /vote for questions, answers and comments
func (h *QuestionHandler) Vote(c *gin.Context) {
	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	question, err := h.services.Question.Vote(c.Request.Context(), sessionEmail(c), req.Type, req.QuestionID, req.ID, req.Change)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// AddComment handles POST /comments
func (h *QuestionHandler) AddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if errs := validation.ValidateComment(req.Comment.Text); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	question, err := h.services.Question.AddComment(c.Request.Context(), sessionEmail(c), req.Type, req.QuestionID, req.ID, &req.Comment)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) validate(req *questionRequest) []validation.ValidationError {
	errs := validation.ValidateQuestion(req.Question.Title, req.Question.Summary, req.Question.Text)
	return append(errs, validation.ValidateTags(req.Tags)...)
}
