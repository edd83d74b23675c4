package handler

import (
	"net/http"

	"github.com/codetrail/codetrail/api/auth"
	"github.com/codetrail/codetrail/api/models"
	"github.com/codetrail/codetrail/validate"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListFeedbacks(c *gin.Context) {
	feedbacks, err := h.db.ListFeedbacks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedbacks": models.ToFeedbacks(feedbacks)})
}

func (h *Handler) GetFeedback(c *gin.Context) {
	id, appErr := paramID(c, "feedbackId", "Feedback")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	feedback, err := h.db.GetFeedback(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": models.ToFeedback(feedback)})
}

func (h *Handler) CreateFeedback(c *gin.Context) {
	user := auth.CurrentUser(c)

	var in validate.FeedbackInput
	bindInput(c, &in)
	if err := validate.Feedback(&in); err != nil {
		respondError(c, err)
		return
	}

	feedback, err := h.db.CreateFeedback(c.Request.Context(), in.Title, in.Message, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"feedback": models.ToFeedback(feedback)})
}

func (h *Handler) MarkAllFeedbacksRead(c *gin.Context) {
	feedbacks, err := h.db.MarkAllFeedbacksRead(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedbacks": models.ToFeedbacks(feedbacks)})
}

func (h *Handler) MarkFeedbackRead(c *gin.Context) {
	h.setFeedbackRead(c, true)
}

func (h *Handler) MarkFeedbackUnread(c *gin.Context) {
	h.setFeedbackRead(c, false)
}

func (h *Handler) setFeedbackRead(c *gin.Context, read bool) {
	id, appErr := paramID(c, "feedbackId", "Feedback")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	feedback, err := h.db.SetFeedbackRead(c.Request.Context(), id, read)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": models.ToFeedback(feedback)})
}

func (h *Handler) DeleteFeedback(c *gin.Context) {
	id, appErr := paramID(c, "feedbackId", "Feedback")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	feedback, err := h.db.DeleteFeedback(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": models.ToFeedback(feedback)})
}
