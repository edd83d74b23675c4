package handler

import (
	"net/http"

	"github.com/codetrail/codetrail/api/auth"
	"github.com/codetrail/codetrail/api/models"
	"github.com/codetrail/codetrail/apperr"
	"github.com/codetrail/codetrail/validate"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTutorials(c *gin.Context) {
	tutorials, err := h.db.ListTutorials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorials": models.ToTutorials(tutorials)})
}

func (h *Handler) GetTutorial(c *gin.Context) {
	id, appErr := paramID(c, "tutorialId", "Tutorial")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	tutorial, err := h.db.GetTutorial(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorial": models.ToTutorial(tutorial)})
}

func (h *Handler) ListTutorialsByTag(c *gin.Context) {
	id, appErr := paramID(c, "tagId", "Tag")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	tutorials, err := h.db.ListTutorialsByTag(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorials": models.ToTutorials(tutorials)})
}

func (h *Handler) ListUnapprovedTutorials(c *gin.Context) {
	tutorials, err := h.db.ListUnapprovedTutorials(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorials": models.ToTutorials(tutorials)})
}

func (h *Handler) CreateTutorial(c *gin.Context) {
	user := auth.CurrentUser(c)

	var in validate.TutorialInput
	bindInput(c, &in)
	if err := validate.Tutorial(&in); err != nil {
		respondError(c, err)
		return
	}

	tutorial, err := h.db.CreateTutorial(c.Request.Context(), &in, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tutorial": models.ToTutorial(tutorial)})
}

func (h *Handler) UpdateTutorial(c *gin.Context) {
	id, appErr := paramID(c, "tutorialId", "Tutorial")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	var in validate.TutorialUpdateInput
	bindInput(c, &in)
	if err := validate.TutorialUpdate(&in); err != nil {
		respondError(c, err)
		return
	}

	tutorial, err := h.db.UpdateTutorial(c.Request.Context(), id, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorial": models.ToTutorial(tutorial)})
}

type tutorialIDBody struct {
	TutorialID uint `json:"tutorialId"`
}

func (h *Handler) ToggleTutorialApproval(c *gin.Context) {
	var body tutorialIDBody
	bindInput(c, &body)
	if body.TutorialID == 0 {
		respondError(c, apperr.InvalidID("Tutorial"))
		return
	}

	tutorial, err := h.db.ToggleTutorialApproval(c.Request.Context(), body.TutorialID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorial": models.ToTutorial(tutorial)})
}

func (h *Handler) DeleteTutorial(c *gin.Context) {
	id, appErr := paramID(c, "tutorialId", "Tutorial")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	tutorial, err := h.db.DeleteTutorial(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorial": models.ToTutorial(tutorial)})
}

func (h *Handler) CancelTutorial(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, appErr := paramID(c, "tutorialId", "Tutorial")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	tutorial, err := h.db.CancelTutorial(c.Request.Context(), id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorial": models.ToTutorial(tutorial)})
}

func (h *Handler) AddUpvote(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, appErr := paramID(c, "tutorialId", "Tutorial")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	upvotes, err := h.db.AddUpvote(c.Request.Context(), id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorial": id, "upvotes": upvotes})
}

func (h *Handler) RemoveUpvote(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, appErr := paramID(c, "tutorialId", "Tutorial")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	upvotes, err := h.db.RemoveUpvote(c.Request.Context(), id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorial": id, "upvotes": upvotes})
}

func (h *Handler) AddComment(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, appErr := paramID(c, "tutorialId", "Tutorial")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	var in validate.CommentInput
	bindInput(c, &in)
	if err := validate.Comment(&in); err != nil {
		respondError(c, err)
		return
	}

	comments, err := h.db.AddComment(c.Request.Context(), id, in.Comment, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorial": id, "comments": models.ToComments(comments)})
}

func (h *Handler) RemoveComment(c *gin.Context) {
	user := auth.CurrentUser(c)

	tutorialID, appErr := paramID(c, "tutorialId", "Tutorial")
	if appErr != nil {
		respondError(c, appErr)
		return
	}
	commentID, appErr := paramID(c, "commentId", "Comment")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	comments, err := h.db.RemoveComment(c.Request.Context(), tutorialID, commentID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorial": tutorialID, "comments": models.ToComments(comments)})
}
