package handler

import (
	"net/http"

	"github.com/codetrail/codetrail/api/auth"
	"github.com/codetrail/codetrail/api/models"
	"github.com/codetrail/codetrail/apperr"
	"github.com/codetrail/codetrail/validate"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTags(c *gin.Context) {
	tags, err := h.db.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": models.ToTags(tags)})
}

func (h *Handler) ListUnapprovedTags(c *gin.Context) {
	tags, err := h.db.ListUnapprovedTags(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": models.ToTags(tags)})
}

func (h *Handler) CreateTag(c *gin.Context) {
	user := auth.CurrentUser(c)

	var in validate.TagInput
	bindInput(c, &in)
	if err := validate.Tag(&in); err != nil {
		respondError(c, err)
		return
	}

	tag, err := h.db.CreateTag(c.Request.Context(), in.Name, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tag": models.ToTag(tag)})
}

type tagUpdateBody struct {
	TagID uint   `json:"tagId"`
	Name  string `json:"name"`
}

func (h *Handler) UpdateTag(c *gin.Context) {
	var body tagUpdateBody
	bindInput(c, &body)
	if body.TagID == 0 {
		respondError(c, apperr.InvalidID("Tag"))
		return
	}
	in := validate.TagInput{Name: body.Name}
	if err := validate.Tag(&in); err != nil {
		respondError(c, err)
		return
	}

	tag, err := h.db.UpdateTagName(c.Request.Context(), body.TagID, in.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": models.ToTag(tag)})
}

type tagIDBody struct {
	TagID uint `json:"tagId"`
}

func (h *Handler) ToggleTagApproval(c *gin.Context) {
	var body tagIDBody
	bindInput(c, &body)
	if body.TagID == 0 {
		respondError(c, apperr.InvalidID("Tag"))
		return
	}

	tag, err := h.db.ToggleTagApproval(c.Request.Context(), body.TagID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": models.ToTag(tag)})
}

func (h *Handler) DeleteTag(c *gin.Context) {
	id, appErr := paramID(c, "tagId", "Tag")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	tag, err := h.db.DeleteTag(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": models.ToTag(tag)})
}
