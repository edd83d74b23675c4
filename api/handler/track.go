package handler

import (
	"net/http"

	"github.com/codetrail/codetrail/api/auth"
	"github.com/codetrail/codetrail/api/models"
	"github.com/codetrail/codetrail/apperr"
	"github.com/codetrail/codetrail/validate"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTracks(c *gin.Context) {
	tracks, err := h.db.ListTracks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": models.ToTracks(tracks)})
}

func (h *Handler) GetTrack(c *gin.Context) {
	id, appErr := paramID(c, "trackId", "Track")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	track, err := h.db.GetTrack(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"track": models.ToTrack(track)})
}

func (h *Handler) ListUnapprovedTracks(c *gin.Context) {
	tracks, err := h.db.ListUnapprovedTracks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": models.ToTracks(tracks)})
}

func (h *Handler) CreateTrack(c *gin.Context) {
	user := auth.CurrentUser(c)

	var in validate.TrackInput
	bindInput(c, &in)
	if err := validate.Track(&in); err != nil {
		respondError(c, err)
		return
	}

	track, err := h.db.CreateTrack(c.Request.Context(), &in, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"track": models.ToTrack(track)})
}

func (h *Handler) UpdateTrack(c *gin.Context) {
	id, appErr := paramID(c, "trackId", "Track")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	var in validate.TrackUpdateInput
	bindInput(c, &in)
	if err := validate.TrackUpdate(&in); err != nil {
		respondError(c, err)
		return
	}

	track, err := h.db.UpdateTrack(c.Request.Context(), id, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"track": models.ToTrack(track)})
}

type trackIDBody struct {
	TrackID uint `json:"trackId"`
}

func (h *Handler) ToggleTrackApproval(c *gin.Context) {
	var body trackIDBody
	bindInput(c, &body)
	if body.TrackID == 0 {
		respondError(c, apperr.InvalidID("Track"))
		return
	}

	track, err := h.db.ToggleTrackApproval(c.Request.Context(), body.TrackID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"track": models.ToTrack(track)})
}

func (h *Handler) DeleteTrack(c *gin.Context) {
	id, appErr := paramID(c, "trackId", "Track")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	track, err := h.db.DeleteTrack(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"track": models.ToTrack(track)})
}

func (h *Handler) CancelTrack(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, appErr := paramID(c, "trackId", "Track")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	track, err := h.db.CancelTrack(c.Request.Context(), id, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"track": models.ToTrack(track)})
}
