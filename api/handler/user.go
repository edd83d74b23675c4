package handler

import (
	"net/http"

	"github.com/codetrail/codetrail/api/auth"
	"github.com/codetrail/codetrail/api/models"
	"github.com/codetrail/codetrail/apperr"
	"github.com/codetrail/codetrail/validate"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListSubmittedTutorials(c *gin.Context) {
	user := auth.CurrentUser(c)

	tutorials, err := h.db.ListSubmittedTutorials(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tutorials": models.ToTutorials(tutorials)})
}

func (h *Handler) ListFavorites(c *gin.Context) {
	user := auth.CurrentUser(c)

	favorites, err := h.db.ListFavorites(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": models.ToTutorials(favorites)})
}

func (h *Handler) AddFavorite(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, appErr := paramID(c, "tutorialId", "Tutorial")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	favorites, err := h.db.AddFavorite(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": models.ToTutorials(favorites)})
}

func (h *Handler) RemoveFavorite(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, appErr := paramID(c, "tutorialId", "Tutorial")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	favorites, err := h.db.RemoveFavorite(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": models.ToTutorials(favorites)})
}

func (h *Handler) ListSubscriptions(c *gin.Context) {
	user := auth.CurrentUser(c)

	subs, err := h.db.ListSubscriptions(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": models.ToSubscriptions(subs)})
}

func (h *Handler) Subscribe(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, appErr := paramID(c, "trackId", "Track")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	subs, err := h.db.Subscribe(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": models.ToSubscriptions(subs)})
}

func (h *Handler) UpdateTrackProgress(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, appErr := paramID(c, "trackId", "Track")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	var in validate.TrackProgressInput
	bindInput(c, &in)
	if err := validate.Struct(&in); err != nil {
		respondError(c, err)
		return
	}

	subs, err := h.db.UpdateTrackProgress(c.Request.Context(), user.ID, id, *in.TrackProgressIndex)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": models.ToSubscriptions(subs)})
}

func (h *Handler) Unsubscribe(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, appErr := paramID(c, "trackId", "Track")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	subs, err := h.db.Unsubscribe(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": models.ToSubscriptions(subs)})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	user := auth.CurrentUser(c)

	var in validate.UserUpdateInput
	bindInput(c, &in)
	if err := validate.UserUpdate(&in); err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.db.UpdateUserName(c.Request.Context(), user.ID, in.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": models.ToUser(updated)})
}

func (h *Handler) ListNotifications(c *gin.Context) {
	user := auth.CurrentUser(c)

	notifications, err := h.db.ListNotifications(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": models.ToNotifications(notifications)})
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	user := auth.CurrentUser(c)

	notifications, err := h.db.MarkAllNotificationsRead(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": models.ToNotifications(notifications)})
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, appErr := paramID(c, "notificationId", "Notification")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	notifications, err := h.db.MarkNotificationRead(c.Request.Context(), user.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": models.ToNotifications(notifications)})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": models.ToUsers(users)})
}

type userIDBody struct {
	UserID uint `json:"userId"`
}

func (h *Handler) ToggleAdmin(c *gin.Context) {
	var body userIDBody
	bindInput(c, &body)
	if body.UserID == 0 {
		respondError(c, apperr.InvalidID("User"))
		return
	}

	user, err := h.db.ToggleAdmin(c.Request.Context(), body.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": models.ToUser(user)})
}

func (h *Handler) ToggleSuperAdmin(c *gin.Context) {
	var body userIDBody
	bindInput(c, &body)
	if body.UserID == 0 {
		respondError(c, apperr.InvalidID("User"))
		return
	}

	user, err := h.db.ToggleSuperAdmin(c.Request.Context(), body.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": models.ToUser(user)})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, appErr := paramID(c, "userId", "User")
	if appErr != nil {
		respondError(c, appErr)
		return
	}

	user, err := h.db.DeleteUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": models.ToUser(user)})
}
