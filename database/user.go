package database

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/codetrail/codetrail/apperr"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetUser returns a user by id.
func (d *DB) GetUser(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := d.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("User")
		}
		log.Error("failed to get user", "error", err)
		return nil, err
	}
	return &user, nil
}

// GetOrCreateUser looks a user up by the identity provider subject,
// creating the record on first login.
func (d *DB) GetOrCreateUser(ctx context.Context, googleID, name, email, picture string) (*User, error) {
	var user User
	err := d.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("failed to get user by google id", "error", err)
		return nil, err
	}

	user = User{
		Name:           name,
		GoogleID:       googleID,
		Email:          email,
		DisplayPicture: picture,
	}
	if err := d.db.WithContext(ctx).Create(&user).Error; err != nil {
		log.Error("failed to create user", "error", err)
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every user (super-admin operation).
func (d *DB) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := d.db.WithContext(ctx).Order("name asc").Find(&users).Error; err != nil {
		log.Error("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// UpdateUserName changes the profile display name. Name snapshots on
// earlier submissions and comments are intentionally left as they were.
func (d *DB) UpdateUserName(ctx context.Context, id uint, name string) (*User, error) {
	user, err := d.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = name
	if err := d.db.WithContext(ctx).Model(user).Update("name", name).Error; err != nil {
		log.Error("failed to update user name", "error", err)
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user record (super-admin operation). The delete
// is hard so the identity provider subject can register again.
func (d *DB) DeleteUser(ctx context.Context, id uint) (*User, error) {
	user, err := d.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).Unscoped().Select(clause.Associations).Delete(user).Error; err != nil {
		log.Error("failed to delete user", "error", err)
		return nil, err
	}
	return user, nil
}

// ToggleAdmin flips the admin flag based on the just-read state.
// Revoking admin also revokes super-admin in the same write, keeping
// the "super-admin implies admin" invariant.
func (d *DB) ToggleAdmin(ctx context.Context, id uint) (*User, error) {
	user, err := d.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsAdmin = !user.IsAdmin
	updates := map[string]any{"is_admin": user.IsAdmin}
	if !user.IsAdmin {
		user.IsSuperAdmin = false
		updates["is_super_admin"] = false
	}
	if err := d.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
		log.Error("failed to toggle admin status", "error", err)
		return nil, err
	}
	return user, nil
}

// ToggleSuperAdmin flips the super-admin flag based on the just-read
// state. Granting super-admin also grants admin in the same write.
func (d *DB) ToggleSuperAdmin(ctx context.Context, id uint) (*User, error) {
	user, err := d.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.IsSuperAdmin = !user.IsSuperAdmin
	updates := map[string]any{"is_super_admin": user.IsSuperAdmin}
	if user.IsSuperAdmin {
		user.IsAdmin = true
		updates["is_admin"] = true
	}
	if err := d.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
		log.Error("failed to toggle super admin status", "error", err)
		return nil, err
	}
	return user, nil
}

// ListFavorites returns the user's favorite tutorials, populated.
func (d *DB) ListFavorites(ctx context.Context, userID uint) ([]Tutorial, error) {
	user, err := d.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var favorites []Tutorial
	err = tutorialScope(d.db.WithContext(ctx)).
		Joins("JOIN user_favorites ON user_favorites.tutorial_id = tutorials.id").
		Where("user_favorites.user_id = ?", user.ID).
		Order("title asc").
		Find(&favorites).Error
	if err != nil {
		log.Error("failed to list favorites", "error", err)
		return nil, err
	}
	return favorites, nil
}

// AddFavorite marks a tutorial as a favorite. Set semantics: adding an
// existing favorite is a no-op.
func (d *DB) AddFavorite(ctx context.Context, userID, tutorialID uint) ([]Tutorial, error) {
	user, err := d.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := d.GetTutorial(ctx, tutorialID); err != nil {
		return nil, err
	}
	err = d.db.WithContext(ctx).Model(user).Association("Favorites").Append(&Tutorial{Model: gorm.Model{ID: tutorialID}})
	if err != nil {
		log.Error("failed to add favorite", "error", err)
		return nil, err
	}
	return d.ListFavorites(ctx, userID)
}

// RemoveFavorite unmarks a favorite; removing an absent one is a no-op.
func (d *DB) RemoveFavorite(ctx context.Context, userID, tutorialID uint) ([]Tutorial, error) {
	user, err := d.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	err = d.db.WithContext(ctx).Model(user).Association("Favorites").Delete(&Tutorial{Model: gorm.Model{ID: tutorialID}})
	if err != nil {
		log.Error("failed to remove favorite", "error", err)
		return nil, err
	}
	return d.ListFavorites(ctx, userID)
}

// ListSubmittedTutorials returns the tutorials the user submitted.
func (d *DB) ListSubmittedTutorials(ctx context.Context, userID uint) ([]Tutorial, error) {
	var tutorials []Tutorial
	err := tutorialScope(d.db.WithContext(ctx)).
		Where("submitted_by_id = ?", userID).
		Order("created_at desc").
		Find(&tutorials).Error
	if err != nil {
		log.Error("failed to list submitted tutorials", "error", err)
		return nil, err
	}
	return tutorials, nil
}

// ListSubscriptions returns the user's track subscriptions.
func (d *DB) ListSubscriptions(ctx context.Context, userID uint) ([]TrackSubscription, error) {
	var subs []TrackSubscription
	err := d.db.WithContext(ctx).
		Preload("Track").
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&subs).Error
	if err != nil {
		log.Error("failed to list subscriptions", "error", err)
		return nil, err
	}
	return subs, nil
}

// Subscribe adds a track subscription with progress index zero.
// Subscribing while already subscribed returns the current state
// unchanged.
func (d *DB) Subscribe(ctx context.Context, userID, trackID uint) ([]TrackSubscription, error) {
	if _, err := d.GetTrack(ctx, trackID); err != nil {
		return nil, err
	}
	sub := TrackSubscription{UserID: userID, TrackID: trackID}
	err := d.db.WithContext(ctx).
		Where(TrackSubscription{UserID: userID, TrackID: trackID}).
		FirstOrCreate(&sub).Error
	if err != nil {
		log.Error("failed to subscribe to track", "error", err)
		return nil, err
	}
	return d.ListSubscriptions(ctx, userID)
}

// UpdateTrackProgress adds the delta to the stored progress index. The
// write always derives from the freshly read value; a delta that would
// drive the index below zero is rejected and the stored value is left
// unchanged.
func (d *DB) UpdateTrackProgress(ctx context.Context, userID, trackID uint, delta int) ([]TrackSubscription, error) {
	var sub TrackSubscription
	err := d.db.WithContext(ctx).
		Where("user_id = ? AND track_id = ?", userID, trackID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Track")
		}
		log.Error("failed to get subscription", "error", err)
		return nil, err
	}

	next := sub.ProgressIndex + delta
	if next < 0 {
		return nil, apperr.Validation("Track progress cannot be negative")
	}
	if err := d.db.WithContext(ctx).Model(&sub).Update("progress_index", next).Error; err != nil {
		log.Error("failed to update track progress", "error", err)
		return nil, err
	}
	return d.ListSubscriptions(ctx, userID)
}

// Unsubscribe removes a track subscription; absent is a no-op. The
// delete is hard so the (user, track) pair is free to resubscribe.
func (d *DB) Unsubscribe(ctx context.Context, userID, trackID uint) ([]TrackSubscription, error) {
	err := d.db.WithContext(ctx).
		Unscoped().
		Where("user_id = ? AND track_id = ?", userID, trackID).
		Delete(&TrackSubscription{}).Error
	if err != nil {
		log.Error("failed to unsubscribe from track", "error", err)
		return nil, err
	}
	return d.ListSubscriptions(ctx, userID)
}

// ListNotifications returns the user's notifications, newest first.
func (d *DB) ListNotifications(ctx context.Context, userID uint) ([]Notification, error) {
	var notifications []Notification
	err := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("time desc").
		Find(&notifications).Error
	if err != nil {
		log.Error("failed to list notifications", "error", err)
		return nil, err
	}
	return notifications, nil
}

// AddNotification stores a notification on the user's record.
func (d *DB) AddNotification(ctx context.Context, userID uint, message, redirectLink string) error {
	notification := Notification{
		UserID:       userID,
		Message:      message,
		RedirectLink: redirectLink,
		Time:         time.Now(),
	}
	if err := d.db.WithContext(ctx).Create(&notification).Error; err != nil {
		log.Error("failed to add notification", "error", err)
		return err
	}
	return nil
}

// MarkAllNotificationsRead marks every notification of the user read.
func (d *DB) MarkAllNotificationsRead(ctx context.Context, userID uint) ([]Notification, error) {
	err := d.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ?", userID).
		Update("is_read", true).Error
	if err != nil {
		log.Error("failed to mark notifications read", "error", err)
		return nil, err
	}
	return d.ListNotifications(ctx, userID)
}

// MarkNotificationRead marks one notification of the user read.
func (d *DB) MarkNotificationRead(ctx context.Context, userID, notificationID uint) ([]Notification, error) {
	var notification Notification
	err := d.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&notification, notificationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Notification")
		}
		log.Error("failed to get notification", "error", err)
		return nil, err
	}
	if err := d.db.WithContext(ctx).Model(&notification).Update("is_read", true).Error; err != nil {
		log.Error("failed to mark notification read", "error", err)
		return nil, err
	}
	return d.ListNotifications(ctx, userID)
}
