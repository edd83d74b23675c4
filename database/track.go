package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/codetrail/codetrail/apperr"
	"github.com/codetrail/codetrail/moderation"
	"github.com/codetrail/codetrail/slug"
	"github.com/codetrail/codetrail/validate"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func trackScope(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).Preload("Items.Tutorial.Tags")
}

// ListTracks returns all tracks sorted by name.
func (d *DB) ListTracks(ctx context.Context) ([]Track, error) {
	var tracks []Track
	if err := trackScope(d.db.WithContext(ctx)).Order("name asc").Find(&tracks).Error; err != nil {
		log.Error("failed to list tracks", "error", err)
		return nil, err
	}
	return tracks, nil
}

// ListUnapprovedTracks returns pending tracks, newest first.
func (d *DB) ListUnapprovedTracks(ctx context.Context) ([]Track, error) {
	var tracks []Track
	err := trackScope(d.db.WithContext(ctx)).
		Where("is_approved = ?", false).
		Order("created_at desc").
		Find(&tracks).Error
	if err != nil {
		log.Error("failed to list unapproved tracks", "error", err)
		return nil, err
	}
	return tracks, nil
}

// GetTrack returns a track with its ordered tutorials populated.
func (d *DB) GetTrack(ctx context.Context, id uint) (*Track, error) {
	var track Track
	if err := trackScope(d.db.WithContext(ctx)).First(&track, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Track")
		}
		log.Error("failed to get track", "error", err)
		return nil, err
	}
	return &track, nil
}

// CreateTrack submits a new track in the pending state.
func (d *DB) CreateTrack(ctx context.Context, in *validate.TrackInput, submitter *User) (*Track, error) {
	if err := d.verifyTutorialIDs(ctx, in.Tutorials); err != nil {
		return nil, err
	}

	track := Track{
		Name:        in.Name,
		Slug:        slug.Track(in.Name),
		Description: in.Description,
		Items: lo.Map(in.Tutorials, func(id uint, i int) TrackItem {
			return TrackItem{TutorialID: id, Position: i}
		}),
		SubmittedBy:   submitter.Name,
		SubmittedByID: submitter.ID,
	}
	if err := d.db.WithContext(ctx).Create(&track).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Track")
		}
		log.Error("failed to create track", "error", err)
		return nil, err
	}
	return d.GetTrack(ctx, track.ID)
}

// UpdateTrack applies a partial admin update. The slug is recomputed
// only when the name changes.
func (d *DB) UpdateTrack(ctx context.Context, id uint, in *validate.TrackUpdateInput) (*Track, error) {
	track, err := d.GetTrack(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil && *in.Name != track.Name {
		track.Name = *in.Name
		track.Slug = slug.Track(*in.Name)
	}
	if in.Description != nil {
		track.Description = *in.Description
	}
	if in.Tutorials != nil {
		if err := d.verifyTutorialIDs(ctx, in.Tutorials); err != nil {
			return nil, err
		}
		if err := d.db.WithContext(ctx).Unscoped().Where("track_id = ?", track.ID).Delete(&TrackItem{}).Error; err != nil {
			log.Error("failed to clear track items", "error", err)
			return nil, err
		}
		items := lo.Map(in.Tutorials, func(tid uint, i int) TrackItem {
			return TrackItem{TrackID: track.ID, TutorialID: tid, Position: i}
		})
		if err := d.db.WithContext(ctx).Create(&items).Error; err != nil {
			log.Error("failed to recreate track items", "error", err)
			return nil, err
		}
	}

	if err := d.db.WithContext(ctx).Omit(clause.Associations).Save(track).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Track")
		}
		log.Error("failed to update track", "error", err)
		return nil, err
	}
	return d.GetTrack(ctx, id)
}

// ToggleTrackApproval flips the approval flag based on the just-read
// state.
func (d *DB) ToggleTrackApproval(ctx context.Context, id uint) (*Track, error) {
	track, err := d.GetTrack(ctx, id)
	if err != nil {
		return nil, err
	}
	track.IsApproved = moderation.NextApproval(track.IsApproved)
	if err := d.db.WithContext(ctx).Model(track).Update("is_approved", track.IsApproved).Error; err != nil {
		log.Error("failed to toggle track approval", "error", err)
		return nil, err
	}
	return track, nil
}

// DeleteTrack removes a track unconditionally (admin operation). The
// delete is hard: the name and slug must be free for resubmission.
func (d *DB) DeleteTrack(ctx context.Context, id uint) (*Track, error) {
	track, err := d.GetTrack(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).Unscoped().Where("track_id = ?", id).Delete(&TrackItem{}).Error; err != nil {
		log.Error("failed to delete track items", "error", err)
		return nil, err
	}
	if err := d.db.WithContext(ctx).Unscoped().Where("track_id = ?", id).Delete(&TrackSubscription{}).Error; err != nil {
		log.Error("failed to delete track subscriptions", "error", err)
		return nil, err
	}
	if err := d.db.WithContext(ctx).Unscoped().Delete(&Track{}, id).Error; err != nil {
		log.Error("failed to delete track", "error", err)
		return nil, err
	}
	return track, nil
}

// CancelTrack is the owner-initiated withdrawal of a pending track.
func (d *DB) CancelTrack(ctx context.Context, id, requesterID uint) (*Track, error) {
	track, err := d.GetTrack(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := moderation.CancelCheck("Track", track, requesterID); err != nil {
		return nil, err
	}
	return d.DeleteTrack(ctx, id)
}

// verifyTutorialIDs rejects references to tutorials that do not exist.
func (d *DB) verifyTutorialIDs(ctx context.Context, ids []uint) error {
	var count int64
	if err := d.db.WithContext(ctx).Model(&Tutorial{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		log.Error("failed to verify tutorials", "error", err)
		return err
	}
	if count != int64(len(lo.Uniq(ids))) {
		return apperr.Validation("Invalid Tutorial Id")
	}
	return nil
}
