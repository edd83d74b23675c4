package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/codetrail/codetrail/apperr"
	"github.com/codetrail/codetrail/moderation"
	"github.com/codetrail/codetrail/slug"
	"gorm.io/gorm"
)

// ListTags returns all tags sorted by name.
func (d *DB) ListTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := d.db.WithContext(ctx).Order("name asc").Find(&tags).Error; err != nil {
		log.Error("failed to list tags", "error", err)
		return nil, err
	}
	return tags, nil
}

// ListUnapprovedTags returns pending tags, newest first.
func (d *DB) ListUnapprovedTags(ctx context.Context) ([]Tag, error) {
	var tags []Tag
	if err := d.db.WithContext(ctx).Where("is_approved = ?", false).Order("created_at desc").Find(&tags).Error; err != nil {
		log.Error("failed to list unapproved tags", "error", err)
		return nil, err
	}
	return tags, nil
}

// GetTag returns a tag by id.
func (d *DB) GetTag(ctx context.Context, id uint) (*Tag, error) {
	var tag Tag
	if err := d.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Tag")
		}
		log.Error("failed to get tag", "error", err)
		return nil, err
	}
	return &tag, nil
}

// CreateTag submits a new tag in the pending state.
func (d *DB) CreateTag(ctx context.Context, name string, submitterID uint) (*Tag, error) {
	tag := Tag{
		Name:          name,
		Slug:          slug.Tag(name),
		SubmittedByID: submitterID,
	}
	if err := d.db.WithContext(ctx).Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Tag")
		}
		log.Error("failed to create tag", "error", err)
		return nil, err
	}
	return &tag, nil
}

// UpdateTagName renames a tag, recomputing its slug.
func (d *DB) UpdateTagName(ctx context.Context, id uint, name string) (*Tag, error) {
	tag, err := d.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}
	tag.Name = name
	tag.Slug = slug.Tag(name)
	if err := d.db.WithContext(ctx).Save(tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Tag")
		}
		log.Error("failed to update tag", "error", err)
		return nil, err
	}
	return tag, nil
}

// ToggleTagApproval flips the approval flag based on the just-read state.
func (d *DB) ToggleTagApproval(ctx context.Context, id uint) (*Tag, error) {
	tag, err := d.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}
	tag.IsApproved = moderation.NextApproval(tag.IsApproved)
	if err := d.db.WithContext(ctx).Model(tag).Update("is_approved", tag.IsApproved).Error; err != nil {
		log.Error("failed to toggle tag approval", "error", err)
		return nil, err
	}
	return tag, nil
}

// DeleteTag removes a tag unconditionally (admin operation). The
// delete is hard: the name and slug must be free for resubmission.
func (d *DB) DeleteTag(ctx context.Context, id uint) (*Tag, error) {
	tag, err := d.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).Unscoped().Delete(tag).Error; err != nil {
		log.Error("failed to delete tag", "error", err)
		return nil, err
	}
	return tag, nil
}
