package database

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/codetrail/codetrail/apperr"
	"github.com/codetrail/codetrail/moderation"
	"github.com/codetrail/codetrail/slug"
	"github.com/codetrail/codetrail/validate"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func tutorialScope(db *gorm.DB) *gorm.DB {
	return db.Preload("Tags").Preload("Upvotes").Preload("Comments")
}

// ListTutorials returns all tutorials sorted by title, tags populated.
func (d *DB) ListTutorials(ctx context.Context) ([]Tutorial, error) {
	var tutorials []Tutorial
	if err := tutorialScope(d.db.WithContext(ctx)).Order("title asc").Find(&tutorials).Error; err != nil {
		log.Error("failed to list tutorials", "error", err)
		return nil, err
	}
	return tutorials, nil
}

// ListTutorialsByTag returns tutorials carrying the given tag.
func (d *DB) ListTutorialsByTag(ctx context.Context, tagID uint) ([]Tutorial, error) {
	var tutorials []Tutorial
	err := tutorialScope(d.db.WithContext(ctx)).
		Joins("JOIN tutorial_tags ON tutorial_tags.tutorial_id = tutorials.id").
		Where("tutorial_tags.tag_id = ?", tagID).
		Order("title asc").
		Find(&tutorials).Error
	if err != nil {
		log.Error("failed to list tutorials by tag", "error", err)
		return nil, err
	}
	return tutorials, nil
}

// ListUnapprovedTutorials returns pending tutorials, newest first.
func (d *DB) ListUnapprovedTutorials(ctx context.Context) ([]Tutorial, error) {
	var tutorials []Tutorial
	err := tutorialScope(d.db.WithContext(ctx)).
		Where("is_approved = ?", false).
		Order("created_at desc").
		Find(&tutorials).Error
	if err != nil {
		log.Error("failed to list unapproved tutorials", "error", err)
		return nil, err
	}
	return tutorials, nil
}

// GetTutorial returns a tutorial with its associations populated.
func (d *DB) GetTutorial(ctx context.Context, id uint) (*Tutorial, error) {
	var tutorial Tutorial
	if err := tutorialScope(d.db.WithContext(ctx)).First(&tutorial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Tutorial")
		}
		log.Error("failed to get tutorial", "error", err)
		return nil, err
	}
	return &tutorial, nil
}

// CreateTutorial submits a new tutorial in the pending state. The
// submitter snapshot is frozen here and never updated afterwards.
func (d *DB) CreateTutorial(ctx context.Context, in *validate.TutorialInput, submitter *User) (*Tutorial, error) {
	tags, err := d.tagsByID(ctx, in.Tags)
	if err != nil {
		return nil, err
	}

	tutorial := Tutorial{
		Title:          in.Title,
		Link:           in.Link,
		Slug:           slug.Tutorial(in.Title),
		Tags:           tags,
		Educator:       in.Educator,
		Medium:         in.Medium,
		TypeOfTutorial: in.TypeOfTutorial,
		SkillLevel:     in.SkillLevel,
		SubmittedBy:    submitter.Name,
		SubmittedByID:  submitter.ID,
		SubmittedOn:    time.Now(),
	}
	if err := d.db.WithContext(ctx).Create(&tutorial).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Tutorial")
		}
		log.Error("failed to create tutorial", "error", err)
		return nil, err
	}
	return &tutorial, nil
}

// UpdateTutorial applies a partial admin update. The slug is recomputed
// only when the title changes so published URLs stay stable.
func (d *DB) UpdateTutorial(ctx context.Context, id uint, in *validate.TutorialUpdateInput) (*Tutorial, error) {
	tutorial, err := d.GetTutorial(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil && *in.Title != tutorial.Title {
		tutorial.Title = *in.Title
		tutorial.Slug = slug.Tutorial(*in.Title)
	}
	if in.Link != nil {
		tutorial.Link = *in.Link
	}
	if in.Educator != nil {
		tutorial.Educator = *in.Educator
	}
	if in.Medium != nil {
		tutorial.Medium = *in.Medium
	}
	if in.TypeOfTutorial != nil {
		tutorial.TypeOfTutorial = *in.TypeOfTutorial
	}
	if in.SkillLevel != nil {
		tutorial.SkillLevel = *in.SkillLevel
	}

	if in.Tags != nil {
		tags, err := d.tagsByID(ctx, in.Tags)
		if err != nil {
			return nil, err
		}
		if err := d.db.WithContext(ctx).Model(tutorial).Association("Tags").Replace(tags); err != nil {
			log.Error("failed to replace tutorial tags", "error", err)
			return nil, err
		}
		tutorial.Tags = tags
	}

	if err := d.db.WithContext(ctx).Omit(clause.Associations).Save(tutorial).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("Tutorial")
		}
		log.Error("failed to update tutorial", "error", err)
		return nil, err
	}
	return tutorial, nil
}

// ToggleTutorialApproval flips the approval flag based on the just-read
// state.
func (d *DB) ToggleTutorialApproval(ctx context.Context, id uint) (*Tutorial, error) {
	tutorial, err := d.GetTutorial(ctx, id)
	if err != nil {
		return nil, err
	}
	tutorial.IsApproved = moderation.NextApproval(tutorial.IsApproved)
	if err := d.db.WithContext(ctx).Model(tutorial).Update("is_approved", tutorial.IsApproved).Error; err != nil {
		log.Error("failed to toggle tutorial approval", "error", err)
		return nil, err
	}
	return tutorial, nil
}

// DeleteTutorial removes a tutorial unconditionally (admin operation).
// The delete is hard so the link stays free for resubmission.
func (d *DB) DeleteTutorial(ctx context.Context, id uint) (*Tutorial, error) {
	tutorial, err := d.GetTutorial(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).Unscoped().Select(clause.Associations).Delete(tutorial).Error; err != nil {
		log.Error("failed to delete tutorial", "error", err)
		return nil, err
	}
	return tutorial, nil
}

// CancelTutorial is the owner-initiated withdrawal of a pending
// tutorial. The moderation workflow decides whether it is permitted.
func (d *DB) CancelTutorial(ctx context.Context, id, requesterID uint) (*Tutorial, error) {
	tutorial, err := d.GetTutorial(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := moderation.CancelCheck("Tutorial", tutorial, requesterID); err != nil {
		return nil, err
	}
	return d.DeleteTutorial(ctx, id)
}

// AddUpvote records an upvote. Upvotes are a set: repeating the call is
// a no-op. Returns the current upvoter ids.
func (d *DB) AddUpvote(ctx context.Context, tutorialID, userID uint) ([]uint, error) {
	tutorial, err := d.GetTutorial(ctx, tutorialID)
	if err != nil {
		return nil, err
	}
	err = d.db.WithContext(ctx).Model(tutorial).Association("Upvotes").Append(&User{Model: gorm.Model{ID: userID}})
	if err != nil {
		log.Error("failed to add upvote", "error", err)
		return nil, err
	}
	return d.upvoteIDs(ctx, tutorialID)
}

// RemoveUpvote removes an upvote; removing an absent one is a no-op.
func (d *DB) RemoveUpvote(ctx context.Context, tutorialID, userID uint) ([]uint, error) {
	tutorial, err := d.GetTutorial(ctx, tutorialID)
	if err != nil {
		return nil, err
	}
	err = d.db.WithContext(ctx).Model(tutorial).Association("Upvotes").Delete(&User{Model: gorm.Model{ID: userID}})
	if err != nil {
		log.Error("failed to remove upvote", "error", err)
		return nil, err
	}
	return d.upvoteIDs(ctx, tutorialID)
}

func (d *DB) upvoteIDs(ctx context.Context, tutorialID uint) ([]uint, error) {
	ids := []uint{}
	err := d.db.WithContext(ctx).
		Table("tutorial_upvotes").
		Where("tutorial_id = ?", tutorialID).
		Pluck("user_id", &ids).Error
	if err != nil {
		log.Error("failed to read upvotes", "error", err)
		return nil, err
	}
	return ids, nil
}

// AddComment appends a comment with the author's name snapshot.
func (d *DB) AddComment(ctx context.Context, tutorialID uint, text string, author *User) ([]Comment, error) {
	if _, err := d.GetTutorial(ctx, tutorialID); err != nil {
		return nil, err
	}
	comment := Comment{
		TutorialID:  tutorialID,
		Comment:     text,
		CommentedBy: author.Name,
		UserID:      author.ID,
	}
	if err := d.db.WithContext(ctx).Create(&comment).Error; err != nil {
		log.Error("failed to add comment", "error", err)
		return nil, err
	}
	return d.comments(ctx, tutorialID)
}

// RemoveComment deletes a comment. Only the comment's author may remove
// it; a mismatch is an authorization failure, not a missing record.
func (d *DB) RemoveComment(ctx context.Context, tutorialID, commentID, requesterID uint) ([]Comment, error) {
	if _, err := d.GetTutorial(ctx, tutorialID); err != nil {
		return nil, err
	}
	var comment Comment
	err := d.db.WithContext(ctx).
		Where("tutorial_id = ?", tutorialID).
		First(&comment, commentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Comment")
		}
		log.Error("failed to get comment", "error", err)
		return nil, err
	}
	if comment.UserID != requesterID {
		return nil, apperr.Forbidden("Only comments by you can be deleted")
	}
	if err := d.db.WithContext(ctx).Unscoped().Delete(&comment).Error; err != nil {
		log.Error("failed to remove comment", "error", err)
		return nil, err
	}
	return d.comments(ctx, tutorialID)
}

func (d *DB) comments(ctx context.Context, tutorialID uint) ([]Comment, error) {
	var comments []Comment
	err := d.db.WithContext(ctx).
		Where("tutorial_id = ?", tutorialID).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		log.Error("failed to read comments", "error", err)
		return nil, err
	}
	return comments, nil
}

// tagsByID resolves tag references, rejecting unknown ids.
func (d *DB) tagsByID(ctx context.Context, ids []uint) ([]Tag, error) {
	var tags []Tag
	if err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		log.Error("failed to resolve tags", "error", err)
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, apperr.Validation("Invalid Tag Id")
	}
	return tags, nil
}
