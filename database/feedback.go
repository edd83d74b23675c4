package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/codetrail/codetrail/apperr"
	"gorm.io/gorm"
)

// ListFeedbacks returns all feedbacks, newest first.
func (d *DB) ListFeedbacks(ctx context.Context) ([]Feedback, error) {
	var feedbacks []Feedback
	if err := d.db.WithContext(ctx).Order("created_at desc").Find(&feedbacks).Error; err != nil {
		log.Error("failed to list feedbacks", "error", err)
		return nil, err
	}
	return feedbacks, nil
}

// GetFeedback returns a feedback by id.
func (d *DB) GetFeedback(ctx context.Context, id uint) (*Feedback, error) {
	var feedback Feedback
	if err := d.db.WithContext(ctx).First(&feedback, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Feedback")
		}
		log.Error("failed to get feedback", "error", err)
		return nil, err
	}
	return &feedback, nil
}

// CreateFeedback stores a new feedback, unread.
func (d *DB) CreateFeedback(ctx context.Context, title, message string, submitter *User) (*Feedback, error) {
	feedback := Feedback{
		Title:         title,
		Message:       message,
		SubmittedBy:   submitter.Name,
		SubmittedByID: submitter.ID,
	}
	if err := d.db.WithContext(ctx).Create(&feedback).Error; err != nil {
		log.Error("failed to create feedback", "error", err)
		return nil, err
	}
	return &feedback, nil
}

// MarkAllFeedbacksRead marks every feedback read and returns the list.
func (d *DB) MarkAllFeedbacksRead(ctx context.Context) ([]Feedback, error) {
	err := d.db.WithContext(ctx).
		Model(&Feedback{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error
	if err != nil {
		log.Error("failed to mark feedbacks read", "error", err)
		return nil, err
	}
	return d.ListFeedbacks(ctx)
}

// SetFeedbackRead sets the read flag of one feedback.
func (d *DB) SetFeedbackRead(ctx context.Context, id uint, read bool) (*Feedback, error) {
	feedback, err := d.GetFeedback(ctx, id)
	if err != nil {
		return nil, err
	}
	feedback.IsRead = read
	if err := d.db.WithContext(ctx).Model(feedback).Update("is_read", read).Error; err != nil {
		log.Error("failed to set feedback read flag", "error", err)
		return nil, err
	}
	return feedback, nil
}

// DeleteFeedback removes a feedback (super-admin operation).
func (d *DB) DeleteFeedback(ctx context.Context, id uint) (*Feedback, error) {
	feedback, err := d.GetFeedback(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).Unscoped().Delete(feedback).Error; err != nil {
		log.Error("failed to delete feedback", "error", err)
		return nil, err
	}
	return feedback, nil
}
