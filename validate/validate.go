// Package validate checks API inputs against the entity schemas and
// translates failures into the fixed client-facing message catalog.
package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/codetrail/codetrail/apperr"
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// TagInput is the payload for creating or renaming a tag.
type TagInput struct {
	Name string `json:"name" validate:"required,max=30"`
}

// TutorialInput is the payload for submitting a tutorial.
type TutorialInput struct {
	Title          string `json:"title" validate:"required"`
	Link           string `json:"link" validate:"required"`
	Tags           []uint `json:"tags" validate:"required,min=1,max=5,dive,gt=0"`
	Educator       string `json:"educator" validate:"required"`
	Medium         string `json:"medium" validate:"required,oneof=Video Blog"`
	TypeOfTutorial string `json:"typeOfTutorial" validate:"required,oneof=Free Paid"`
	SkillLevel     string `json:"skillLevel" validate:"required,oneof=Beginner Intermediate Advanced"`
}

// TutorialUpdateInput is the partial payload for an admin update.
// Nil fields are left untouched.
type TutorialUpdateInput struct {
	Title          *string `json:"title" validate:"omitempty,min=1"`
	Link           *string `json:"link" validate:"omitempty,min=1"`
	Tags           []uint  `json:"tags" validate:"omitempty,min=1,max=5,dive,gt=0"`
	Educator       *string `json:"educator" validate:"omitempty,min=1"`
	Medium         *string `json:"medium" validate:"omitempty,oneof=Video Blog"`
	TypeOfTutorial *string `json:"typeOfTutorial" validate:"omitempty,oneof=Free Paid"`
	SkillLevel     *string `json:"skillLevel" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
}

// TrackInput is the payload for submitting a track.
type TrackInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Tutorials   []uint `json:"tutorials" validate:"required,min=1,dive,gt=0"`
}

// TrackUpdateInput is the partial payload for an admin track update.
type TrackUpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Tutorials   []uint  `json:"tutorials" validate:"omitempty,min=1,dive,gt=0"`
}

// CommentInput is the payload for commenting on a tutorial.
type CommentInput struct {
	Comment string `json:"comment" validate:"required"`
}

// FeedbackInput is the payload for submitting feedback.
type FeedbackInput struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// UserUpdateInput is the payload for updating the profile name.
type UserUpdateInput struct {
	Name string `json:"name" validate:"required"`
}

// TrackProgressInput carries the relative progress increment.
type TrackProgressInput struct {
	TrackProgressIndex *int `json:"trackProgressIndex" validate:"required"`
}

// messages maps struct field + failed rule to the catalog message.
var messages = map[string]string{
	"TagInput.Name.required": "Tag name is required",
	"TagInput.Name.max":      "Tag should contain maximum 30 characters",

	"TutorialInput.Title.required":          "Tutorial title is required",
	"TutorialInput.Link.required":           "Tutorial link is required",
	"TutorialInput.Tags.required":           "At least one tag is required",
	"TutorialInput.Tags.min":                "At least one tag is required",
	"TutorialInput.Tags.max":                "A tutorial can contain maximum of 5 tags",
	"TutorialInput.Tags.gt":                 "Invalid Tag Id",
	"TutorialInput.Educator.required":       "Educator name is required",
	"TutorialInput.Medium.required":         "Tutorial medium is required",
	"TutorialInput.Medium.oneof":            `Tutorial medium should be one of "Video" or "Blog"`,
	"TutorialInput.TypeOfTutorial.required": "Tutorial type is required",
	"TutorialInput.TypeOfTutorial.oneof":    `Tutorial type should be one of "Free" or "Paid"`,
	"TutorialInput.SkillLevel.required":     "Tutorial skill level is required",
	"TutorialInput.SkillLevel.oneof":        `Tutorial skill level should be one of "Beginner", "Intermediate" or "Advanced"`,

	"TutorialUpdateInput.Title.min":      "Tutorial title is required",
	"TutorialUpdateInput.Link.min":       "Tutorial link is required",
	"TutorialUpdateInput.Tags.min":       "At least one tag is required",
	"TutorialUpdateInput.Tags.max":       "A tutorial can contain maximum of 5 tags",
	"TutorialUpdateInput.Tags.gt":        "Invalid Tag Id",
	"TutorialUpdateInput.Educator.min":   "Educator name is required",
	"TutorialUpdateInput.Medium.oneof":   `Tutorial medium should be one of "Video" or "Blog"`,
	"TutorialUpdateInput.TypeOfTutorial.oneof": `Tutorial type should be one of "Free" or "Paid"`,
	"TutorialUpdateInput.SkillLevel.oneof":     `Tutorial skill level should be one of "Beginner", "Intermediate" or "Advanced"`,

	"TrackInput.Name.required":        "Track name is required",
	"TrackInput.Description.required": "Track description is required",
	"TrackInput.Tutorials.required":   "At least one tutorial is required",
	"TrackInput.Tutorials.min":        "At least one tutorial is required",
	"TrackInput.Tutorials.gt":         "Invalid Tutorial Id",

	"TrackUpdateInput.Name.min":        "Track name is required",
	"TrackUpdateInput.Description.min": "Track description is required",
	"TrackUpdateInput.Tutorials.min":   "At least one tutorial is required",
	"TrackUpdateInput.Tutorials.gt":    "Invalid Tutorial Id",

	"CommentInput.Comment.required": "Comment is required",

	"FeedbackInput.Title.required":   "Feedback title is required",
	"FeedbackInput.Message.required": "Feedback message is required",

	"UserUpdateInput.Name.required": "User name is required",

	"TrackProgressInput.TrackProgressIndex.required": "Track progress required",
}

// Struct validates any of the input types above and returns the first
// failure as a catalog error.
func Struct(in any) *apperr.Error {
	if err := v.Struct(in); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok || len(errs) == 0 {
			return apperr.Internal()
		}
		fe := errs[0]
		key := fe.StructNamespace() + "." + fe.Tag()
		if msg, ok := messages[key]; ok {
			return apperr.Validation(msg)
		}
		return apperr.Validation(fe.Error())
	}
	return nil
}

// Tag trims and validates a tag payload.
func Tag(in *TagInput) *apperr.Error {
	in.Name = strings.TrimSpace(in.Name)
	return Struct(in)
}

// Tutorial trims and validates a tutorial payload, normalizing the link.
func Tutorial(in *TutorialInput) *apperr.Error {
	in.Title = strings.TrimSpace(in.Title)
	in.Link = strings.TrimSpace(in.Link)
	in.Educator = strings.TrimSpace(in.Educator)
	if err := Struct(in); err != nil {
		return err
	}
	link, err := NormalizeLink(in.Link)
	if err != nil {
		return apperr.Validation("Invalid tutorial link")
	}
	in.Link = link
	return nil
}

// TutorialUpdate validates a partial tutorial payload, normalizing the
// link when present.
func TutorialUpdate(in *TutorialUpdateInput) *apperr.Error {
	if err := Struct(in); err != nil {
		return err
	}
	if in.Link != nil {
		link, err := NormalizeLink(*in.Link)
		if err != nil {
			return apperr.Validation("Invalid tutorial link")
		}
		in.Link = &link
	}
	return nil
}

// Track trims and validates a track payload.
func Track(in *TrackInput) *apperr.Error {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	return Struct(in)
}

// TrackUpdate validates a partial track payload.
func TrackUpdate(in *TrackUpdateInput) *apperr.Error {
	return Struct(in)
}

// Comment validates a comment payload.
func Comment(in *CommentInput) *apperr.Error {
	in.Comment = strings.TrimSpace(in.Comment)
	return Struct(in)
}

// Feedback trims and validates a feedback payload.
func Feedback(in *FeedbackInput) *apperr.Error {
	in.Title = strings.TrimSpace(in.Title)
	in.Message = strings.TrimSpace(in.Message)
	return Struct(in)
}

// UserUpdate trims and validates a profile update payload.
func UserUpdate(in *UserUpdateInput) *apperr.Error {
	in.Name = strings.TrimSpace(in.Name)
	return Struct(in)
}

// NormalizeLink canonicalizes a tutorial link: https is the default
// scheme, the fragment is dropped, the host is lowercased. The stored
// link is what uniqueness is enforced on, so normalization must be
// stable.
func NormalizeLink(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" || !strings.Contains(u.Host, ".") {
		return "", fmt.Errorf("invalid host %q", u.Host)
	}
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u.String(), nil
}
