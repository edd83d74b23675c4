package models

import "time"

// User is the client-facing view of a user record.
type User struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	DisplayPicture string `json:"displayPicture,omitempty"`
	IsAdmin        bool   `json:"isAdmin"`
	IsSuperAdmin   bool   `json:"isSuperAdmin"`
}

// Tag is the client-facing view of a tag.
type Tag struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	IsApproved    bool   `json:"isApproved"`
	SubmittedByID uint   `json:"submittedBy"`
}

// TagRef is the reduced tag shape populated into tutorials.
type TagRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// SubmittedBy pairs the submitter's name snapshot with their id.
type SubmittedBy struct {
	Name   string `json:"name"`
	UserID uint   `json:"userId"`
}

// Comment is the client-facing view of a tutorial comment.
type Comment struct {
	ID          uint   `json:"id"`
	Comment     string `json:"comment"`
	CommentedBy string `json:"commentedBy"`
	UserID      uint   `json:"userId"`
}

// Tutorial is the client-facing view of a tutorial.
type Tutorial struct {
	ID             uint        `json:"id"`
	Title          string      `json:"title"`
	Link           string      `json:"link"`
	Slug           string      `json:"slug"`
	Tags           []TagRef    `json:"tags"`
	Educator       string      `json:"educator"`
	Medium         string      `json:"medium"`
	TypeOfTutorial string      `json:"typeOfTutorial"`
	SkillLevel     string      `json:"skillLevel"`
	Upvotes        []uint      `json:"upvotes"`
	Comments       []Comment   `json:"comments"`
	SubmittedBy    SubmittedBy `json:"submittedBy"`
	SubmittedOn    time.Time   `json:"submittedOn"`
	IsApproved     bool        `json:"isApproved"`
}

// Track is the client-facing view of a track.
type Track struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	Description string      `json:"description"`
	Tutorials   []Tutorial  `json:"tutorials"`
	SubmittedBy SubmittedBy `json:"submittedBy"`
	IsApproved  bool        `json:"isApproved"`
}

// TrackRef is the reduced track shape populated into subscriptions.
type TrackRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Subscription is one entry in the user's subscribed-track list.
type Subscription struct {
	TrackID            uint     `json:"trackId"`
	Track              TrackRef `json:"track"`
	TrackProgressIndex int      `json:"trackProgressIndex"`
}

// Notification is the client-facing view of a user notification.
type Notification struct {
	ID           uint      `json:"id"`
	Message      string    `json:"message"`
	RedirectLink string    `json:"redirectLink,omitempty"`
	IsRead       bool      `json:"isRead"`
	Time         time.Time `json:"time"`
}

// Feedback is the client-facing view of a feedback record.
type Feedback struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Message     string      `json:"message"`
	IsRead      bool        `json:"isRead"`
	SubmittedBy SubmittedBy `json:"submittedBy"`
}
