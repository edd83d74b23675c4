package database

import (
	"time"

	"gorm.io/gorm"
)

// Tutorial medium values.
const (
	MediumVideo = "Video"
	MediumBlog  = "Blog"
)

// Tutorial pricing values.
const (
	TypeFree = "Free"
	TypePaid = "Paid"
)

// Tutorial skill levels.
const (
	SkillBeginner     = "Beginner"
	SkillIntermediate = "Intermediate"
	SkillAdvanced     = "Advanced"
)

// User represents a registered user. The identity provider owns the
// credentials; this record only mirrors profile data and carries the
// role flags. IsSuperAdmin implies IsAdmin on every mutation path.
type User struct {
	gorm.Model
	Name           string `gorm:"not null"`
	GoogleID       string `gorm:"uniqueIndex;not null"`
	Email          string
	DisplayPicture string
	IsAdmin        bool
	IsSuperAdmin   bool
	Favorites      []Tutorial `gorm:"many2many:user_favorites"`
	Subscriptions  []TrackSubscription
	Notifications  []Notification
}

// Notification is an in-record message shown to the user.
type Notification struct {
	gorm.Model
	UserID       uint `gorm:"index;not null"`
	Message      string
	RedirectLink string
	IsRead       bool
	Time         time.Time
}

// TrackSubscription links a user to a track with their progress index,
// an offset into the track's ordered tutorial list. Unique per
// (user, track); the index never goes below zero.
type TrackSubscription struct {
	gorm.Model
	UserID        uint `gorm:"uniqueIndex:idx_user_track;not null"`
	TrackID       uint `gorm:"uniqueIndex:idx_user_track;not null"`
	Track         Track
	ProgressIndex int
}

// Tag categorizes tutorials. Created unapproved; shown publicly once an
// admin approves it.
type Tag struct {
	gorm.Model
	Name          string `gorm:"uniqueIndex;not null"`
	Slug          string `gorm:"uniqueIndex"`
	IsApproved    bool
	SubmittedByID uint
}

// OwnerID returns the submitter for the moderation workflow.
func (t *Tag) OwnerID() uint { return t.SubmittedByID }

// Approved reports the approval flag for the moderation workflow.
func (t *Tag) Approved() bool { return t.IsApproved }

// Tutorial is a submitted learning resource.
type Tutorial struct {
	gorm.Model
	Title          string `gorm:"not null"`
	Link           string `gorm:"uniqueIndex;not null"`
	Slug           string
	Tags           []Tag `gorm:"many2many:tutorial_tags"`
	Educator       string
	Medium         string
	TypeOfTutorial string
	SkillLevel     string
	Upvotes        []User `gorm:"many2many:tutorial_upvotes"`
	Comments       []Comment
	SubmittedBy    string // submitter name snapshot, frozen at creation
	SubmittedByID  uint
	SubmittedOn    time.Time
	IsApproved     bool
}

func (t *Tutorial) OwnerID() uint  { return t.SubmittedByID }
func (t *Tutorial) Approved() bool { return t.IsApproved }

// Comment is an entry on a tutorial. CommentedBy snapshots the author
// name at write time; UserID is the authority for delete permission.
type Comment struct {
	gorm.Model
	TutorialID  uint `gorm:"index;not null"`
	Comment     string
	CommentedBy string
	UserID      uint
}

// Track is an ordered sequence of tutorials forming a learning path.
type Track struct {
	gorm.Model
	Name          string `gorm:"uniqueIndex;not null"`
	Slug          string `gorm:"uniqueIndex"`
	Description   string
	Items         []TrackItem `gorm:"constraint:OnDelete:CASCADE"`
	SubmittedBy   string
	SubmittedByID uint
	IsApproved    bool
}

func (t *Track) OwnerID() uint  { return t.SubmittedByID }
func (t *Track) Approved() bool { return t.IsApproved }

// TrackItem is one position in a track's tutorial sequence.
type TrackItem struct {
	gorm.Model
	TrackID    uint `gorm:"index;not null"`
	TutorialID uint `gorm:"not null"`
	Position   int  `gorm:"not null"`
	Tutorial   Tutorial
}

// Feedback is a user-submitted message for the site operators. It has
// no approval workflow, only a read/unread flag.
type Feedback struct {
	gorm.Model
	Title         string
	Message       string
	IsRead        bool
	SubmittedBy   string
	SubmittedByID uint
}
