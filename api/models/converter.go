package models

import (
	"github.com/codetrail/codetrail/database"
	"github.com/samber/lo"
)

// ToUser converts a database.User to its client-facing shape.
func ToUser(u *database.User) User {
	return User{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		DisplayPicture: u.DisplayPicture,
		IsAdmin:        u.IsAdmin,
		IsSuperAdmin:   u.IsSuperAdmin,
	}
}

// ToUsers converts a slice of database users.
func ToUsers(users []database.User) []User {
	return lo.Map(users, func(u database.User, _ int) User {
		return ToUser(&u)
	})
}

// ToTag converts a database.Tag to its client-facing shape.
func ToTag(t *database.Tag) Tag {
	return Tag{
		ID:            t.ID,
		Name:          t.Name,
		Slug:          t.Slug,
		IsApproved:    t.IsApproved,
		SubmittedByID: t.SubmittedByID,
	}
}

// ToTags converts a slice of database tags.
func ToTags(tags []database.Tag) []Tag {
	return lo.Map(tags, func(t database.Tag, _ int) Tag {
		return ToTag(&t)
	})
}

// ToComment converts a database.Comment to its client-facing shape.
func ToComment(c database.Comment) Comment {
	return Comment{
		ID:          c.ID,
		Comment:     c.Comment,
		CommentedBy: c.CommentedBy,
		UserID:      c.UserID,
	}
}

// ToComments converts a slice of database comments.
func ToComments(comments []database.Comment) []Comment {
	return lo.Map(comments, func(c database.Comment, _ int) Comment {
		return ToComment(c)
	})
}

// ToTutorial converts a database.Tutorial with its associations.
func ToTutorial(t *database.Tutorial) Tutorial {
	return Tutorial{
		ID:    t.ID,
		Title: t.Title,
		Link:  t.Link,
		Slug:  t.Slug,
		Tags: lo.Map(t.Tags, func(tag database.Tag, _ int) TagRef {
			return TagRef{ID: tag.ID, Name: tag.Name, Slug: tag.Slug}
		}),
		Educator:       t.Educator,
		Medium:         t.Medium,
		TypeOfTutorial: t.TypeOfTutorial,
		SkillLevel:     t.SkillLevel,
		Upvotes: lo.Map(t.Upvotes, func(u database.User, _ int) uint {
			return u.ID
		}),
		Comments: ToComments(t.Comments),
		SubmittedBy: SubmittedBy{
			Name:   t.SubmittedBy,
			UserID: t.SubmittedByID,
		},
		SubmittedOn: t.SubmittedOn,
		IsApproved:  t.IsApproved,
	}
}

// ToTutorials converts a slice of database tutorials.
func ToTutorials(tutorials []database.Tutorial) []Tutorial {
	return lo.Map(tutorials, func(t database.Tutorial, _ int) Tutorial {
		return ToTutorial(&t)
	})
}

// ToTrack converts a database.Track with its ordered tutorials.
func ToTrack(t *database.Track) Track {
	return Track{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
		Tutorials: lo.Map(t.Items, func(item database.TrackItem, _ int) Tutorial {
			return ToTutorial(&item.Tutorial)
		}),
		SubmittedBy: SubmittedBy{
			Name:   t.SubmittedBy,
			UserID: t.SubmittedByID,
		},
		IsApproved: t.IsApproved,
	}
}

// ToTracks converts a slice of database tracks.
func ToTracks(tracks []database.Track) []Track {
	return lo.Map(tracks, func(t database.Track, _ int) Track {
		return ToTrack(&t)
	})
}

// ToSubscription converts a database.TrackSubscription.
func ToSubscription(s database.TrackSubscription) Subscription {
	return Subscription{
		TrackID:            s.TrackID,
		Track:              TrackRef{ID: s.Track.ID, Name: s.Track.Name, Slug: s.Track.Slug},
		TrackProgressIndex: s.ProgressIndex,
	}
}

// ToSubscriptions converts a slice of database subscriptions.
func ToSubscriptions(subs []database.TrackSubscription) []Subscription {
	return lo.Map(subs, func(s database.TrackSubscription, _ int) Subscription {
		return ToSubscription(s)
	})
}

// ToNotification converts a database.Notification.
func ToNotification(n database.Notification) Notification {
	return Notification{
		ID:           n.ID,
		Message:      n.Message,
		RedirectLink: n.RedirectLink,
		IsRead:       n.IsRead,
		Time:         n.Time,
	}
}

// ToNotifications converts a slice of database notifications.
func ToNotifications(notifications []database.Notification) []Notification {
	return lo.Map(notifications, func(n database.Notification, _ int) Notification {
		return ToNotification(n)
	})
}

// ToFeedback converts a database.Feedback.
func ToFeedback(f *database.Feedback) Feedback {
	return Feedback{
		ID:      f.ID,
		Title:   f.Title,
		Message: f.Message,
		IsRead:  f.IsRead,
		SubmittedBy: SubmittedBy{
			Name:   f.SubmittedBy,
			UserID: f.SubmittedByID,
		},
	}
}

// ToFeedbacks converts a slice of database feedbacks.
func ToFeedbacks(feedbacks []database.Feedback) []Feedback {
	return lo.Map(feedbacks, func(f database.Feedback, _ int) Feedback {
		return ToFeedback(&f)
	})
}
