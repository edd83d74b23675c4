package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	assert.Nil(t, Tag(&TagInput{Name: "Go"}))

	err := Tag(&TagInput{Name: ""})
	require.NotNil(t, err)
	assert.Equal(t, "Tag name is required", err.Message)

	err = Tag(&TagInput{Name: "   "})
	require.NotNil(t, err)
	assert.Equal(t, "Tag name is required", err.Message)

	err = Tag(&TagInput{Name: "this tag name is way way way too long for a tag"})
	require.NotNil(t, err)
	assert.Equal(t, "Tag should contain maximum 30 characters", err.Message)
}

func validTutorial() *TutorialInput {
	return &TutorialInput{
		Title:          "Learn Go",
		Link:           "https://example.com/learn-go",
		Tags:           []uint{1},
		Educator:       "Jane Doe",
		Medium:         "Video",
		TypeOfTutorial: "Free",
		SkillLevel:     "Beginner",
	}
}

func TestTutorial(t *testing.T) {
	assert.Nil(t, Tutorial(validTutorial()))

	in := validTutorial()
	in.Title = ""
	err := Tutorial(in)
	require.NotNil(t, err)
	assert.Equal(t, "Tutorial title is required", err.Message)

	in = validTutorial()
	in.Tags = nil
	err = Tutorial(in)
	require.NotNil(t, err)
	assert.Equal(t, "At least one tag is required", err.Message)

	in = validTutorial()
	in.Tags = []uint{1, 2, 3, 4, 5, 6}
	err = Tutorial(in)
	require.NotNil(t, err)
	assert.Equal(t, "A tutorial can contain maximum of 5 tags", err.Message)

	in = validTutorial()
	in.Medium = "Podcast"
	err = Tutorial(in)
	require.NotNil(t, err)
	assert.Equal(t, `Tutorial medium should be one of "Video" or "Blog"`, err.Message)

	in = validTutorial()
	in.TypeOfTutorial = ""
	err = Tutorial(in)
	require.NotNil(t, err)
	assert.Equal(t, "Tutorial type is required", err.Message)

	in = validTutorial()
	in.SkillLevel = "Expert"
	err = Tutorial(in)
	require.NotNil(t, err)
	assert.Equal(t, `Tutorial skill level should be one of "Beginner", "Intermediate" or "Advanced"`, err.Message)

	in = validTutorial()
	in.Link = "not a link"
	err = Tutorial(in)
	require.NotNil(t, err)
	assert.Equal(t, "Invalid tutorial link", err.Message)
}

func TestTrack(t *testing.T) {
	assert.Nil(t, Track(&TrackInput{Name: "Go Path", Description: "desc", Tutorials: []uint{1}}))

	err := Track(&TrackInput{Description: "desc", Tutorials: []uint{1}})
	require.NotNil(t, err)
	assert.Equal(t, "Track name is required", err.Message)

	err = Track(&TrackInput{Name: "Go Path", Tutorials: []uint{1}})
	require.NotNil(t, err)
	assert.Equal(t, "Track description is required", err.Message)

	err = Track(&TrackInput{Name: "Go Path", Description: "desc"})
	require.NotNil(t, err)
	assert.Equal(t, "At least one tutorial is required", err.Message)
}

func TestComment(t *testing.T) {
	assert.Nil(t, Comment(&CommentInput{Comment: "nice"}))

	err := Comment(&CommentInput{Comment: "  "})
	require.NotNil(t, err)
	assert.Equal(t, "Comment is required", err.Message)
}

func TestFeedback(t *testing.T) {
	assert.Nil(t, Feedback(&FeedbackInput{Title: "t", Message: "m"}))

	err := Feedback(&FeedbackInput{Message: "m"})
	require.NotNil(t, err)
	assert.Equal(t, "Feedback title is required", err.Message)

	err = Feedback(&FeedbackInput{Title: "t"})
	require.NotNil(t, err)
	assert.Equal(t, "Feedback message is required", err.Message)
}

func TestTrackProgress(t *testing.T) {
	one := 1
	assert.Nil(t, Struct(&TrackProgressInput{TrackProgressIndex: &one}))

	err := Struct(&TrackProgressInput{})
	require.NotNil(t, err)
	assert.Equal(t, "Track progress required", err.Message)
}

func TestNormalizeLink(t *testing.T) {
	link, err := NormalizeLink("example.com/path/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/path", link)

	link, err = NormalizeLink("https://Example.COM/Path#section")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/Path", link)

	_, err = NormalizeLink("ftp://example.com")
	assert.Error(t, err)
}
