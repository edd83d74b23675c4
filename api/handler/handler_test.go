package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/codetrail/codetrail/database"
	"github.com/codetrail/codetrail/validate"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// HandlerTestSuite drives the JSON API against a fresh sqlite store,
// with the session middleware replaced by a per-request user stub.
type HandlerTestSuite struct {
	suite.Suite
	db     *database.DB
	router *gin.Engine

	member *database.User
	other  *database.User
	admin  *database.User
}

// currentUser is swapped per request to act as different users.
var currentUser *database.User

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	db, err := database.New(suite.T().TempDir())
	suite.Require().NoError(err)
	suite.db = db

	suite.member, err = db.GetOrCreateUser(ctx, "google-member", "Member", "member@example.com", "")
	suite.Require().NoError(err)
	suite.other, err = db.GetOrCreateUser(ctx, "google-other", "Other", "other@example.com", "")
	suite.Require().NoError(err)
	suite.admin, err = db.GetOrCreateUser(ctx, "google-admin", "Admin", "admin@example.com", "")
	suite.Require().NoError(err)
	_, err = db.ToggleAdmin(ctx, suite.admin.ID)
	suite.Require().NoError(err)

	h := New(db)

	setUser := func(c *gin.Context) {
		c.Set("user", currentUser)
		c.Next()
	}

	suite.router = gin.New()
	suite.router.Use(setUser)

	tags := suite.router.Group("/api/tags")
	tags.GET("", h.ListTags)
	tags.POST("", h.CreateTag)
	tags.GET("/unapproved", h.ListUnapprovedTags)
	tags.PUT("/update", h.UpdateTag)
	tags.PATCH("/approved-status", h.ToggleTagApproval)
	tags.DELETE("/:tagId", h.DeleteTag)

	tutorials := suite.router.Group("/api/tutorials")
	tutorials.GET("", h.ListTutorials)
	tutorials.GET("/tutorial/:tutorialId", h.GetTutorial)
	tutorials.GET("/tag/:tagId", h.ListTutorialsByTag)
	tutorials.POST("", h.CreateTutorial)
	tutorials.POST("/upvote/:tutorialId", h.AddUpvote)
	tutorials.DELETE("/upvote/:tutorialId", h.RemoveUpvote)
	tutorials.POST("/comment/:tutorialId", h.AddComment)
	tutorials.DELETE("/comment/:tutorialId/:commentId", h.RemoveComment)
	tutorials.DELETE("/cancel/:tutorialId", h.CancelTutorial)
	tutorials.PATCH("/approved-status", h.ToggleTutorialApproval)

	tracks := suite.router.Group("/api/tracks")
	tracks.GET("", h.ListTracks)
	tracks.GET("/track/:trackId", h.GetTrack)
	tracks.POST("", h.CreateTrack)
	tracks.DELETE("/cancel/:trackId", h.CancelTrack)

	user := suite.router.Group("/api/user")
	user.GET("/favorites", h.ListFavorites)
	user.POST("/favorites/:tutorialId", h.AddFavorite)
	user.GET("/tracks", h.ListSubscriptions)
	user.POST("/tracks/:trackId", h.Subscribe)
	user.PATCH("/tracks/:trackId", h.UpdateTrackProgress)
	user.PUT("/update", h.UpdateProfile)
	user.PATCH("/admin-status", h.ToggleAdmin)

	feedbacks := suite.router.Group("/api/feedbacks")
	feedbacks.POST("", h.CreateFeedback)

	currentUser = suite.member
}

func (suite *HandlerTestSuite) TearDownTest() {
	if suite.db != nil {
		_ = suite.db.Close()
	}
}

func (suite *HandlerTestSuite) do(as *database.User, method, path string, body any) *httptest.ResponseRecorder {
	currentUser = as

	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body struct {
		Error        bool   `json:"error"`
		ErrorMessage string `json:"errorMessage"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.True(body.Error)
	return body.ErrorMessage
}

func (suite *HandlerTestSuite) createTag(name string) uint {
	w := suite.do(suite.member, http.MethodPost, "/api/tags", gin.H{"name": name})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var body struct {
		Tag struct {
			ID uint `json:"id"`
		} `json:"tag"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Tag.ID
}

func (suite *HandlerTestSuite) createTutorial(title, link string) uint {
	tagID := suite.createTag("tag for " + title)
	w := suite.do(suite.member, http.MethodPost, "/api/tutorials", validate.TutorialInput{
		Title:          title,
		Link:           link,
		Tags:           []uint{tagID},
		Educator:       "Jane Doe",
		Medium:         "Video",
		TypeOfTutorial: "Free",
		SkillLevel:     "Beginner",
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var body struct {
		Tutorial struct {
			ID uint `json:"id"`
		} `json:"tutorial"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Tutorial.ID
}

func (suite *HandlerTestSuite) createTrack(name string, as *database.User) uint {
	tutorialID := suite.createTutorial("for "+name, "https://example.com/"+name)
	w := suite.do(as, http.MethodPost, "/api/tracks", gin.H{
		"name":        name,
		"description": "a learning path",
		"tutorials":   []uint{tutorialID},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var body struct {
		Track struct {
			ID uint `json:"id"`
		} `json:"track"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Track.ID
}

func (suite *HandlerTestSuite) TestTagSubmissionAndApprovalFlow() {
	w := suite.do(suite.member, http.MethodPost, "/api/tags", gin.H{"name": "C#"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created struct {
		Tag struct {
			ID         uint   `json:"id"`
			Name       string `json:"name"`
			Slug       string `json:"slug"`
			IsApproved bool   `json:"isApproved"`
		} `json:"tag"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal("C#", created.Tag.Name)
	suite.Equal("c-sharp", created.Tag.Slug)
	suite.False(created.Tag.IsApproved)

	w = suite.do(suite.admin, http.MethodPatch, "/api/tags/approved-status", gin.H{"tagId": created.Tag.ID})
	suite.Require().Equal(http.StatusOK, w.Code)

	var toggled struct {
		Tag struct {
			IsApproved bool `json:"isApproved"`
		} `json:"tag"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &toggled))
	suite.True(toggled.Tag.IsApproved)

	w = suite.do(suite.admin, http.MethodPatch, "/api/tags/approved-status", gin.H{"tagId": created.Tag.ID})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &toggled))
	suite.False(toggled.Tag.IsApproved)
}

func (suite *HandlerTestSuite) TestCreateTagValidation() {
	w := suite.do(suite.member, http.MethodPost, "/api/tags", gin.H{"name": "  "})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Tag name is required", suite.errorMessage(w))

	w = suite.do(suite.member, http.MethodPost, "/api/tags", gin.H{"name": "a tag name that is far too long to accept"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Tag should contain maximum 30 characters", suite.errorMessage(w))

	suite.createTag("GraphQL")
	w = suite.do(suite.member, http.MethodPost, "/api/tags", gin.H{"name": "GraphQL"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Tag already exist", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestInvalidIDParams() {
	w := suite.do(suite.admin, http.MethodDelete, "/api/tags/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid Tag Id", suite.errorMessage(w))

	w = suite.do(suite.member, http.MethodGet, "/api/tutorials/tutorial/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid Tutorial Id", suite.errorMessage(w))

	w = suite.do(suite.member, http.MethodGet, "/api/tracks/track/abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid Track Id", suite.errorMessage(w))

	w = suite.do(suite.admin, http.MethodPatch, "/api/user/admin-status", gin.H{"userId": "abc"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid User Id", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestTutorialValidationMessages() {
	tagID := suite.createTag("Docker")

	cases := []struct {
		payload gin.H
		message string
	}{
		{gin.H{"link": "https://example.com/x", "tags": []uint{tagID}, "educator": "E", "medium": "Video", "typeOfTutorial": "Free", "skillLevel": "Beginner"}, "Tutorial title is required"},
		{gin.H{"title": "T", "link": "https://example.com/x", "educator": "E", "medium": "Video", "typeOfTutorial": "Free", "skillLevel": "Beginner"}, "At least one tag is required"},
		{gin.H{"title": "T", "link": "https://example.com/x", "tags": []uint{1, 2, 3, 4, 5, 6}, "educator": "E", "medium": "Video", "typeOfTutorial": "Free", "skillLevel": "Beginner"}, "A tutorial can contain maximum of 5 tags"},
		{gin.H{"title": "T", "link": "https://example.com/x", "tags": []uint{tagID}, "educator": "E", "medium": "Podcast", "typeOfTutorial": "Free", "skillLevel": "Beginner"}, `Tutorial medium should be one of "Video" or "Blog"`},
		{gin.H{"title": "T", "link": "https://example.com/x", "tags": []uint{tagID}, "educator": "E", "medium": "Video", "typeOfTutorial": "Freemium", "skillLevel": "Beginner"}, `Tutorial type should be one of "Free" or "Paid"`},
		{gin.H{"title": "T", "link": "https://example.com/x", "tags": []uint{tagID}, "educator": "E", "medium": "Video", "typeOfTutorial": "Free", "skillLevel": "Expert"}, `Tutorial skill level should be one of "Beginner", "Intermediate" or "Advanced"`},
		{gin.H{"title": "T", "link": "not a link", "tags": []uint{tagID}, "educator": "E", "medium": "Video", "typeOfTutorial": "Free", "skillLevel": "Beginner"}, "Invalid tutorial link"},
	}
	for _, tc := range cases {
		w := suite.do(suite.member, http.MethodPost, "/api/tutorials", tc.payload)
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.Equal(tc.message, suite.errorMessage(w))
	}
}

func (suite *HandlerTestSuite) TestUpvoteEndpointSetSemantics() {
	tutorialID := suite.createTutorial("Upvotable", "https://example.com/upvotable")
	path := "/api/tutorials/upvote/" + strconv.FormatUint(uint64(tutorialID), 10)

	var body struct {
		Upvotes []uint `json:"upvotes"`
	}

	w := suite.do(suite.other, http.MethodPost, path, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal([]uint{suite.other.ID}, body.Upvotes)

	w = suite.do(suite.other, http.MethodPost, path, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Upvotes, 1)

	w = suite.do(suite.other, http.MethodDelete, path, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Empty(body.Upvotes)
}

func (suite *HandlerTestSuite) TestCommentAuthorOnlyDelete() {
	tutorialID := suite.createTutorial("Commented", "https://example.com/commented")
	base := "/api/tutorials/comment/" + strconv.FormatUint(uint64(tutorialID), 10)

	w := suite.do(suite.member, http.MethodPost, base, gin.H{"comment": "great explanation"})
	suite.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Comments []struct {
			ID uint `json:"id"`
		} `json:"comments"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Comments, 1)

	commentPath := base + "/" + strconv.FormatUint(uint64(body.Comments[0].ID), 10)

	w = suite.do(suite.other, http.MethodDelete, commentPath, nil)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Only comments by you can be deleted", suite.errorMessage(w))

	w = suite.do(suite.member, http.MethodDelete, commentPath, nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlerTestSuite) TestCommentValidation() {
	tutorialID := suite.createTutorial("Quiet", "https://example.com/quiet")

	w := suite.do(suite.member, http.MethodPost, "/api/tutorials/comment/"+strconv.FormatUint(uint64(tutorialID), 10), gin.H{"comment": ""})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Comment is required", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestNonOwnerCannotCancelPendingTrack() {
	trackID := suite.createTrack("owned-track", suite.member)
	path := "/api/tracks/cancel/" + strconv.FormatUint(uint64(trackID), 10)

	w := suite.do(suite.other, http.MethodDelete, path, nil)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Only track owner can cancel request", suite.errorMessage(w))

	// the record survives the rejected cancel
	w = suite.do(suite.other, http.MethodGet, "/api/tracks/track/"+strconv.FormatUint(uint64(trackID), 10), nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(suite.member, http.MethodDelete, path, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(suite.member, http.MethodGet, "/api/tracks/track/"+strconv.FormatUint(uint64(trackID), 10), nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Track not found", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestTrackValidationMessages() {
	w := suite.do(suite.member, http.MethodPost, "/api/tracks", gin.H{"description": "d", "tutorials": []uint{1}})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Track name is required", suite.errorMessage(w))

	w = suite.do(suite.member, http.MethodPost, "/api/tracks", gin.H{"name": "n", "tutorials": []uint{1}})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Track description is required", suite.errorMessage(w))

	w = suite.do(suite.member, http.MethodPost, "/api/tracks", gin.H{"name": "n", "description": "d"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("At least one tutorial is required", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestTrackProgress() {
	trackID := suite.createTrack("progress-track", suite.member)
	path := "/api/user/tracks/" + strconv.FormatUint(uint64(trackID), 10)

	w := suite.do(suite.other, http.MethodPost, path, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	w = suite.do(suite.other, http.MethodPatch, path, gin.H{})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Track progress required", suite.errorMessage(w))

	w = suite.do(suite.other, http.MethodPatch, path, gin.H{"trackProgressIndex": 2})
	suite.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Tracks []struct {
			TrackID uint `json:"trackId"`
			Track   struct {
				ID   uint   `json:"id"`
				Name string `json:"name"`
				Slug string `json:"slug"`
			} `json:"track"`
			TrackProgressIndex int `json:"trackProgressIndex"`
		} `json:"tracks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body.Tracks, 1)
	suite.Equal(2, body.Tracks[0].TrackProgressIndex)
	suite.Equal(trackID, body.Tracks[0].Track.ID)
	suite.Equal("progress-track", body.Tracks[0].Track.Name)
	suite.Equal("progress-track", body.Tracks[0].Track.Slug)

	w = suite.do(suite.other, http.MethodPatch, path, gin.H{"trackProgressIndex": -10})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Track progress cannot be negative", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestProfileUpdate() {
	w := suite.do(suite.member, http.MethodPut, "/api/user/update", gin.H{"name": ""})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("User name is required", suite.errorMessage(w))

	w = suite.do(suite.member, http.MethodPut, "/api/user/update", gin.H{"name": "Renamed Member"})
	suite.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		User struct {
			Name string `json:"name"`
		} `json:"user"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Renamed Member", body.User.Name)
}

func (suite *HandlerTestSuite) TestFeedbackValidation() {
	w := suite.do(suite.member, http.MethodPost, "/api/feedbacks", gin.H{"message": "m"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Feedback title is required", suite.errorMessage(w))

	w = suite.do(suite.member, http.MethodPost, "/api/feedbacks", gin.H{"title": "t"})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Feedback message is required", suite.errorMessage(w))

	w = suite.do(suite.member, http.MethodPost, "/api/feedbacks", gin.H{"title": "t", "message": "m"})
	suite.Equal(http.StatusCreated, w.Code)
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
