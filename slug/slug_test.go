package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTag(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"C++", "c-plus-plus"},
		{"C#", "c-sharp"},
		{".NET", "dot-net"},
		{"ASP.NET", "asp-dot-net"},
		{"Machine Learning", "machine-learning"},
		{"Express", "express"},
		{"Node.js", "node-dot-js"},
		{"A/B Testing", "a-b-testing"},
		{"snake_case", "snake-case"},
		{"lots   of   spaces", "lots-of-spaces"},
		{"???", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tag(tt.name), tt.name)
	}
}

func TestTagDeterministic(t *testing.T) {
	for _, name := range []string{"C#", "ASP.NET", "Machine Learning"} {
		assert.Equal(t, Tag(name), Tag(name))
	}
}

func TestTrack(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Node.js Tutorials", "nodejs-tutorials"},
		{"Front-End Basics", "frontend-basics"},
		{"C++ From Scratch", "c-plus-plus-from-scratch"},
		{"Go Beyond The Basics", "go-beyond-the-basics"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Track(tt.name), tt.name)
	}
}

func TestTutorial(t *testing.T) {
	slug := Tutorial("Node.js Tutorials")
	assert.True(t, strings.HasPrefix(slug, "nodejs-tutorials-"), slug)
	assert.Equal(t, strings.ToLower(slug), slug)
}

func TestTutorialTokenUniqueness(t *testing.T) {
	first := Tutorial("Learn Go")
	second := Tutorial("Learn Go")
	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasPrefix(first, "learn-go-"))
	assert.True(t, strings.HasPrefix(second, "learn-go-"))
}
