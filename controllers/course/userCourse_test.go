package controllers

import (
	"testing"

	courseModels "disha/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSectionOutlineGroupsInOrder(t *testing.T) {
	topics := []courseModels.Topic{
		{Section: "Basics", Title: "Intro"},
		{Section: "Basics", Title: "Setup"},
		{Section: "Advanced", Title: "Patterns"},
		{Section: "Basics", Title: "Recap"},
	}

	outline := buildSectionOutline(topics)
	require.Len(t, outline, 2)

	assert.Equal(t, "Basics", outline[0].Section)
	assert.Len(t, outline[0].Topics, 3)
	assert.Equal(t, "Advanced", outline[1].Section)
	assert.Len(t, outline[1].Topics, 1)
}

func TestBuildSectionOutlineEmpty(t *testing.T) {
	assert.Empty(t, buildSectionOutline(nil))
}
