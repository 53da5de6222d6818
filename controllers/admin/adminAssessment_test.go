package adminController

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestValidAnswerKey(t *testing.T) {
	fourOptions := datatypes.JSON([]byte(`["a","b","c","d"]`))

	t.Run("index inside the option list", func(t *testing.T) {
		assert.True(t, validAnswerKey(fourOptions, 0))
		assert.True(t, validAnswerKey(fourOptions, 3))
	})

	t.Run("index-only update past the stored options", func(t *testing.T) {
		assert.False(t, validAnswerKey(fourOptions, 7))
		assert.False(t, validAnswerKey(fourOptions, 4))
		assert.False(t, validAnswerKey(fourOptions, -1))
	})

	t.Run("options-only update shrinking below the stored index", func(t *testing.T) {
		twoOptions := datatypes.JSON([]byte(`["a","b"]`))
		assert.False(t, validAnswerKey(twoOptions, 2))
		assert.True(t, validAnswerKey(twoOptions, 1))
	})

	t.Run("degenerate option lists", func(t *testing.T) {
		assert.False(t, validAnswerKey(datatypes.JSON([]byte(`["only"]`)), 0))
		assert.False(t, validAnswerKey(datatypes.JSON([]byte(`not json`)), 0))
		assert.False(t, validAnswerKey(nil, 0))
	})
}

func TestIsValidCategory(t *testing.T) {
	assert.True(t, isValidCategory("ANALYTICAL"))
	assert.True(t, isValidCategory("TECHNICAL"))
	assert.False(t, isValidCategory("analytical"))
	assert.False(t, isValidCategory(""))
}
