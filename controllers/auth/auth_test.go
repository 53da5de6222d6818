package authController

import (
	"testing"
	"time"

	"disha/models"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaultPermissions(t *testing.T) {
	admin := getDefaultPermissions("ADMIN")
	for _, permission := range []string{
		"manage-users",
		"manage-courses",
		"manage-companies",
		"manage-jobs",
		"review-applications",
		"manage-certificates",
		"manage-assessments",
		"view-dashboard",
	} {
		assert.Contains(t, admin, permission)
	}

	user := getDefaultPermissions("USER")
	assert.Contains(t, user, "take-assessment")
	assert.NotContains(t, user, "manage-users")
}

func TestAccountBlocked(t *testing.T) {
	now := time.Now()
	future := now.Add(10 * time.Minute)
	past := now.Add(-10 * time.Minute)

	t.Run("unblocked user may log in", func(t *testing.T) {
		user := models.User{IsBlocked: false}
		assert.False(t, accountBlocked(&user, now))
	})

	t.Run("admin block with no expiry is permanent", func(t *testing.T) {
		user := models.User{IsBlocked: true, BlockedUntil: nil}
		assert.True(t, accountBlocked(&user, now))
		assert.True(t, accountBlocked(&user, now.Add(365*24*time.Hour)))
	})

	t.Run("failed-attempt block holds until its deadline", func(t *testing.T) {
		user := models.User{IsBlocked: true, BlockedUntil: &future}
		assert.True(t, accountBlocked(&user, now))
	})

	t.Run("expired failed-attempt block lifts", func(t *testing.T) {
		user := models.User{IsBlocked: true, BlockedUntil: &past}
		assert.False(t, accountBlocked(&user, now))
	})
}
