package adminController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, canTransition("APPLIED", "SHORTLISTED"))
	assert.True(t, canTransition("APPLIED", "REJECTED"))
	assert.True(t, canTransition("SHORTLISTED", "HIRED"))
	assert.True(t, canTransition("SHORTLISTED", "REJECTED"))

	assert.False(t, canTransition("APPLIED", "HIRED"))
	assert.False(t, canTransition("REJECTED", "HIRED"))
	assert.False(t, canTransition("HIRED", "REJECTED"))
	assert.False(t, canTransition("APPLIED", "APPLIED"))
}
