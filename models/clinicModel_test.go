package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusScheduled, StatusConfirmed, StatusCompleted, StatusNoShow, StatusCancelled} {
		assert.True(t, ValidStatus(s), s)
	}
	for _, s := range []string{"", "rescheduled", "Scheduled", "done", "NO_SHOW"} {
		assert.False(t, ValidStatus(s), s)
	}
}
