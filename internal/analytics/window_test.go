package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricWindow_Previous(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	window := NewMetricWindow(now, 7)

	assert.Equal(t, now, window.End)
	assert.Equal(t, now.AddDate(0, 0, -7), window.Start)

	previous := window.Previous()
	assert.Equal(t, window.Start, previous.End)
	assert.Equal(t, now.AddDate(0, 0, -14), previous.Start)
	assert.Equal(t, 7, previous.Days)
}
