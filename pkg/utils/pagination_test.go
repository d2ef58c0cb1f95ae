package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	t.Run("exact division", func(t *testing.T) {
		assert.Equal(t, 5, CalculateTotalPages(50, 10))
	})

	t.Run("rounds up", func(t *testing.T) {
		assert.Equal(t, 6, CalculateTotalPages(51, 10))
		assert.Equal(t, 1, CalculateTotalPages(1, 10))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, CalculateTotalPages(0, 10))
	})

	t.Run("guards bad per page", func(t *testing.T) {
		assert.Equal(t, 0, CalculateTotalPages(50, 0))
	})
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 90, CalculateOffset(10, 10))

	// Out-of-range pages clamp to the first page.
	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 0, CalculateOffset(-3, 10))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 7, ParseInt("7", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-5", 1))
}
