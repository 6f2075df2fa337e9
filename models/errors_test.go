package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateGamePickErrorMessage(t *testing.T) {
	err := &DuplicateGamePickError{GameID: "1-2"}
	assert.Equal(t, "game 1-2 already picked this week", err.Error())
}

func TestWeeklyLimitErrorMessage(t *testing.T) {
	err := &WeeklyLimitError{Current: 2, Attempted: 2}
	assert.Contains(t, err.Error(), "2 existing + 2 new > 3 allowed")
}

func TestInvalidRequestWrapping(t *testing.T) {
	err := fmt.Errorf("%w: week is required", ErrInvalidRequest)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}
