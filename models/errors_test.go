package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalid(t *testing.T) {
	err := Invalid("title is required")

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, fmt.Errorf("create deck: %w", err), ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "title is required", err.Error())
}
