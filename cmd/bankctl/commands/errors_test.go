package commands

import (
	"errors"
	"testing"

	apperrors "bankagent/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	err := describe(apperrors.ErrInvalidTransfer.WithFields(map[string]string{
		"info":   "is required",
		"amount": "must be greater than or equal to 1",
	}))
	assert.Equal(t, apperrors.ErrInvalidTransfer.Message+"\n  amount: must be greater than or equal to 1\n  info: is required", err.Error())

	plain := errors.New("boom")
	assert.Same(t, plain, describe(plain))
	assert.Nil(t, describe(nil))
}
