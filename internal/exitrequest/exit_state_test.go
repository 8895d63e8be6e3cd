package exitrequest_test

import (
	"errors"
	"testing"

	"go-offboarding/internal/exitrequest"
	exiterrors "go-offboarding/internal/exitrequest/errors"

	"github.com/stretchr/testify/assert"
)

var forwardPath = []exitrequest.Status{
	exitrequest.StatusInitiated,
	exitrequest.StatusManagerApproved,
	exitrequest.StatusHRApproved,
	exitrequest.StatusClearanceCompleted,
	exitrequest.StatusSettlementCompleted,
	exitrequest.StatusCompleted,
}

func TestCanTransition(t *testing.T) {
	t.Run("each immediate successor is allowed", func(t *testing.T) {
		for i := 0; i < len(forwardPath)-1; i++ {
			assert.NoError(t, exitrequest.CanTransition(forwardPath[i], forwardPath[i+1]),
				"%s -> %s", forwardPath[i], forwardPath[i+1])
		}
	})

	t.Run("skipping, repeating and going back are rejected", func(t *testing.T) {
		for i, from := range forwardPath {
			for j, to := range forwardPath {
				if j == i+1 {
					continue
				}
				err := exitrequest.CanTransition(from, to)
				assert.ErrorIs(t, err, exiterrors.ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
	})

	t.Run("cancel from every non-terminal status", func(t *testing.T) {
		for _, from := range forwardPath[:len(forwardPath)-1] {
			assert.NoError(t, exitrequest.CanTransition(from, exitrequest.StatusCancelled), "from %s", from)
		}
	})

	t.Run("terminal statuses are absorbing", func(t *testing.T) {
		for _, from := range []exitrequest.Status{exitrequest.StatusCompleted, exitrequest.StatusCancelled} {
			for _, to := range append(forwardPath, exitrequest.StatusCancelled) {
				assert.ErrorIs(t, exitrequest.CanTransition(from, to), exiterrors.ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
	})

	t.Run("error explains the refusal", func(t *testing.T) {
		err := exitrequest.CanTransition(exitrequest.StatusInitiated, exitrequest.StatusHRApproved)

		var terr *exiterrors.InvalidTransitionError
		if assert.True(t, errors.As(err, &terr)) {
			assert.Equal(t, "initiated", terr.From)
			assert.Equal(t, "hr_approved", terr.To)
			assert.Contains(t, terr.Reason, "manager_approved")
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, exitrequest.StatusCompleted.IsTerminal())
	assert.True(t, exitrequest.StatusCancelled.IsTerminal())
	assert.False(t, exitrequest.StatusHRApproved.IsTerminal())
	assert.False(t, exitrequest.Status("archived").Valid())
}
