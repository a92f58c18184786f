package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKillDialog_ConfirmSuccess(t *testing.T) {
	var killed int
	d := killDialog{send: func(pid int) error {
		killed = pid
		return nil
	}}

	d.open(321, "stress")
	assert.True(t, d.active())
	assert.Equal(t, dialogConfirming, d.state)

	d.handleKey("1")
	assert.Equal(t, 321, killed)
	assert.Equal(t, dialogResult, d.state)
	assert.Contains(t, d.result, "Successfully sent SIGTERM to PID 321")

	// Any key dismisses the result.
	d.handleKey("x")
	assert.Equal(t, dialogIdle, d.state)
	assert.False(t, d.active())
}

func TestKillDialog_ConfirmFailureShowsOSError(t *testing.T) {
	d := killDialog{send: func(pid int) error {
		return errors.New("operation not permitted")
	}}

	d.open(1, "init")
	d.handleKey("1")

	assert.Equal(t, dialogResult, d.state)
	assert.Contains(t, d.result, "operation not permitted")
	assert.Contains(t, d.result, "PID 1")

	d.handleKey("enter")
	assert.Equal(t, dialogIdle, d.state)
}

func TestKillDialog_AnyOtherKeyCancels(t *testing.T) {
	sent := false
	d := killDialog{send: func(pid int) error {
		sent = true
		return nil
	}}

	for _, key := range []string{"2", "q", "esc", "k", "enter"} {
		d.open(55, "sleep")
		d.handleKey(key)
		assert.Equal(t, dialogIdle, d.state, "key %q should cancel", key)
		assert.False(t, sent, "cancel must not submit the signal")
	}
}
