package ui

import "fmt"

// dialogState drives the termination confirm/cancel flow:
//
//	idle -> confirming -> result -> idle
//	         \-> idle (any key but "1")
//
// While non-idle the dialog is modal: Update routes every key here and the
// normal dispatcher never sees them.
type dialogState int

const (
	dialogIdle dialogState = iota
	dialogConfirming
	dialogResult
)

// signalFunc submits the graceful-termination signal to a pid. Injected so
// tests can fake delivery; production wires proc.TerminateProcess.
type signalFunc func(pid int) error

// killDialog holds the target for the lifetime of one confirm interaction.
type killDialog struct {
	state  dialogState
	pid    int
	name   string
	result string
	send   signalFunc
}

func (d *killDialog) active() bool {
	return d.state != dialogIdle
}

// open starts a confirmation for the given process.
func (d *killDialog) open(pid int, name string) {
	d.state = dialogConfirming
	d.pid = pid
	d.name = name
	d.result = ""
}

// handleKey advances the state machine. Confirming: "1" submits the signal
// and shows the outcome, anything else cancels. Result: any key dismisses.
func (d *killDialog) handleKey(key string) {
	switch d.state {
	case dialogConfirming:
		if key != keyConfirm {
			d.state = dialogIdle
			return
		}
		if err := d.send(d.pid); err != nil {
			d.result = fmt.Sprintf("Failed to send SIGTERM to PID %d: %v", d.pid, err)
		} else {
			d.result = fmt.Sprintf("Successfully sent SIGTERM to PID %d", d.pid)
		}
		d.state = dialogResult

	case dialogResult:
		d.state = dialogIdle
	}
}
