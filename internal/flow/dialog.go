package flow

import (
	"errors"
	"sync"
)

// DialogState is the stage of the contact dialog.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogForm
	DialogSubmitting
	DialogSubmitted
)

// RequestState is the lifecycle of one in-flight submission. A request that
// is cancelled before it resolves is stale: its result must not touch the
// dialog.
type RequestState int

const (
	RequestPending RequestState = iota
	RequestResolved
	RequestCancelled
)

// Request tracks one asynchronous submission.
type Request struct {
	mu    sync.Mutex
	state RequestState
}

// resolve transitions pending → resolved and reports whether the result is
// still wanted. Resolving a cancelled request returns false.
func (r *Request) resolve() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != RequestPending {
		return false
	}
	r.state = RequestResolved
	return true
}

// Cancel marks a pending request stale.
func (r *Request) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == RequestPending {
		r.state = RequestCancelled
	}
}

func (r *Request) State() RequestState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

var (
	ErrDialogNotOpen     = errors.New("dialog is not showing the form")
	ErrAlreadySubmitting = errors.New("a submission is already in flight")
)

// ContactDialog is the contact form's state machine:
//
//	closed → form → submitting → {submitted | form (with error)}
//
// Close is reachable from form and submitted, and cancels any in-flight
// request so its late result is discarded.
type ContactDialog struct {
	mu       sync.Mutex
	state    DialogState
	errMsg   string
	inflight *Request
}

func NewContactDialog() *ContactDialog {
	return &ContactDialog{state: DialogClosed}
}

// Open shows the form.
func (d *ContactDialog) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state == DialogClosed {
		d.state = DialogForm
		d.errMsg = ""
	}
}

// BeginSubmit moves form → submitting and hands back the request whose
// completion must be reported through CompleteSubmit.
func (d *ContactDialog) BeginSubmit() (*Request, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch d.state {
	case DialogSubmitting:
		return nil, ErrAlreadySubmitting
	case DialogForm:
	default:
		return nil, ErrDialogNotOpen
	}
	d.state = DialogSubmitting
	d.errMsg = ""
	d.inflight = &Request{}
	return d.inflight, nil
}

// CompleteSubmit reports the outcome of a submission. Results of cancelled
// requests are dropped without touching the dialog.
func (d *ContactDialog) CompleteSubmit(r *Request, submitErr error) {
	if r == nil || !r.resolve() {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.inflight = nil
	if submitErr != nil {
		d.state = DialogForm
		d.errMsg = "Failed to send message. Please try again."
		return
	}
	d.state = DialogSubmitted
}

// Close dismisses the dialog from any visible state and marks an in-flight
// request stale rather than waiting for it.
func (d *ContactDialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inflight != nil {
		d.inflight.Cancel()
		d.inflight = nil
	}
	d.state = DialogClosed
	d.errMsg = ""
}

func (d *ContactDialog) State() DialogState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// ErrorMessage returns the inline form error, if any.
func (d *ContactDialog) ErrorMessage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errMsg
}
