// Package fakes holds in-process recording doubles for the notify
// contracts. Each instance is owned by the single test that constructed
// it: there is no internal locking, so tests running in parallel must
// each build their own instances.
package fakes

import (
	"github.com/pkg/errors"

	"github.com/code-for-venezuela/notifytest/pkg/notify"
	"github.com/code-for-venezuela/notifytest/pkg/record"
)

// ErrPublishBoom is the forced failure returned by a FakeClient built
// with shouldRaise. The message marks it as deliberately test-induced,
// not a real downstream error.
var ErrPublishBoom = errors.New("publish boom")

// RecordingPublisher captures publish invocations for assertions.
type RecordingPublisher struct {
	Calls record.Log
}

func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

// Publish appends the received fields to Calls. It never fails.
func (p *RecordingPublisher) Publish(fields record.Fields) error {
	p.Calls.Append(fields)
	return nil
}

// FakeClient is a notification-service client stub that records
// payloads and can raise on demand.
type FakeClient struct {
	Published   record.Log
	shouldRaise bool
}

// NewFakeClient returns a client stub. Pass shouldRaise to make every
// Publish call fail with ErrPublishBoom.
func NewFakeClient(shouldRaise bool) *FakeClient {
	return &FakeClient{shouldRaise: shouldRaise}
}

// Publish records the fields before any forced failure, so a test can
// assert that a call was attempted even when it failed.
func (c *FakeClient) Publish(fields record.Fields) error {
	c.Published.Append(fields)
	if c.shouldRaise {
		return ErrPublishBoom
	}
	return nil
}

// RecordingLogger captures structured log payloads.
type RecordingLogger struct {
	Entries record.Log
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

// Log appends the received fields to Entries. It never fails.
func (l *RecordingLogger) Log(fields record.Fields) {
	l.Entries.Append(fields)
}

var (
	_ notify.Publisher = (*RecordingPublisher)(nil)
	_ notify.Publisher = (*FakeClient)(nil)
	_ notify.Logger    = (*RecordingLogger)(nil)
)
