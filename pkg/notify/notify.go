// Package notify names the call shapes a system under test uses to
// publish notifications and to emit structured log records. The doubles
// in pkg/fakes implement these contracts; production code should accept
// them so tests can substitute a recorder.
package notify

import "github.com/code-for-venezuela/notifytest/pkg/record"

// Publisher is the publish-style collaborator: one call carries one
// record of named arguments. Real implementations may fail; recorders
// only fail when configured to.
type Publisher interface {
	Publish(fields record.Fields) error
}

// Logger is the structured-logging collaborator. Logging never fails.
type Logger interface {
	Log(fields record.Fields)
}
