package record

// Log is the ordered history of invocation records accumulated by one
// test double. It is append-only for the lifetime of the instance and
// element order is call order, which is what assertions check.
type Log []Fields

// Append adds one invocation record to the end of the log.
func (l *Log) Append(f Fields) {
	*l = append(*l, f)
}

// Len returns the number of recorded calls.
func (l Log) Len() int {
	return len(l)
}

// At returns the nth recorded call, counting from 1. It returns nil when
// n is out of range, so a test asserting on a missing call fails on the
// comparison instead of panicking.
func (l Log) At(n int) Fields {
	if n < 1 || n > len(l) {
		return nil
	}
	return l[n-1]
}

// Last returns the most recent record, or nil for an empty log.
func (l Log) Last() Fields {
	if len(l) == 0 {
		return nil
	}
	return l[len(l)-1]
}

// Snapshot returns a copy of the log so a test can hold on to the state
// at one point while the double keeps recording.
func (l Log) Snapshot() Log {
	if l == nil {
		return nil
	}
	out := make(Log, len(l))
	copy(out, l)
	return out
}

// Reset clears the log so a double can be reused between sub-tests.
func (l *Log) Reset() {
	*l = nil
}
