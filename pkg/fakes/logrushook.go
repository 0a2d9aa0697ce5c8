package fakes

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/code-for-venezuela/notifytest/pkg/record"
)

// LogrusHook feeds every fired logrus entry into a RecordingLogger, so
// code under test that logs through logrus can be checked with the same
// assertions as code calling notify.Logger directly.
type LogrusHook struct {
	Recorder *RecordingLogger
}

func NewLogrusHook(rec *RecordingLogger) *LogrusHook {
	return &LogrusHook{Recorder: rec}
}

// Levels registers the hook for every log level.
func (h *LogrusHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire converts the entry into an invocation record: level and msg
// first, then the entry data. Logrus fields are an unordered map, so
// data keys are sorted to keep the record deterministic.
func (h *LogrusHook) Fire(entry *logrus.Entry) error {
	fields := record.Fields{
		{Key: "level", Value: entry.Level.String()},
		{Key: "msg", Value: entry.Message},
	}
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, record.Field{Key: k, Value: entry.Data[k]})
	}
	h.Recorder.Log(fields)
	return nil
}

var _ logrus.Hook = (*LogrusHook)(nil)
