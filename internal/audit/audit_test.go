package audit_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-hrm/internal/audit"
	"go-hrm/internal/shared/contextutil"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return f.err
}

type recordingLogger struct {
	entries []audit.Entry
}

func (r *recordingLogger) Log(ctx context.Context, entry audit.Entry) {
	r.entries = append(r.entries, entry)
}

func TestKafkaLogger_Log(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-7")

	t.Run("publishes entry keyed by target", func(t *testing.T) {
		w := &fakeWriter{}
		fallback := &recordingLogger{}
		l := audit.NewKafkaLogger(w, fallback, zap.NewNop())

		l.Log(ctx, audit.Entry{Action: audit.ActionAdminDeleted, ActorID: "a1", TargetID: "t1"})

		assert.Len(t, w.msgs, 1)
		assert.Equal(t, "t1", string(w.msgs[0].Key))

		var got audit.Entry
		assert.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
		assert.Equal(t, audit.ActionAdminDeleted, got.Action)
		assert.Equal(t, "req-7", got.RequestID)
		assert.False(t, got.OccurredAt.IsZero())

		assert.Len(t, fallback.entries, 1)
	})

	t.Run("broker failure is logged not returned", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		w := &fakeWriter{err: errors.New("broker down")}
		l := audit.NewKafkaLogger(w, nil, zap.New(core))

		l.Log(ctx, audit.Entry{Action: audit.ActionLogin, ActorID: "a1"})

		assert.Equal(t, 1, logs.FilterMessage("publish audit entry failed").Len())
		assert.Equal(t, "a1", string(w.msgs[0].Key))
	})
}

func TestStdoutLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := audit.NewStdoutLogger(zap.New(core))

	l.Log(context.Background(), audit.Entry{Action: audit.ActionLogout, ActorID: "a1"})

	entries := logs.FilterMessage("audit event").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, audit.ActionLogout, entries[0].ContextMap()["action"])
}
