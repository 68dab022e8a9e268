package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter is the subset of *kafka.Writer the audit stream needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaLogger writes each entry to the audit topic and also hands it to a
// fallback logger, so entries survive a broker outage in the service logs.
type KafkaLogger struct {
	writer   MessageWriter
	fallback Logger
	timeout  time.Duration
	logger   *zap.Logger
}

func NewKafkaLogger(writer MessageWriter, fallback Logger, logger ...*zap.Logger) *KafkaLogger {
	l := zap.L().Named("audit.kafka")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.kafka")
	}
	if fallback == nil {
		fallback = Nop()
	}
	return &KafkaLogger{
		writer:   writer,
		fallback: fallback,
		timeout:  2 * time.Second,
		logger:   l,
	}
}

func (k *KafkaLogger) Log(ctx context.Context, entry Entry) {
	entry = stamp(ctx, entry)
	k.fallback.Log(ctx, entry)

	payload, err := json.Marshal(entry)
	if err != nil {
		k.logger.Error("marshal audit entry failed", zap.String("action", entry.Action), zap.Error(err))
		return
	}

	// detached from the request so a cancelled client still gets audited
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), k.timeout)
	defer cancel()

	key := entry.TargetID
	if key == "" {
		key = entry.ActorID
	}

	err = k.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(entry.Action)},
			{Key: "request_id", Value: []byte(entry.RequestID)},
		},
		Time: entry.OccurredAt,
	})
	if err != nil {
		k.logger.Error("publish audit entry failed",
			zap.String("action", entry.Action),
			zap.String("request_id", entry.RequestID),
			zap.Error(err),
		)
	}
}
