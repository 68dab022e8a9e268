package audit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type StdoutLogger struct {
	logger *zap.Logger
}

func NewStdoutLogger(logger ...*zap.Logger) *StdoutLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &StdoutLogger{logger: l}
}

func (l *StdoutLogger) Log(ctx context.Context, entry Entry) {
	entry = stamp(ctx, entry)
	l.logger.Info("audit event",
		zap.String("timestamp", entry.OccurredAt.Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("actor_id", entry.ActorID),
		zap.String("target_id", entry.TargetID),
		zap.String("request_id", entry.RequestID),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
