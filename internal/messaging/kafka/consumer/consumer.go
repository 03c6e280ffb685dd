package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-workforce/internal/bootstrap"
	"go-workforce/internal/events"
	"go-workforce/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeEmployeeLifecycle writes every employee lifecycle event to the audit
// log. Undecodable messages are committed and skipped.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader MessageReader,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		event, err := decodeLifecycleEvent(msg)
		if err != nil {
			log.Error("decode employee lifecycle event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditCtx := contextutil.WithRequestID(ctx, event.RequestID)
		audit.Log(auditCtx, bootstrap.AuditLog{
			Action:  event.EventType,
			Message: "employee lifecycle event",
			Meta: map[string]any{
				"employee_id": event.EmployeeID,
				"role_id":     event.RoleID,
				"occurred_at": event.OccurredAt,
				"partition":   msg.Partition,
				"offset":      msg.Offset,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
			continue
		}

		log.Debug("employee lifecycle event audited",
			zap.String("event_type", event.EventType),
			zap.String("employee_id", event.EmployeeID),
		)
	}
}

func decodeLifecycleEvent(msg kafkago.Message) (events.EmployeeLifecycleEvent, error) {
	var event events.EmployeeLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, err
	}
	if event.EventType == "" || event.EmployeeID == "" {
		return event, fmt.Errorf("incomplete lifecycle event at offset %d", msg.Offset)
	}
	return event, nil
}
