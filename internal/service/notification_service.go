package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ride-sharing-service/internal/events"
)

// NotificationService reacts to ride events. Delivery is a logging stub; the
// subscription wiring is the part that matters to the pipeline.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventRideRequested, n.handleRideEvent)
	n.dispatcher.Subscribe(events.EventRideAccepted, n.handleRideEvent)
	n.dispatcher.Subscribe(events.EventRideStatusChanged, n.handleRideEvent)
	n.dispatcher.Subscribe(events.EventRideCancelled, n.handleRideEvent)
	n.dispatcher.Subscribe(events.EventTransactionRecorded, n.handleRideEvent)
}

func (n *NotificationService) handleRideEvent(_ context.Context, event events.Event) error {
	n.logger.Info("notification",
		zap.String("event", string(event.Type)),
		zap.String("ride_id", event.RideID),
		zap.String("actor", event.Actor.SubjectID),
		zap.Any("payload", event.Payload),
	)
	return nil
}
