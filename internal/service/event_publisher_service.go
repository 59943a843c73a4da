package service

import (
	"context"

	"ara-be/internal/pkg/logger"
	"ara-be/pkg/events"
)

// EventPublisher is satisfied by *nats.Publisher.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// IEventPublisherService emits domain events. Delivery is best effort: failures are logged, never returned.
type IEventPublisherService interface {
	PublishFunctionalityMoved(ctx context.Context, projectId int64, functionalityIds []int64, parentId *int64)
	PublishCoverageChanged(ctx context.Context, projectId int64, functionalityId int64)
	PublishDefectRefreshRequested(ctx context.Context, projectId int64, indexer string)
}

type eventPublisherService struct {
	publisher EventPublisher
	logger    logger.ILogger
}

// NewEventPublisherService accepts a nil publisher when NATS is unreachable.
func NewEventPublisherService(publisher EventPublisher, log logger.ILogger) IEventPublisherService {
	return &eventPublisherService{
		publisher: publisher,
		logger:    log,
	}
}

func (p *eventPublisherService) PublishFunctionalityMoved(ctx context.Context, projectId int64, functionalityIds []int64, parentId *int64) {
	p.publish(ctx, events.New(events.FunctionalityMoved, projectId, map[string]interface{}{
		"functionality_ids": functionalityIds,
		"parent_id":         parentId,
	}))
}

func (p *eventPublisherService) PublishCoverageChanged(ctx context.Context, projectId int64, functionalityId int64) {
	p.publish(ctx, events.New(events.CoverageChanged, projectId, map[string]interface{}{
		"functionality_id": functionalityId,
	}))
}

func (p *eventPublisherService) PublishDefectRefreshRequested(ctx context.Context, projectId int64, indexer string) {
	p.publish(ctx, events.New(events.DefectRefreshRequested, projectId, map[string]interface{}{
		"indexer": indexer,
	}))
}

func (p *eventPublisherService) publish(ctx context.Context, evt events.BaseEvent) {
	if p.publisher == nil {
		p.logger.Warn("EVENTS", "No event bus, dropping event", map[string]interface{}{"type": evt.Type})
		return
	}

	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+evt.Type+" event", map[string]interface{}{"error": err.Error()})
	}
}
