package service

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// IPublisherService pushes raw messages on the in-process coverage topic.
type IPublisherService interface {
	Publish(ctx context.Context, msg []byte) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (ps *publisherService) Publish(ctx context.Context, msg []byte) error {
	m := message.NewMessage(watermill.NewUUID(), msg)
	return ps.publisher.Publish(ps.topicName, m)
}
