package mq

import "context"

type noopPublisher struct{}

// NewNoopPublisher returns a Publisher that drops every event.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishJSON(context.Context, string, any) error {
	return nil
}

func (noopPublisher) Close() error {
	return nil
}
