package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// EventSink is the part of posthog.Client the dashboard uses.
type EventSink interface {
	Enqueue(posthog.Message) error
	Close() error
}

// AnalyticsClient sends product events to PostHog. A client built without an
// API key is disabled and every call on it is a no-op.
type AnalyticsClient struct {
	sink   EventSink
	logger *slog.Logger
}

// NewAnalyticsClient connects to PostHog at endpoint. An empty apiKey or a
// client that cannot be built yields a disabled client.
func NewAnalyticsClient(apiKey, endpoint string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Info("PostHog API key is empty, analytics disabled")
		return &AnalyticsClient{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Warn("Failed to create PostHog client, analytics disabled", slog.String("error", err.Error()))
		return &AnalyticsClient{logger: logger}
	}
	logger.Info("PostHog analytics enabled", slog.String("endpoint", endpoint))
	return &AnalyticsClient{sink: client, logger: logger}
}

// NewAnalyticsClientWithSink wraps an already built sink.
func NewAnalyticsClientWithSink(sink EventSink, logger *slog.Logger) *AnalyticsClient {
	return &AnalyticsClient{sink: sink, logger: logger}
}

func (a *AnalyticsClient) Enabled() bool {
	return a != nil && a.sink != nil
}

// Track queues one event for distinctID. Delivery happens in the background.
func (a *AnalyticsClient) Track(distinctID, event string, properties map[string]any) {
	if !a.Enabled() {
		return
	}
	err := a.sink.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && a.logger != nil {
		a.logger.Warn("Failed to queue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes queued events.
func (a *AnalyticsClient) Close() {
	if !a.Enabled() {
		return
	}
	if err := a.sink.Close(); err != nil && a.logger != nil {
		a.logger.Warn("Failed to flush analytics events", slog.String("error", err.Error()))
	}
}
