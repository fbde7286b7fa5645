package publishers

import "context"

// logPublisher writes alerts to the application log. It is the zero-config
// sink, useful on its own for small deployments and as a tee next to real
// queues.
type logPublisher struct {
	id  string
	log Logger
}

func newLogPublisher(_ context.Context, cfg PublisherConfig, log Logger) (Publisher, error) {
	return &logPublisher{id: cfg.ID, log: ensureLogger(log)}, nil
}

func (l *logPublisher) ID() string   { return l.id }
func (l *logPublisher) Type() string { return TypeLog }

func (l *logPublisher) Publish(_ context.Context, evt Event) error {
	l.log.InfoObj("alert", "alert_event", evt)
	return nil
}
