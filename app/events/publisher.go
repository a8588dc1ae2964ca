// Package events delivers reaction notifications over NATS.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"

	"travelshare/app/logging"
	"travelshare/app/services"
)

// NATSPublisher publishes each event as JSON on <prefix>.<event type>.
type NATSPublisher struct {
	nc     *nats.Conn
	prefix string
	owned  bool
}

var _ services.EventPublisher = (*NATSPublisher)(nil)

// NewNATSPublisher publishes through an existing connection. The caller
// keeps ownership of nc.
func NewNATSPublisher(nc *nats.Conn, prefix string) *NATSPublisher {
	return &NATSPublisher{nc: nc, prefix: prefix}
}

// Connect dials url and returns a publisher that closes the connection on
// Close.
func Connect(url, prefix string) (*NATSPublisher, error) {
	log := logging.WithComponent("nats")
	nc, err := nats.Connect(url,
		nats.Name("travelshare"),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn().Err(err).Msg("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info().Str("url", c.ConnectedUrl()).Msg("nats reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats at %s: %w", url, err)
	}
	return &NATSPublisher{nc: nc, prefix: prefix, owned: true}, nil
}

// Subject returns the subject an event type is published on.
func (p *NATSPublisher) Subject(t services.EventType) string {
	if p.prefix == "" {
		return string(t)
	}
	return p.prefix + "." + string(t)
}

func (p *NATSPublisher) Publish(ctx context.Context, event services.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshalling error: %w", err)
	}

	msg := &nats.Msg{
		Subject: p.Subject(event.Type),
		Data:    data,
		Header:  nats.Header{},
	}
	msg.Header.Set("Content-Type", "application/json")
	return p.nc.PublishMsg(msg)
}

// Close flushes pending messages and closes an owned connection.
func (p *NATSPublisher) Close() error {
	if !p.owned {
		return nil
	}
	return p.nc.Drain()
}

// Noop discards every event.
type Noop struct{}

var _ services.EventPublisher = Noop{}

func (Noop) Publish(context.Context, services.Event) error { return nil }

func (Noop) Close() error { return nil }
