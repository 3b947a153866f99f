package pubsub

import (
	"fmt"

	"github.com/nats-io/nats.go"
)

// NATS shares topics between every instance connected to the same server.
type NATS struct {
	Conn *nats.Conn
}

func NewNATS(url string) (*NATS, error) {
	conn, err := nats.Connect(url, nats.Name("parcelmate"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &NATS{Conn: conn}, nil
}

func (ps *NATS) Pub(topic string, data []byte) error {
	if err := ps.Conn.Publish(topic, data); err != nil {
		return fmt.Errorf("nats publish %q: %w", topic, err)
	}

	return nil
}

func (ps *NATS) Sub(topic string, handler func(data []byte)) (func() error, error) {
	sub, err := ps.Conn.Subscribe(topic, func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("nats subscribe %q: %w", topic, err)
	}

	return sub.Unsubscribe, nil
}

// Close drains pending messages before closing the connection.
func (ps *NATS) Close() error {
	return ps.Conn.Drain()
}
