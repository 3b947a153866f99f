// Package pubsub fans out byte payloads to topic subscribers.
package pubsub

// PubSub publishes payloads to topics and delivers them to subscribers.
// Handlers must not block, a slow handler delays the whole topic.
type PubSub interface {
	Pub(topic string, data []byte) error
	Sub(topic string, handler func(data []byte)) (unsub func() error, err error)
}
