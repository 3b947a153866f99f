package pubsub

import (
	"slices"
	"sync"
)

// Local is an in-process [PubSub] for single instance deployments.
// The zero value is ready to use.
type Local struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[string][]localSub
}

type localSub struct {
	id      uint64
	handler func(data []byte)
}

func (ps *Local) Pub(topic string, data []byte) error {
	ps.mu.RLock()
	subs := slices.Clone(ps.subs[topic])
	ps.mu.RUnlock()

	for _, s := range subs {
		s.handler(slices.Clone(data))
	}

	return nil
}

func (ps *Local) Sub(topic string, handler func(data []byte)) (func() error, error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.subs == nil {
		ps.subs = map[string][]localSub{}
	}

	ps.nextID++
	id := ps.nextID
	ps.subs[topic] = append(ps.subs[topic], localSub{id: id, handler: handler})

	var once sync.Once
	return func() error {
		once.Do(func() {
			ps.mu.Lock()
			defer ps.mu.Unlock()

			ps.subs[topic] = slices.DeleteFunc(ps.subs[topic], func(s localSub) bool {
				return s.id == id
			})
			if len(ps.subs[topic]) == 0 {
				delete(ps.subs, topic)
			}
		})
		return nil
	}, nil
}
