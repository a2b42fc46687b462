package store

import (
	"context"
	"strconv"
	"sync"
	"time"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/model"
)

type MemorySessionGateway struct {
	sessions map[string]entity.Session
	mutex    sync.RWMutex
}

var _ SessionGateway = (*MemorySessionGateway)(nil)

func NewMemorySessionGateway() *MemorySessionGateway {
	return &MemorySessionGateway{
		sessions: make(map[string]entity.Session),
	}
}

func (gateway *MemorySessionGateway) FindByID(_ context.Context, id string) (*entity.Session, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	session, ok := gateway.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (gateway *MemorySessionGateway) Save(_ context.Context, session entity.Session) error {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.sessions[session.ID] = session
	return nil
}

func (gateway *MemorySessionGateway) Delete(_ context.Context, id string) error {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	delete(gateway.sessions, id)
	return nil
}

func (gateway *MemorySessionGateway) DeleteIdle(_ context.Context, before time.Time) (int, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	removed := 0
	for id, session := range gateway.sessions {
		// loading sessions still have a lookup in flight that will write to them
		if session.Loading {
			continue
		}
		if session.UpdatedAt.Before(before) {
			delete(gateway.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (gateway *MemorySessionGateway) Health() model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"type":     "memory",
			"sessions": strconv.Itoa(len(gateway.sessions)),
		},
	}
}
