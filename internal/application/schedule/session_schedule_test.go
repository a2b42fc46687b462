package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-widget/internal/domain/entity"
)

type stubSessionUseCase struct {
	removed int
	err     error
	calls   int
}

func (s *stubSessionUseCase) Current(context.Context, string) (entity.Session, error) {
	return entity.Session{}, nil
}

func (s *stubSessionUseCase) Lookup(context.Context, string, string) (entity.Session, error) {
	return entity.Session{}, nil
}

func (s *stubSessionUseCase) StartLookup(context.Context, string, string) (entity.Session, error) {
	return entity.Session{}, nil
}

func (s *stubSessionUseCase) RemoveIdleSessions(context.Context) (int, error) {
	s.calls++
	return s.removed, s.err
}

func TestRemoveIdleSessions(t *testing.T) {
	useCase := &stubSessionUseCase{removed: 3}
	scheduler := NewSessionScheduler(useCase, "*/5 * * * *")

	scheduler.RemoveIdleSessions()

	assert.Equal(t, 1, useCase.calls)
}

func TestRemoveIdleSessionsFailureIsLogged(t *testing.T) {
	useCase := &stubSessionUseCase{err: errors.New("store unavailable")}
	scheduler := NewSessionScheduler(useCase, "*/5 * * * *")

	assert.NotPanics(t, scheduler.RemoveIdleSessions)
	assert.Equal(t, 1, useCase.calls)
}

func TestInitSessionScheduleTasks(t *testing.T) {
	scheduler := NewSessionScheduler(&stubSessionUseCase{}, "*/5 * * * *")

	require.NoError(t, scheduler.InitSessionScheduleTasks())
	scheduler.Stop()
}

func TestInitSessionScheduleTasksRejectsInvalidCron(t *testing.T) {
	scheduler := NewSessionScheduler(&stubSessionUseCase{}, "not a cron")

	assert.Error(t, scheduler.InitSessionScheduleTasks())
}
