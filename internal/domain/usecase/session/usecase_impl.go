package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"weather-widget/internal/domain/entity"
	"weather-widget/internal/domain/gateway/store"
	"weather-widget/internal/domain/usecase/weather"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"
)

type sessionUseCase struct {
	idleTTL        time.Duration
	sessionGateway store.SessionGateway
	weatherUseCase weather.UseCase
	now            func() time.Time
}

func NewSessionUseCase(idleTTL time.Duration, sessionGateway store.SessionGateway, weatherUseCase weather.UseCase) UseCase {
	return &sessionUseCase{
		idleTTL:        idleTTL,
		sessionGateway: sessionGateway,
		weatherUseCase: weatherUseCase,
		now:            time.Now,
	}
}

// Current returns the session state, or a fresh idle session when none is stored
func (uc *sessionUseCase) Current(ctx context.Context, id string) (entity.Session, error) {
	session, err := uc.sessionGateway.FindByID(ctx, id)
	if err != nil {
		return entity.Session{}, fmt.Errorf("failed to find session: %w", err)
	}
	if session == nil {
		return entity.NewSession(id, uc.now()), nil
	}
	return *session, nil
}

// Lookup runs a weather lookup for the session and returns the final state
func (uc *sessionUseCase) Lookup(ctx context.Context, id string, city string) (entity.Session, error) {
	loading, err := uc.begin(ctx, id, city)
	if err != nil {
		return entity.Session{}, err
	}
	return uc.complete(ctx, loading)
}

// StartLookup stores the loading state and completes the lookup in a separate goroutine.
// A lookup already running for the same session is not canceled; whichever finishes
// last decides the stored state.
func (uc *sessionUseCase) StartLookup(ctx context.Context, id string, city string) (entity.Session, error) {
	loading, err := uc.begin(ctx, id, city)
	if err != nil {
		return entity.Session{}, err
	}

	go func() {
		if _, err := uc.complete(context.WithoutCancel(ctx), loading); err != nil {
			log.Error(msg.GetMessage("session.error.store-failed"),
				zap.String("session_id", id),
				zap.Error(err))
		}
	}()

	return loading, nil
}

// begin clears the previous outcome and stores the loading state
func (uc *sessionUseCase) begin(ctx context.Context, id string, city string) (entity.Session, error) {
	current, err := uc.Current(ctx, id)
	if err != nil {
		return entity.Session{}, err
	}

	loading := current.Begin(city, uc.now())
	if err := uc.sessionGateway.Save(ctx, loading); err != nil {
		return entity.Session{}, fmt.Errorf("failed to save loading state: %w", err)
	}
	return loading, nil
}

// complete runs the lookup and stores its outcome. The loading flag is cleared on every path.
func (uc *sessionUseCase) complete(ctx context.Context, loading entity.Session) (entity.Session, error) {
	reading, err := uc.weatherUseCase.Lookup(ctx, loading.City)

	var final entity.Session
	if err != nil {
		final = loading.Fail(userMessage(err), uc.now())
	} else {
		final = loading.Succeed(*reading, uc.now())
	}

	if err := uc.sessionGateway.Save(ctx, final); err != nil {
		// one more attempt so the stored session does not stay loading
		failed := loading.Fail(msg.GetMessage("session.error.store-failed"), uc.now())
		if retryErr := uc.sessionGateway.Save(ctx, failed); retryErr != nil {
			return final, fmt.Errorf("failed to save lookup outcome: %w", errors.Join(err, retryErr))
		}
		return failed, fmt.Errorf("failed to save lookup outcome: %w", err)
	}
	return final, nil
}

// RemoveIdleSessions deletes sessions untouched for longer than the configured TTL
func (uc *sessionUseCase) RemoveIdleSessions(ctx context.Context) (int, error) {
	removed, err := uc.sessionGateway.DeleteIdle(ctx, uc.now().Add(-uc.idleTTL))
	if err != nil {
		return 0, fmt.Errorf("failed to delete idle sessions: %w", err)
	}
	return removed, nil
}

func userMessage(err error) string {
	var lookupErr *weather.LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr.Message
	}
	return msg.GetMessage("weather.error.forecast-failed")
}
