package schedule

import (
	"context"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-widget/internal/domain/usecase/session"
	"weather-widget/pkg/log"
	"weather-widget/pkg/msg"
)

// SessionScheduler sweeps idle widget sessions on a cron expression
type SessionScheduler struct {
	cron           *cron.Cron
	useCase        session.UseCase
	cronExpression string
}

func NewSessionScheduler(useCase session.UseCase, cronExpression string) *SessionScheduler {
	return &SessionScheduler{cron: cron.New(), useCase: useCase, cronExpression: cronExpression}
}

// InitSessionScheduleTasks registers the sweep and starts the cron
func (scheduler *SessionScheduler) InitSessionScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.cronExpression, scheduler.RemoveIdleSessions); err != nil {
		return err
	}

	scheduler.cron.Start()
	return nil
}

func (scheduler *SessionScheduler) RemoveIdleSessions() {
	requestID := uuid.NewString()
	log.Info(msg.GetMessage("session.sweep.start"), zap.String("request_id", requestID))

	removed, err := scheduler.useCase.RemoveIdleSessions(context.Background())
	if err != nil {
		log.Error(msg.GetMessage("session.sweep.fail"), zap.String("request_id", requestID), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("session.sweep.end", removed), zap.String("request_id", requestID))
}

// Stop waits for a running sweep to finish
func (scheduler *SessionScheduler) Stop() {
	ctx := scheduler.cron.Stop()
	<-ctx.Done()
}
