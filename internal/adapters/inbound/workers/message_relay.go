package workers

import (
	"context"
	"time"

	"github.com/evolvehq/evolve-backend/internal/usecases"
	"go.uber.org/zap"
)

// MessageRelay is a runnable that drains outbox events and publishes them to Pub/Sub.
type MessageRelay struct {
	MessageDispatcher   usecases.RelayOutbox `resolve:""`
	Logger              *zap.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic processing of outbox events.
func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Info("MessageRelay: running...")
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := mr.MessageDispatcher.Execute(ctx)
			if err != nil {
				mr.Logger.Error("error processing batch", zap.Error(err))
			}
			if mr.workerExecutionChan != nil {
				mr.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			mr.Logger.Info("MessageRelay: stopping...")
			return nil
		}
	}
}
