package worker

import (
	"context"

	"go-gin-event-portal/internal/identity"
	"go-gin-event-portal/pkg/logger"

	"go.uber.org/zap"
)

// SessionSource publishes identity changes.
type SessionSource interface {
	Subscribe() (<-chan identity.Snapshot, func())
}

// StatePurger forgets per-user listing state.
type StatePurger interface {
	Purge(ctx context.Context) error
}

type SessionWorker interface {
	// Start follows the session until ctx is done.
	Start(ctx context.Context) error
}

type SessionWorkerImpl struct {
	source SessionSource
	states StatePurger
	done   chan struct{}
}

func NewSessionWorker(source SessionSource, states StatePurger) *SessionWorkerImpl {
	return &SessionWorkerImpl{
		source: source,
		states: states,
		done:   make(chan struct{}),
	}
}

// Start purges the listing screens whenever the signed-in user changes, so a
// new session never inherits the previous user's pages and filters.
func (w *SessionWorkerImpl) Start(ctx context.Context) error {
	snaps, cancel := w.source.Subscribe()
	log := logger.WithComponent("worker")

	go func() {
		defer close(w.done)
		defer cancel()

		subject := ""
		for {
			select {
			case <-ctx.Done():
				return
			case snap, ok := <-snaps:
				if !ok {
					return
				}
				if snap.Subject == subject {
					continue
				}
				subject = snap.Subject

				if err := w.states.Purge(ctx); err != nil {
					log.Error("failed to purge listing state", zap.Error(err))
					continue
				}
				log.Info("listing state purged",
					zap.Bool("authenticated", snap.Authenticated),
					zap.String("subject", snap.Subject),
				)
			}
		}
	}()
	return nil
}

// Done is closed once the worker has stopped.
func (w *SessionWorkerImpl) Done() <-chan struct{} {
	return w.done
}
