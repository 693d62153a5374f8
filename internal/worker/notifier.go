package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/medremind/appointment-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/notifier_mock.go -package=mocks

type dispatchConsumer interface {
	Consume(out chan<- queue.DispatchMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.DispatchMessage, strategy retry.Strategy)
}

type jobService interface {
	GetJobStatusByID(context.Context, retry.Strategy, uuid.UUID) (string, error)
}

// Notifier is the dispatch worker pool: it consumes claimed jobs from the
// queue and hands them to the message handler.
type Notifier struct {
	queue   dispatchConsumer
	handler messageHandler
	service jobService
}

func NewNotifier(q dispatchConsumer, h messageHandler, s jobService) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
		service: s,
	}
}

func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.DispatchMessage, workerCount*10)

	go func() {
		if err := n.queue.Consume(msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					status, err := n.service.GetJobStatusByID(ctx, strategy, msg.JobID)
					if err != nil {
						zlog.Logger.Printf("failed to get status for %s: %v", msg.JobID, err)
						continue
					}

					if status == "cancelled" {
						zlog.Logger.Printf("job %s cancelled, skipping", msg.JobID)
						continue
					}

					n.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("notifier stopped")
}
