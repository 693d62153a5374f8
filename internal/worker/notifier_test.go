package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/medremind/appointment-notifier/internal/mocks/worker"
	"github.com/medremind/appointment-notifier/internal/model"
	"github.com/medremind/appointment-notifier/internal/rabbitmq/queue"
)

func TestNotifier_Run_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdispatchConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockjobService(ctrl)

	n := NewNotifier(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	msg := queue.DispatchMessage{
		JobID:     uuid.New(),
		PatientID: "HN001",
		ChannelID: "U1234",
		Channel:   "line",
		Kind:      model.KindSendDate,
		FireAt:    time.Now(),
		Message:   "Hello",
	}

	mockConsumer.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(out chan<- queue.DispatchMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockService.EXPECT().GetJobStatusByID(gomock.Any(), strategy, msg.JobID).Return("firing", nil)
	mockHandler.EXPECT().HandleMessage(gomock.Any(), msg, strategy)

	go n.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestNotifier_Run_CancelledStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdispatchConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockjobService(ctrl)

	n := NewNotifier(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msg := queue.DispatchMessage{JobID: uuid.New()}

	mockConsumer.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(out chan<- queue.DispatchMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockService.EXPECT().GetJobStatusByID(gomock.Any(), strategy, msg.JobID).Return("cancelled", nil)

	go n.Run(ctx, strategy, 1)
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestNotifier_Run_GetStatusError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdispatchConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockjobService(ctrl)

	n := NewNotifier(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	msg := queue.DispatchMessage{JobID: uuid.New()}

	mockConsumer.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(out chan<- queue.DispatchMessage, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockService.EXPECT().GetJobStatusByID(gomock.Any(), strategy, msg.JobID).Return("", errors.New("db error"))

	go n.Run(ctx, strategy, 1)
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestNotifier_Run_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockdispatchConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)
	mockService := mocks.NewMockjobService(ctrl)

	n := NewNotifier(mockConsumer, mockHandler, mockService)

	ctx, cancel := context.WithCancel(context.Background())

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	consuming := make(chan struct{})
	mockConsumer.EXPECT().Consume(gomock.Any(), strategy).DoAndReturn(
		func(_ chan<- queue.DispatchMessage, _ retry.Strategy) error {
			close(consuming)
			<-ctx.Done()
			return nil
		},
	)

	go n.Run(ctx, strategy, 1)

	// cancel only after the consume loop is up, so the expectation is met
	<-consuming
	cancel()
	time.Sleep(50 * time.Millisecond)
}
