package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	"github.com/medremind/appointment-notifier/internal/dispatch"
	mocks "github.com/medremind/appointment-notifier/internal/mocks/rabbitmq/handlers/job"
	svcmocks "github.com/medremind/appointment-notifier/internal/mocks/service/job"
	"github.com/medremind/appointment-notifier/internal/model"
	"github.com/medremind/appointment-notifier/internal/rabbitmq/queue"
	jobsvc "github.com/medremind/appointment-notifier/internal/service/job"
)

func testMessage() queue.DispatchMessage {
	return queue.DispatchMessage{
		JobID:     uuid.New(),
		PatientID: "HN001",
		ChannelID: "U1234",
		Channel:   "line",
		Kind:      model.KindAppointmentDay,
		FireAt:    time.Now(),
		Message:   "วันนี้คุณมีนัดหมาย",
	}
}

func TestHandler_HandleMessage_Delivered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockjobService(ctrl)
	resolverMock := mocks.NewMockattachmentResolver(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	h := NewHandler(serviceMock, resolverMock, dispatcherMock)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	attachments := []model.AttachmentRef{{FileName: "scan.png", Media: model.MediaImage}}

	serviceMock.EXPECT().GetJobStatusFromStore(gomock.Any(), strategy, msg.JobID).Return(model.StatusFiring, nil)
	resolverMock.EXPECT().Resolve(gomock.Any(), msg.PatientID).Return(attachments)
	dispatcherMock.EXPECT().Dispatch(gomock.Any(), msg, attachments).Return(dispatch.Result{Delivered: true})
	serviceMock.EXPECT().RecordOutcome(gomock.Any(), strategy, msg.JobID, true, "").Return(model.StatusDelivered, nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_DispatchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockjobService(ctrl)
	resolverMock := mocks.NewMockattachmentResolver(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	h := NewHandler(serviceMock, resolverMock, dispatcherMock)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	serviceMock.EXPECT().GetJobStatusFromStore(gomock.Any(), strategy, msg.JobID).Return(model.StatusFiring, nil)
	resolverMock.EXPECT().Resolve(gomock.Any(), msg.PatientID).Return(nil)
	dispatcherMock.EXPECT().Dispatch(gomock.Any(), msg, gomock.Nil()).
		Return(dispatch.Result{Delivered: false, Reason: "timeout"})
	serviceMock.EXPECT().RecordOutcome(gomock.Any(), strategy, msg.JobID, false, "timeout").
		Return(model.StatusPending, nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_DispatchFailsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockjobService(ctrl)
	resolverMock := mocks.NewMockattachmentResolver(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	h := NewHandler(serviceMock, resolverMock, dispatcherMock)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	serviceMock.EXPECT().GetJobStatusFromStore(gomock.Any(), strategy, msg.JobID).Return(model.StatusFiring, nil)
	resolverMock.EXPECT().Resolve(gomock.Any(), msg.PatientID).Return(nil)
	dispatcherMock.EXPECT().Dispatch(gomock.Any(), msg, gomock.Nil()).
		Return(dispatch.Result{Delivered: false, Reason: "unknown channel"})
	serviceMock.EXPECT().RecordOutcome(gomock.Any(), strategy, msg.JobID, false, "unknown channel").
		Return(model.StatusFailed, nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

// The firing re-check goes through the real service here: the cached
// status still says pending (set at enroll time, never touched by the
// bulk claim), and the job must be dispatched anyway because the store
// row says firing.
func TestHandler_HandleMessage_DispatchesDespiteStaleCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := svcmocks.NewMockjobRepository(ctrl)
	cacheMock := svcmocks.NewMockcache(ctrl)
	svc := jobsvc.NewService(repoMock, nil, cacheMock, nil, time.UTC, 5)

	resolverMock := mocks.NewMockattachmentResolver(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	h := NewHandler(svc, resolverMock, dispatcherMock)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	// no GetWithRetry expectation: reading the stale cached value here
	// would fail the test
	repoMock.EXPECT().GetJobStatusByID(gomock.Any(), msg.JobID).Return(model.StatusFiring, nil)
	repoMock.EXPECT().RecordOutcome(gomock.Any(), msg.JobID, true, "", 5).
		Return(model.NotificationJob{ID: msg.JobID, Status: model.StatusDelivered, AttemptCount: 1}, nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	resolverMock.EXPECT().Resolve(gomock.Any(), msg.PatientID).Return(nil)
	dispatcherMock.EXPECT().Dispatch(gomock.Any(), msg, gomock.Nil()).Return(dispatch.Result{Delivered: true})

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_NotFiringSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockjobService(ctrl)
	resolverMock := mocks.NewMockattachmentResolver(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	h := NewHandler(serviceMock, resolverMock, dispatcherMock)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	// lease sweep returned the job to pending before the worker got to it
	serviceMock.EXPECT().GetJobStatusFromStore(gomock.Any(), strategy, msg.JobID).Return(model.StatusPending, nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_StatusCheckError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serviceMock := mocks.NewMockjobService(ctrl)
	resolverMock := mocks.NewMockattachmentResolver(ctrl)
	dispatcherMock := mocks.NewMockdispatcher(ctrl)
	h := NewHandler(serviceMock, resolverMock, dispatcherMock)

	msg := testMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	serviceMock.EXPECT().GetJobStatusFromStore(gomock.Any(), strategy, msg.JobID).Return("", errors.New("db error"))

	h.HandleMessage(context.Background(), msg, strategy)
}
