// Package job handles claimed jobs coming off the dispatch queue: resolve
// attachments, push the message, record the outcome.
package job

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/medremind/appointment-notifier/internal/dispatch"
	"github.com/medremind/appointment-notifier/internal/model"
	"github.com/medremind/appointment-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/job/mock.go -package=mocks

type jobService interface {
	GetJobStatusFromStore(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
	RecordOutcome(ctx context.Context, strategy retry.Strategy, id uuid.UUID, delivered bool, reason string) (string, error)
}

type attachmentResolver interface {
	Resolve(ctx context.Context, patientID string) []model.AttachmentRef
}

type dispatcher interface {
	Dispatch(ctx context.Context, msg queue.DispatchMessage, attachments []model.AttachmentRef) dispatch.Result
}

type Handler struct {
	service    jobService
	resolver   attachmentResolver
	dispatcher dispatcher
}

func NewHandler(svc jobService, resolver attachmentResolver, dispatcher dispatcher) *Handler {
	return &Handler{
		service:    svc,
		resolver:   resolver,
		dispatcher: dispatcher,
	}
}

// HandleMessage processes one claimed job. The job row is re-checked
// first: a message whose job is no longer firing (cancelled, or reclaimed
// by the lease sweep and settled elsewhere) is skipped, which keeps the
// claim the sole serialization point. The re-check must read the store,
// not the cache: the cached status predates the claim.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.DispatchMessage, strategy retry.Strategy) {
	zlog.Logger.Info().Msgf("Handle Message: Got job %s (%s), due at %v", msg.JobID, msg.Kind, msg.FireAt)

	status, err := h.service.GetJobStatusFromStore(ctx, strategy, msg.JobID)
	if err != nil {
		// leave it to the lease sweep
		zlog.Logger.Error().Err(err).Msgf("Handle Message: failed to check status for %s", msg.JobID)
		return
	}

	if status != model.StatusFiring {
		zlog.Logger.Printf("Handle Message: job %s is %s, skipping", msg.JobID, status)
		return
	}

	attachments := h.resolver.Resolve(ctx, msg.PatientID)

	res := h.dispatcher.Dispatch(ctx, msg, attachments)

	if !res.Delivered {
		zlog.Logger.Printf("Handle Message: job %s dispatch failed: %s", msg.JobID, res.Reason)

		final, err := h.service.RecordOutcome(ctx, strategy, msg.JobID, false, res.Reason)
		if err != nil {
			zlog.Logger.Error().Err(err).Msgf("failed to record failure for %s", msg.JobID)
			return
		}

		if final == model.StatusFailed {
			zlog.Logger.Error().
				Str("id", msg.JobID.String()).
				Str("reason", res.Reason).
				Msg("job failed permanently")
		}
		return
	}

	zlog.Logger.Info().Msgf("Handle Message: job %s delivered with %d attachments", msg.JobID, len(attachments))
	if _, err := h.service.RecordOutcome(ctx, strategy, msg.JobID, true, ""); err != nil {
		zlog.Logger.Error().Err(err).Msgf("failed to record delivery for %s", msg.JobID)
	}
}
