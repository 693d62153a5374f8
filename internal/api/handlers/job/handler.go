// Package job exposes the operational API of the scheduler: job status,
// cancellation and queue statistics. There is no write surface; records
// enter through the record source only.
package job

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/medremind/appointment-notifier/internal/api/respond"
	"github.com/medremind/appointment-notifier/internal/config"
	"github.com/medremind/appointment-notifier/internal/model"
	jobrepo "github.com/medremind/appointment-notifier/internal/repository/job"
	jobsvc "github.com/medremind/appointment-notifier/internal/service/job"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/job/mock.go -package=mocks

type jobService interface {
	GetJobStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
	SetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) error
	Stats(ctx context.Context, strategy retry.Strategy) (jobsvc.Stats, error)
}

type Handler struct {
	service jobService
	cfg     *config.Config
}

func NewHandler(s jobService, cfg *config.Config) *Handler {
	return &Handler{service: s, cfg: cfg}
}

func (h *Handler) GetStatus(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	status, err := h.service.GetJobStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, jobrepo.ErrJobNotFound) {
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("job not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("job not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to get job status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}

func (h *Handler) Cancel(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	err = h.service.SetStatus(c.Request.Context(), h.cfg.Retry, id, model.StatusCancelled)
	if err != nil {
		if errors.Is(err, jobrepo.ErrJobNotFound) {
			zlog.Logger.Warn().Interface("id", id).Err(err).Msg("job not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("job not found"))
			return
		}

		zlog.Logger.Error().Err(err).Interface("id", id).Msg("failed to cancel job")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "job cancelled")
}

func (h *Handler) Stats(c *ginext.Context) {
	stats, err := h.service.Stats(c.Request.Context(), h.cfg.Retry)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get job stats")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, stats)
}
