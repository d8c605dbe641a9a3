package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

type AlertMailer interface {
	SendAlert(ctx context.Context, alert domain.AccidentAlert) error
}

type AlertPopper interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.AccidentAlert, error)
}

// AlertSender drains the alert queue and hands each alert to the mailer.
// One attempt per alert: a failed send is logged and dropped, never retried,
// and never touches the stored accident record.
type AlertSender struct {
	logger *slog.Logger
	queue  AlertPopper
	mailer AlertMailer
}

func NewAlertSender(logger *slog.Logger, queue AlertPopper, mailer AlertMailer) *AlertSender {
	return &AlertSender{
		logger: logger,
		queue:  queue,
		mailer: mailer,
	}
}

func (s *AlertSender) Run(ctx context.Context) {
	s.logger.Info("alertSender STARTED")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alertSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		alert, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrAlertQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if err := s.mailer.SendAlert(ctx, alert); err != nil {
			s.logger.Error("alert send failed",
				slog.String("reading_id", alert.ReadingID.String()),
				slog.String("acc_vehicle_num", alert.AccVehicleNo),
				slog.Any("error", err),
			)
		}
	}
}
