package ingest

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, reading domain.TelemetryReading) error
}

// Ingestor decodes line-oriented telemetry and feeds the dispatcher, one
// reading at a time in arrival order. A bad line or a failed dispatch never
// stops the stream.
type Ingestor struct {
	dispatcher Dispatcher
	mailbox    *Mailbox
	logger     *slog.Logger
}

func New(dispatcher Dispatcher, mailbox *Mailbox, logger *slog.Logger) *Ingestor {
	return &Ingestor{
		dispatcher: dispatcher,
		mailbox:    mailbox,
		logger:     logger,
	}
}

// ConsumeLines reads r until EOF or context cancellation. Dispatch is called
// synchronously so there is at most one in-flight orchestration per line.
func (i *Ingestor) ConsumeLines(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		i.mailbox.Store(raw)

		reading, err := ParseReading(raw)
		if err != nil {
			i.logger.Warn("telemetry line discarded", slog.String("line", raw), slog.Any("error", err))
			continue
		}

		i.logger.Debug("telemetry decoded",
			slog.String("reading_id", reading.ReadingID.String()),
			slog.String("vehicle_no", reading.VehicleNo),
		)

		if err := i.dispatcher.Dispatch(ctx, reading); err != nil {
			// Failure is isolated to this reading; keep accepting lines.
			i.logger.Error("dispatch failed",
				slog.String("reading_id", reading.ReadingID.String()),
				slog.Any("error", err),
			)
		}
	}
	return scanner.Err()
}
