package ingest

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"go.bug.st/serial"

	"github.com/sanjjiiev/Smart-Sheild/internal/config"
	"github.com/sanjjiiev/Smart-Sheild/pkg/e"
)

// Run consumes telemetry from the configured transport until the context is
// canceled.
func (i *Ingestor) Run(ctx context.Context, cfg config.TelemetryConfig) error {
	switch cfg.Mode {
	case "serial":
		return i.runSerial(ctx, cfg)
	case "tcp":
		return i.listenTCP(ctx, cfg.ListenAddr)
	default:
		return errors.New("unknown telemetry mode: " + cfg.Mode)
	}
}

func (i *Ingestor) runSerial(ctx context.Context, cfg config.TelemetryConfig) error {
	const op = "ingest.runSerial"

	port, err := serial.Open(cfg.SerialPort, &serial.Mode{BaudRate: cfg.BaudRate})
	if err != nil {
		return e.Wrap(op, err)
	}
	i.logger.Info("serial port opened",
		slog.String("port", cfg.SerialPort),
		slog.Int("baud_rate", cfg.BaudRate),
	)

	// Closing the port unblocks the reader when shutdown starts.
	go func() {
		<-ctx.Done()
		_ = port.Close()
	}()

	err = i.ConsumeLines(ctx, port)
	if ctx.Err() != nil {
		i.logger.Info("serial ingest stopped", slog.String("reason", ctx.Err().Error()))
		return nil
	}
	return err
}

// listenTCP accepts the same line protocol on a listener, for bench runs
// without the sensor hardware. Connections are drained one at a time to keep
// the one-reading-in-flight guarantee.
func (i *Ingestor) listenTCP(ctx context.Context, addr string) error {
	const op = "ingest.listenTCP"

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return e.Wrap(op, err)
	}
	i.logger.Info("telemetry listener started", slog.String("addr", addr))

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				i.logger.Info("telemetry listener stopped", slog.String("reason", ctx.Err().Error()))
				return nil
			}
			i.logger.Error("accept failed", slog.Any("error", err))
			continue
		}

		i.logger.Info("telemetry connection", slog.String("remote", conn.RemoteAddr().String()))
		if err := i.ConsumeLines(ctx, conn); err != nil && ctx.Err() == nil {
			i.logger.Warn("telemetry connection error", slog.Any("error", err))
		}
		_ = conn.Close()
	}
}
