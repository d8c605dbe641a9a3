package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	gomail "gopkg.in/gomail.v2"

	"github.com/sanjjiiev/Smart-Sheild/internal/config"
	"github.com/sanjjiiev/Smart-Sheild/internal/domain"
)

var alertBody = template.Must(template.New("alert").Parse(`<p>An accident has been detected.</p>
<p><strong>Accident Vehicle:</strong> {{.AccVehicleNo}}</p>
<p><strong>Ambulance Assigned:</strong> {{.AmbVehicleNo}}</p>
<p>Click below to view the route:</p>
<a href="{{.RouteLink}}">{{.RouteLink}}</a>`))

// Mailer sends accident alerts over SMTP. One attempt per alert; delivery
// guarantees belong to the mail infrastructure, not to us.
type Mailer struct {
	cfg    config.SMTPConfig
	logger *slog.Logger
	dialer *gomail.Dialer
}

func New(cfg config.SMTPConfig, logger *slog.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		logger: logger,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *Mailer) SendAlert(ctx context.Context, alert domain.AccidentAlert) error {
	const op = "mailer.SendAlert"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(alert.Recipients) == 0 {
		m.logger.Warn("alert has no recipients, dropped",
			slog.String("op", op),
			slog.String("acc_vehicle_num", alert.AccVehicleNo),
		)
		return nil
	}

	var body bytes.Buffer
	if err := alertBody.Execute(&body, alert); err != nil {
		return fmt.Errorf("%s: render body: %w", op, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", alert.Recipients...)
	msg.SetHeader("Subject", "Emergency Accident Alert")
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.logger.Info("accident alert sent",
		slog.String("acc_vehicle_num", alert.AccVehicleNo),
		slog.Int("recipients", len(alert.Recipients)),
	)
	return nil
}
