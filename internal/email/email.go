package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/kenemosam/saluni/internal/config"
	"github.com/kenemosam/saluni/internal/model"
	"github.com/kenemosam/saluni/internal/repository"
	"github.com/kenemosam/saluni/pkg/logger"
)

// Service emails salons about booking activity. It implements the booking
// engine's Notifier hook; send failures are logged and swallowed so a
// broken SMTP relay never fails a booking.
type Service struct {
	dialer *gomail.Dialer
	from   string
	salons repository.SalonRepository
	log    *logger.Logger
}

func NewService(cfg config.EmailConfig, salons repository.SalonRepository, log *logger.Logger) *Service {
	return &Service{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		salons: salons,
		log:    log,
	}
}

func (s *Service) BookingCreated(ctx context.Context, booking *model.Booking) {
	subject := "New booking received"
	body := fmt.Sprintf(
		"A new booking (%s) was placed for %s until %s. It is awaiting confirmation.",
		booking.ID,
		booking.StartTime.Format("Mon, 02 Jan 2006 15:04"),
		booking.EndTime.Format("15:04"),
	)
	s.notifySalon(ctx, booking, subject, body)
}

func (s *Service) BookingStatusChanged(ctx context.Context, booking *model.Booking) {
	subject := fmt.Sprintf("Booking %s", booking.Status)
	body := fmt.Sprintf(
		"Booking %s scheduled for %s is now %s.",
		booking.ID,
		booking.StartTime.Format("Mon, 02 Jan 2006 15:04"),
		booking.Status,
	)
	s.notifySalon(ctx, booking, subject, body)
}

func (s *Service) notifySalon(ctx context.Context, booking *model.Booking, subject, body string) {
	salon, err := s.salons.Get(ctx, booking.SalonID)
	if err != nil {
		s.log.Error(err, "failed to load salon for booking notification",
			"booking_id", booking.ID.String())
		return
	}
	if salon.Email == nil || *salon.Email == "" {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", *salon.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		s.log.Error(err, "failed to send booking notification",
			"booking_id", booking.ID.String(), "salon_id", salon.ID.String())
	}
}
