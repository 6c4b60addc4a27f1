package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	appt "github.com/luminasalon/salon-manager/internal/domain/appointment"
	"github.com/luminasalon/salon-manager/internal/models"
)

type Mailer interface {
	Send(to, subject, htmlBody string)
}

// Scheduler mails clients one hour before their confirmed appointment.
// It ticks every minute and picks the appointments starting in exactly
// one hour, so each appointment is selected by a single tick.
type Scheduler struct {
	appointments appt.Repository
	mailer       Mailer
	loc          *time.Location
	cron         *cron.Cron
}

func New(appointments appt.Repository, mailer Mailer, loc *time.Location) *Scheduler {
	return &Scheduler{
		appointments: appointments,
		mailer:       mailer,
		loc:          loc,
		cron:         cron.New(),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.run); err != nil {
		return fmt.Errorf("register reminder job: %w", err)
	}
	s.cron.Start()
	log.Println("reminder scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	from := time.Now().Add(time.Hour).Truncate(time.Minute)
	to := from.Add(time.Minute - time.Second)

	upcoming, err := s.appointments.ListStartingBetween(ctx, "confirmed", from, to)
	if err != nil {
		log.Printf("reminder: list upcoming: %v", err)
		return
	}

	for i := range upcoming {
		ap := &upcoming[i]
		subject, body := reminderEmail(ap, s.loc)
		s.mailer.Send(ap.ClientEmail, subject, body)
	}
}

func reminderEmail(ap *models.Appointment, loc *time.Location) (subject, body string) {
	start := ap.StartTime.In(loc)
	subject = "Reminder: your appointment is in one hour"
	body = fmt.Sprintf(`
		<h2>See you soon, %s!</h2>
		<p>This is a reminder of your appointment today.</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Stylist:</strong> %s</li>
			<li><strong>Time:</strong> %s</li>
		</ul>
	`, ap.ClientName, ap.Service.Name, ap.Stylist.FullName, start.Format("3:04 PM"))
	return subject, body
}
