package booking

import (
	"fmt"

	"github.com/luminasalon/salon-manager/internal/models"
)

func confirmationEmail(ap *models.Appointment, serviceName, stylistName string) (subject, body string) {
	subject = "Your appointment request at Lumina Salon"
	body = fmt.Sprintf(`
		<h2>Thank you, %s!</h2>
		<p>We received your booking request:</p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Stylist:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Time:</strong> %s &ndash; %s</li>
		</ul>
		<p>You will get another email once the salon confirms your appointment.</p>
	`,
		ap.ClientName,
		serviceName,
		stylistName,
		ap.StartTime.Format("Monday, January 2 2006"),
		ap.StartTime.Format("15:04"),
		ap.EndTime.Format("15:04"),
	)
	return subject, body
}
