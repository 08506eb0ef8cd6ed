package service

import (
	"fmt"

	"nest/internal/domains/booking/model/dto"
)

func confirmationMail(details dto.NotificationDetails) (subject, body string) {
	subject = "Your consultation is confirmed"

	body = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
	<p>Hi %s,</p>
	<p>Your consultation has been confirmed for <strong>%s</strong> at <strong>%s</strong>.</p>
	%s
	<p>If you need to reschedule, just reply to this email.</p>
	<p>See you soon!</p>
</body>
</html>`, details.Name, details.Date, details.Time, locationLine(details))

	return subject, body
}

func cancellationMail(details dto.NotificationDetails) (subject, body string) {
	subject = "Your consultation has been cancelled"

	body = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
	<p>Hi %s,</p>
	<p>Your consultation scheduled for <strong>%s</strong> at <strong>%s</strong> has been cancelled.</p>
	<p>If this is unexpected or you would like to book a new time, just reply to this email.</p>
</body>
</html>`, details.Name, details.Date, details.Time)

	return subject, body
}

func adminConfirmationMail(details dto.NotificationDetails) (subject, body string) {
	subject = fmt.Sprintf("Consultation confirmed: %s on %s", details.Name, details.Date)

	body = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
	<p>A consultation has been confirmed.</p>
	<ul>
		<li>Name: %s</li>
		<li>Email: %s</li>
		<li>Date: %s</li>
		<li>Time: %s</li>
		<li>Location: %s</li>
		<li>Message: %s</li>
	</ul>
</body>
</html>`, details.Name, details.Email, details.Date, details.Time, details.Location, details.Message)

	return subject, body
}

func adminCancellationMail(details dto.NotificationDetails) (subject, body string) {
	subject = fmt.Sprintf("Consultation cancelled: %s on %s", details.Name, details.Date)

	body = fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
	<p>A consultation has been cancelled.</p>
	<ul>
		<li>Name: %s</li>
		<li>Email: %s</li>
		<li>Date: %s</li>
		<li>Time: %s</li>
	</ul>
</body>
</html>`, details.Name, details.Email, details.Date, details.Time)

	return subject, body
}

func calendarDescription(details dto.NotificationDetails) string {
	return fmt.Sprintf("Booked by %s (%s).\n\n%s", details.Name, details.Email, details.Message)
}

func locationLine(details dto.NotificationDetails) string {
	if details.Location == "" {
		return ""
	}

	return fmt.Sprintf("<p>Location: %s</p>", details.Location)
}
