package common

import (
	"errors"
	"fmt"
	"log"
	"os"

	"explorecamp/src/db"
	"explorecamp/src/lib"
	"explorecamp/src/lib/mailer"
	"explorecamp/src/models"
	"explorecamp/src/types"
	"explorecamp/src/utils"
)

// SendBookingConfirmedEmail mails the guest once an administrator confirms
// their booking. Failures are logged only; confirmation stands regardless.
func SendBookingConfirmedEmail(bookingId uint) {
	var booking models.Booking
	d := db.GetDb()
	if err := d.
		Model(&models.Booking{}).
		Where(&models.Booking{ID: bookingId}).
		Preload("User").
		Preload("Product").
		First(&booking).
		Error; err != nil {
		log.Printf("Could not load Booking [%d] for confirmation email: %s\n", bookingId, err.Error())
		return
	}
	if booking.User == nil || booking.Product == nil {
		log.Printf("Booking [%d] is missing relations for confirmation email\n", bookingId)
		return
	}
	senderFrom := os.Getenv("SMTP_FROM")
	input := &lib.SendMailInput{
		Subject:  "Your ExploreCamp Booking is Confirmed!",
		From:     senderFrom,
		FromName: "ExploreCamp",
		To:       []string{booking.User.Email},
		Body: fmt.Sprintf(`
			<p>Hi %s,</p>
			<p>Your booking at <b>%s</b> is now confirmed!</p>
			<p>Booking Details</p>
			<p>Campsite: %s</p>
			<p>Location: %s</p>
			<p>Check-in: %s at %s</p>
			<p>Check-out: %s at %s</p>
			<p>Nights: %d</p>
			<p>Total Amount: %.2f</p>
			<p>Guest: %s</p>
			<p>Please arrive at the specified check-in time and bring your booking confirmation with you.
			Cancellation charges apply (10%% of total price).</p>
			<p>This is a system-generated message. Do not reply to this email.</p>
			`,
			booking.User.Name,
			booking.Product.Name,
			booking.Product.Name,
			booking.Product.Location,
			booking.CheckIn.Format(types.DATE_FORMAT),
			booking.Product.CheckInTime,
			booking.CheckOut.Format(types.DATE_FORMAT),
			booking.Product.CheckOutTime,
			booking.Nights(),
			booking.TotalPrice,
			booking.GuestName,
		),
		Html: true,
	}
	mailer.NewMailerMessage(input)
}

// PendingBookingsDigest mails administrators a summary of bookings that have
// sat in pending for more than a day. Scheduled daily from boot.
func PendingBookingsDigest() {
	var pending []models.Booking
	d := db.GetDb()
	if err := d.
		Model(&models.Booking{}).
		Where("status = ? AND created_at < ?", types.BOOKING_PENDING, utils.ExpiredPendingSince(24)).
		Preload("Product").
		Order("created_at asc").
		Find(&pending).
		Error; err != nil {
		log.Printf("Could not collect pending bookings for digest: %s\n", err.Error())
		return
	}
	if len(pending) == 0 {
		return
	}
	admins, err := adminEmails()
	if err != nil {
		log.Printf("Could not resolve admin recipients: %s\n", err.Error())
		return
	}
	body := "<p>Bookings awaiting confirmation:</p><ul>"
	for _, b := range pending {
		name := "unknown product"
		if b.Product != nil {
			name = b.Product.Name
		}
		body += fmt.Sprintf("<li>#%d %s, %s to %s (%s)</li>", b.ID, name, b.CheckIn.Format(types.DATE_FORMAT), b.CheckOut.Format(types.DATE_FORMAT), b.GuestName)
	}
	body += "</ul>"
	senderFrom := os.Getenv("SMTP_FROM")
	mailer.NewMailerMessage(&lib.SendMailInput{
		Subject:  fmt.Sprintf("ExploreCamp: %d bookings pending confirmation", len(pending)),
		From:     senderFrom,
		FromName: "ExploreCamp",
		To:       admins,
		Body:     body,
		Html:     true,
	})
}

func adminEmails() ([]string, error) {
	var emails []string
	d := db.GetDb()
	if err := d.
		Model(&models.User{}).
		Where(&models.User{IsAdmin: true}).
		Pluck("email", &emails).
		Error; err != nil {
		return nil, err
	}
	if len(emails) == 0 {
		return nil, errors.New("no administrator accounts found")
	}
	return emails, nil
}
