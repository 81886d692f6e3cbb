package mailer

import (
	"explorecamp/src/lib"
	"log"
)

// NewMailerMessage hands a message to the SMTP collaborator in the background.
// Delivery failures are logged, never surfaced: a booking must not fail
// because the mail server is down.
func NewMailerMessage(input *lib.SendMailInput) {
	go func() {
		if err := lib.SendMail(input); err != nil {
			log.Printf("[mailer] Error sending message to %v: %s\n", input.To, err.Error())
		}
	}()
}
