package mailer

import (
	"context"
	"fmt"
	"log"
)

const defaultBookingLink = "https://interview-slot-test.youcanbook.me/"

// StatusStore flips the persisted notification flag after a confirmed send
type StatusStore interface {
	UpdateEmailStatus(ctx context.Context, email string, status bool) (bool, error)
}

// Inviter sends interview invitations and records delivery confirmation.
// The flag flips only after the transport confirms the send; a failed send
// leaves the stored record untouched.
type Inviter struct {
	mailer      Mailer
	store       StatusStore
	bookingLink string
}

// NewInviter creates an Inviter. An empty booking link uses the default slot
// scheduler.
func NewInviter(mailer Mailer, store StatusStore, bookingLink string) *Inviter {
	if bookingLink == "" {
		bookingLink = defaultBookingLink
	}
	return &Inviter{mailer: mailer, store: store, bookingLink: bookingLink}
}

// SendInvitation delivers the interview invitation for a scored application
// and flips the stored notification flag on confirmed success. The returned
// boolean reports delivery; transport errors are logged, never propagated.
func (i *Inviter) SendInvitation(ctx context.Context, email string, score float64) bool {
	subject := "Interview Invitation - Next Steps"
	body := fmt.Sprintf(`Congratulations! Based on your application review (Match Score: %.2f%%), we would like to invite you for an interview.
Once you select a time slot, you will receive a detailed confirmation email with meeting instructions.
Please schedule your interview using the link below:
%s
Best regards,
The Hiring Team`, score, i.bookingLink)

	if err := i.mailer.Send(ctx, email, subject, body); err != nil {
		log.Printf("[mailer] invitation send failed for %s: %v", email, err)
		return false
	}

	if _, err := i.store.UpdateEmailStatus(ctx, email, true); err != nil {
		// The invitation went out; a failed flag update is a store problem,
		// not a delivery problem.
		log.Printf("[mailer] failed to update email status for %s: %v", email, err)
	}
	return true
}
