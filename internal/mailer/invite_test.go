package mailer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	err     error
	to      string
	subject string
	body    string
	calls   int
}

func (f *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	f.calls++
	f.to, f.subject, f.body = to, subject, body
	return f.err
}

type fakeStatusStore struct {
	updates map[string]bool
	err     error
}

func (f *fakeStatusStore) UpdateEmailStatus(_ context.Context, email string, status bool) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.updates == nil {
		f.updates = make(map[string]bool)
	}
	f.updates[email] = status
	return true, nil
}

func TestSendInvitation_Success(t *testing.T) {
	m := &fakeMailer{}
	st := &fakeStatusStore{}
	inv := NewInviter(m, st, "")

	sent := inv.SendInvitation(context.Background(), "jane.doe@example.com", 85.5)

	require.True(t, sent)
	assert.Equal(t, "jane.doe@example.com", m.to)
	assert.Equal(t, "Interview Invitation - Next Steps", m.subject)
	assert.Contains(t, m.body, "85.50%")
	assert.Contains(t, m.body, defaultBookingLink)
	assert.True(t, st.updates["jane.doe@example.com"], "flag must flip after a confirmed send")
}

func TestSendInvitation_CustomBookingLink(t *testing.T) {
	m := &fakeMailer{}
	inv := NewInviter(m, &fakeStatusStore{}, "https://calendar.example.com/slots")

	inv.SendInvitation(context.Background(), "jane@example.com", 72)

	assert.Contains(t, m.body, "https://calendar.example.com/slots")
}

func TestSendInvitation_TransportFailure(t *testing.T) {
	m := &fakeMailer{err: fmt.Errorf("550 rejected")}
	st := &fakeStatusStore{}
	inv := NewInviter(m, st, "")

	sent := inv.SendInvitation(context.Background(), "jane@example.com", 90)

	assert.False(t, sent)
	assert.Empty(t, st.updates, "flag must not flip when the send fails")
}

func TestSendInvitation_StatusUpdateFailureStillReportsSent(t *testing.T) {
	m := &fakeMailer{}
	st := &fakeStatusStore{err: fmt.Errorf("connection reset")}
	inv := NewInviter(m, st, "")

	sent := inv.SendInvitation(context.Background(), "jane@example.com", 90)

	// The invitation was delivered; a store fault must not unsend it.
	assert.True(t, sent)
}
