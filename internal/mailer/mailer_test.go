package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRecords(t *testing.T) {
	m := &Mock{}
	err := m.Send(context.Background(), Email{
		From:     "no-reply@example.com",
		To:       []string{"a@example.com"},
		Subject:  "hi",
		TextBody: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Count())

	last, ok := m.Last()
	require.True(t, ok)
	assert.Equal(t, []string{"a@example.com"}, last.To)
}

func TestSMTPRejectsIncompleteMail(t *testing.T) {
	s := NewSMTP(SMTPConfig{Host: "localhost", Port: 2525})

	err := s.Send(context.Background(), Email{From: "x@y.z", TextBody: "body"})
	assert.Error(t, err, "missing recipient")

	err = s.Send(context.Background(), Email{To: []string{"a@b.c"}, TextBody: "body"})
	assert.Error(t, err, "missing from")

	err = s.Send(context.Background(), Email{From: "x@y.z", To: []string{"a@b.c"}})
	assert.Error(t, err, "empty body")
}

func TestAllRecipients(t *testing.T) {
	e := Email{
		To:  []string{"a@example.com"},
		Cc:  []string{"b@example.com"},
		Bcc: []string{"c@example.com"},
	}
	assert.Equal(t, []string{"a@example.com", "b@example.com", "c@example.com"}, e.AllRecipients())
}
