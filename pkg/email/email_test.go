package email

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = ContactEmailData{
	SenderName:  "Jo",
	SenderEmail: "jo@x.com",
	Subject:     "Hello there",
	Message:     "<b>This is a test message.</b>",
}

func TestComposeAddressesOwnerAndEscapesInput(t *testing.T) {
	c := NewComposer("Ashwani", "noreply@me.dev", "me@me.dev")

	env, err := c.Compose(sample)
	require.NoError(t, err)

	assert.Equal(t, "noreply@me.dev", env.From)
	assert.Equal(t, "me@me.dev", env.To)
	assert.Equal(t, "jo@x.com", env.ReplyTo)
	assert.Equal(t, "Portfolio Contact: Hello there", env.Subject)
	assert.Contains(t, env.HTML, "Sent from the Ashwani portfolio contact form.")
	assert.Contains(t, env.HTML, "&lt;b&gt;This is a test message.&lt;/b&gt;")
	assert.NotContains(t, env.HTML, "<b>This")
}

func TestSimulatedDispatcherWaitsThenDelivers(t *testing.T) {
	d := NewSimulatedDispatcher(NewComposer("Me", "a@b.co", "c@d.co"), 20*time.Millisecond)
	var got []Envelope
	d.Sent = func(e Envelope) { got = append(got, e) }

	start := time.Now()
	err := d.Dispatch(context.Background(), sample)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	require.Len(t, got, 1)
	assert.Equal(t, "simulated", d.Name())
}

func TestSimulatedDispatcherHonoursCancellation(t *testing.T) {
	d := NewSimulatedDispatcher(NewComposer("Me", "a@b.co", "c@d.co"), time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := d.Dispatch(ctx, sample)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestComposeFlattensSubjectHeader(t *testing.T) {
	c := NewComposer("Me", "a@b.co", "c@d.co")
	data := sample
	data.Subject = "Hello\r\nBcc: victim@x.com"

	env, err := c.Compose(data)
	require.NoError(t, err)

	assert.Equal(t, "Portfolio Contact: Hello  Bcc: victim@x.com", env.Subject)
}
