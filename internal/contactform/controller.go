package contactform

import (
	"context"
	"errors"

	"portfolio-backend/pkg/contactclient"
)

var errSubmitAborted = errors.New("contactform: submission aborted")

// Submitter delivers a form payload to the contact endpoint
type Submitter interface {
	Submit(ctx context.Context, p contactclient.Payload) (*contactclient.Response, error)
}

// Controller drives the contact form: input changes, theme switches and the
// submission lifecycle.
type Controller struct {
	store     *Store
	submitter Submitter
}

func NewController(store *Store, submitter Submitter) *Controller {
	return &Controller{
		store:     store,
		submitter: submitter,
	}
}

func (c *Controller) Store() *Store {
	return c.store
}

func (c *Controller) UpdateField(field Field, value string) State {
	return c.store.Apply(func(s State) State {
		return UpdateField(s, field, value)
	})
}

func (c *Controller) ToggleTheme() State {
	return c.store.Apply(ToggleTheme)
}

func (c *Controller) SetAccent(a Accent) State {
	return c.store.Apply(func(s State) State {
		return SetAccent(s, a)
	})
}

// Submit sends the current inputs. It returns ErrSubmissionInProgress when a
// submission is already in flight; every other outcome, including transport
// failure, is reported through the state's Notification. Submitting is
// cleared even if the submitter panics.
func (c *Controller) Submit(ctx context.Context) error {
	started, err := c.store.Update(BeginSubmit)
	if err != nil {
		return err
	}

	applied := false
	defer func() {
		if !applied {
			c.store.Apply(func(s State) State {
				return ApplyError(s, errSubmitAborted)
			})
		}
	}()

	resp, err := c.submitter.Submit(ctx, started.Fields.Payload())
	if err != nil {
		c.store.Apply(func(s State) State {
			return ApplyError(s, err)
		})
		applied = true
		return nil
	}

	c.store.Apply(func(s State) State {
		return ApplyResult(s, resp)
	})
	applied = true
	return nil
}
