package service

import (
	"context"
	"fmt"
	"time"

	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nakamauwu/parcelmate/mailing"
	"github.com/nakamauwu/parcelmate/types"
)

// SubmitResponse makes an offer on a pending post of someone else.
// The post owner is emailed about it in the background.
func (svc *Service) SubmitResponse(ctx context.Context, actor types.User, in types.SubmitResponse) (types.Response, error) {
	var out types.Response

	if err := in.Validate(); err != nil {
		return out, err
	}

	if !actor.Valid() {
		return out, errs.Unauthenticated
	}

	in.SetTraveller(actor)

	out, err := svc.Store.SubmitResponse(ctx, in)
	if err != nil {
		return out, err
	}

	svc.Metrics.ResponsesSubmitted.Inc()

	if out.Post != nil && out.Post.Email != nil {
		post, resp := *out.Post, out
		svc.background(func(ctx context.Context) error {
			return svc.notifyNewResponse(ctx, post, resp)
		})
	}

	return out, nil
}

func (svc *Service) notifyNewResponse(ctx context.Context, post types.Post, resp types.Response) error {
	email, err := mailing.NewResponseEmail(post.Username, post, resp, time.Now())
	if err != nil {
		return err
	}

	if err := svc.Mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("could not send new response email: %w", err)
	}

	return nil
}

// PostResponses lists the responses of a post owned by the actor, oldest first.
func (svc *Service) PostResponses(ctx context.Context, actor types.User, ref types.PostRef) ([]types.Response, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	if !actor.Valid() {
		return nil, errs.Unauthenticated
	}

	post, err := svc.Store.Post(ctx, ref)
	if err != nil {
		return nil, err
	}

	if post.UserID != actor.ID {
		return nil, ErrNotPostOwner
	}

	return svc.Store.PostResponses(ctx, ref)
}

// UserResponses lists the responses the actor submitted along with their posts.
func (svc *Service) UserResponses(ctx context.Context, actor types.User) ([]types.Response, error) {
	if !actor.Valid() {
		return nil, errs.Unauthenticated
	}

	return svc.Store.UserResponses(ctx, actor.ID)
}

// AcceptResponse accepts one response of a pending post of the actor.
// The post gets accepted and every other pending response rejected.
func (svc *Service) AcceptResponse(ctx context.Context, actor types.User, in types.AcceptResponse) (types.AcceptedResponse, error) {
	var out types.AcceptedResponse

	if err := in.Validate(); err != nil {
		return out, err
	}

	if !actor.Valid() {
		return out, errs.Unauthenticated
	}

	in.SetUserID(actor.ID)

	out, err := svc.Store.AcceptResponse(ctx, in)
	if err != nil {
		return out, err
	}

	svc.Metrics.ResponsesAccepted.Inc()
	svc.Metrics.ResponsesRejected.Add(float64(out.RejectedCount))

	return out, nil
}
