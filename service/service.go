package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nakamauwu/parcelmate/mailing"
	"github.com/nakamauwu/parcelmate/pubsub"
	"github.com/nakamauwu/parcelmate/types"
)

//go:generate go tool moq -out store_mock_test.go . Store ImageStore

// Store persists posts, responses and messages.
type Store interface {
	CreateSenderPost(ctx context.Context, in types.CreateSenderPost) (types.Post, error)
	CreateTravellerPost(ctx context.Context, in types.CreateTravellerPost) (types.Post, error)
	PostsByOwner(ctx context.Context, in types.ListUserPosts) ([]types.Post, error)
	OpenPosts(ctx context.Context, in types.ListOpenPosts) (types.Page[types.Post], error)
	Post(ctx context.Context, ref types.PostRef) (types.Post, error)
	UpdatePost(ctx context.Context, in types.UpdatePost) (types.Post, error)
	DeletePost(ctx context.Context, in types.DeletePost) (int64, error)
	SetPostImageURL(ctx context.Context, in types.AttachPostImage, imageURL string) (types.Post, error)

	SubmitResponse(ctx context.Context, in types.SubmitResponse) (types.Response, error)
	PostResponses(ctx context.Context, ref types.PostRef) ([]types.Response, error)
	UserResponses(ctx context.Context, userID string) ([]types.Response, error)
	AcceptResponse(ctx context.Context, in types.AcceptResponse) (types.AcceptedResponse, error)

	CreateMessage(ctx context.Context, in types.CreateMessage) (types.Message, error)
	Thread(ctx context.Context, in types.RetrieveThread) ([]types.Message, error)
	Conversations(ctx context.Context, userID string) ([]types.Conversation, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

// ImageStore keeps post images.
type ImageStore interface {
	Upload(ctx context.Context, bucket string, file types.Attachment) (func(), error)
	ObjectURL(bucket, path string) string
}

const defaultBackgroundTimeout = 15 * time.Second

type Config struct {
	Store             Store
	Images            ImageStore
	PubSub            pubsub.PubSub
	Mailer            mailing.Sender
	Logger            *slog.Logger
	Metrics           *Metrics
	BaseCtx           context.Context
	BackgroundTimeout time.Duration
}

type Service struct {
	Store   Store
	Images  ImageStore
	PubSub  pubsub.PubSub
	Mailer  mailing.Sender
	Logger  *slog.Logger
	Metrics *Metrics

	baseCtx           context.Context
	backgroundTimeout time.Duration
	wg                sync.WaitGroup
	errs              chan error
}

func New(cfg *Config) *Service {
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	baseCtx := cfg.BaseCtx
	if baseCtx == nil {
		baseCtx = context.Background()
	}

	backgroundTimeout := cfg.BackgroundTimeout
	if backgroundTimeout <= 0 {
		backgroundTimeout = defaultBackgroundTimeout
	}

	return &Service{
		Store:   cfg.Store,
		Images:  cfg.Images,
		PubSub:  cfg.PubSub,
		Mailer:  cfg.Mailer,
		Logger:  logger,
		Metrics: metrics,

		baseCtx:           baseCtx,
		backgroundTimeout: backgroundTimeout,
		errs:              make(chan error, 1),
	}
}

func (svc *Service) Errs() <-chan error {
	return svc.errs
}

func (svc *Service) Close() error {
	svc.wg.Wait()
	close(svc.errs)
	return nil
}

func (svc *Service) background(fn func(ctx context.Context) error) {
	svc.wg.Go(func() {
		defer func() {
			if rcv := recover(); rcv != nil {
				select {
				case svc.errs <- fmt.Errorf("service background panic: %v", rcv):
				default:
				}
			}
		}()

		ctx, cancel := context.WithTimeout(svc.baseCtx, svc.backgroundTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			select {
			case svc.errs <- fmt.Errorf("service background error: %w", err):
			default:
			}
		}
	})
}
