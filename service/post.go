package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nakamauwu/parcelmate/types"
	_ "golang.org/x/image/webp"
)

const PostImagesBucket = "post-images"

const (
	MaxPostImageBytes = 5 << 20 // 5MB
	postImageMaxSide  = 1600
)

var (
	ErrUnsupportedImageFormat = errs.NewInvalidArgumentError("Image", "unsupported image format")
	ErrPostImageTooLarge      = errs.NewInvalidArgumentError("Image", "image too large")
	ErrNotPostOwner           = errs.ForbiddenError("you are not the owner of this post")
	ErrPostAlreadyResolved    = errs.AlreadyResolvedError("post is no longer pending")
)

func (svc *Service) CreateSenderPost(ctx context.Context, actor types.User, in types.CreateSenderPost) (types.Post, error) {
	var out types.Post

	if err := in.Validate(); err != nil {
		return out, err
	}

	if !actor.Valid() {
		return out, errs.Unauthenticated
	}

	in.SetOwner(actor)

	return svc.Store.CreateSenderPost(ctx, in)
}

func (svc *Service) CreateTravellerPost(ctx context.Context, actor types.User, in types.CreateTravellerPost) (types.Post, error) {
	var out types.Post

	if err := in.Validate(); err != nil {
		return out, err
	}

	if !actor.Valid() {
		return out, errs.Unauthenticated
	}

	in.SetOwner(actor)

	return svc.Store.CreateTravellerPost(ctx, in)
}

// PostsByOwner lists the posts of one kind owned by the actor, newest first.
func (svc *Service) PostsByOwner(ctx context.Context, actor types.User, in types.ListUserPosts) ([]types.Post, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if !actor.Valid() {
		return nil, errs.Unauthenticated
	}

	in.SetUserID(actor.ID)

	return svc.Store.PostsByOwner(ctx, in)
}

// OpenPosts lists pending posts matching the filter.
func (svc *Service) OpenPosts(ctx context.Context, in types.ListOpenPosts) (types.Page[types.Post], error) {
	var out types.Page[types.Post]

	if err := in.Validate(); err != nil {
		return out, err
	}

	return svc.Store.OpenPosts(ctx, in)
}

func (svc *Service) Post(ctx context.Context, ref types.PostRef) (types.Post, error) {
	var out types.Post

	if err := ref.Validate(); err != nil {
		return out, err
	}

	return svc.Store.Post(ctx, ref)
}

func (svc *Service) UpdatePost(ctx context.Context, actor types.User, in types.UpdatePost) (types.Post, error) {
	var out types.Post

	if err := in.Validate(); err != nil {
		return out, err
	}

	if !actor.Valid() {
		return out, errs.Unauthenticated
	}

	in.SetUserID(actor.ID)

	return svc.Store.UpdatePost(ctx, in)
}

// DeletePost removes a pending post of the actor.
// Its pending responses are rejected along.
func (svc *Service) DeletePost(ctx context.Context, actor types.User, in types.DeletePost) error {
	if err := in.Validate(); err != nil {
		return err
	}

	if !actor.Valid() {
		return errs.Unauthenticated
	}

	in.SetUserID(actor.ID)

	rejected, err := svc.Store.DeletePost(ctx, in)
	if err != nil {
		return err
	}

	svc.Metrics.ResponsesRejected.Add(float64(rejected))

	return nil
}

// AttachSenderPostImage normalizes the image, uploads it
// and stores its URL on the sender post.
func (svc *Service) AttachSenderPostImage(ctx context.Context, actor types.User, in types.AttachPostImage) (types.Post, error) {
	var out types.Post

	if err := in.Validate(); err != nil {
		return out, err
	}

	if !actor.Valid() {
		return out, errs.Unauthenticated
	}

	in.SetUserID(actor.ID)

	post, err := svc.Store.Post(ctx, in.Ref)
	if err != nil {
		return out, err
	}

	if post.UserID != actor.ID {
		return out, ErrNotPostOwner
	}

	if post.Status != types.PostStatusPending {
		return out, ErrPostAlreadyResolved
	}

	attachment, err := processImage(in.Image, postImageMaxSide)
	if err != nil {
		return out, err
	}

	cleanup, err := svc.Images.Upload(ctx, PostImagesBucket, attachment)
	if err != nil {
		return out, err
	}

	out, err = svc.Store.SetPostImageURL(ctx, in, svc.Images.ObjectURL(PostImagesBucket, attachment.Path))
	if err != nil {
		go cleanup()
		return out, err
	}

	return out, nil
}

// processImage decodes the image applying its orientation,
// fits it inside maxSide and encodes it as JPEG.
func processImage(r io.Reader, maxSide int) (types.Attachment, error) {
	var out types.Attachment

	raw, err := io.ReadAll(io.LimitReader(r, MaxPostImageBytes+1))
	if err != nil {
		return out, fmt.Errorf("could not read post image: %w", err)
	}

	if len(raw) > MaxPostImageBytes {
		return out, ErrPostImageTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if errors.Is(err, image.ErrFormat) {
		return out, ErrUnsupportedImageFormat
	}

	if err != nil {
		return out, fmt.Errorf("could not image decode post image: %w", err)
	}

	if b := img.Bounds(); b.Dx() > maxSide || b.Dy() > maxSide {
		img = imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
	}

	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, img, nil); err != nil {
		return out, fmt.Errorf("could not encode post image: %w", err)
	}

	fileName, err := gonanoid.New()
	if err != nil {
		return out, fmt.Errorf("could not generate post image filename: %w", err)
	}

	bounds := img.Bounds()
	out = types.Attachment{
		Path:        fileName + ".jpg",
		ContentType: "image/jpeg",
		Width:       uint32(bounds.Dx()),
		Height:      uint32(bounds.Dy()),
	}
	out.SetContent(buf.Bytes())

	return out, nil
}
