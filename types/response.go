package types

import (
	"time"
	"unicode/utf8"

	"github.com/nakamauwu/parcelmate/validator"
)

type ResponseStatus string

const (
	ResponseStatusPending  ResponseStatus = "pending"
	ResponseStatusAccepted ResponseStatus = "accepted"
	ResponseStatusRejected ResponseStatus = "rejected"
)

// Response is a priced offer made by a traveller against a post.
type Response struct {
	ID                string         `json:"id" db:"id"`
	PostKind          PostKind       `json:"postKind" db:"post_kind"`
	PostID            string         `json:"postID" db:"post_id"`
	TravellerID       string         `json:"travellerID" db:"traveller_id"`
	TravellerName     string         `json:"travellerName" db:"traveller_name"`
	Message           string         `json:"message" db:"message"`
	EstimatedDelivery time.Time      `json:"estimatedDelivery" db:"estimated_delivery"`
	PriceOffer        float64        `json:"priceOffer" db:"price_offer"`
	Status            ResponseStatus `json:"status" db:"status"`
	CreatedAt         time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time      `json:"updatedAt" db:"updated_at"`

	Post *Post `json:"post,omitempty" db:"-"`
}

func (r Response) PostRef() PostRef {
	return PostRef{Kind: r.PostKind, ID: r.PostID}
}

const responseMessageMaxLength = 1000

type SubmitResponse struct {
	Post              PostRef   `json:"-"`
	Message           string    `json:"message"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	PriceOffer        float64   `json:"priceOffer"`

	traveller User
}

func (in *SubmitResponse) SetTraveller(u User) {
	in.traveller = u
}

func (in SubmitResponse) Traveller() User {
	return in.traveller
}

func (in *SubmitResponse) Validate() error {
	if err := in.Post.Validate(); err != nil {
		return err
	}

	v := validator.New()

	in.Message = tidyText(in.Message)
	if in.Message == "" {
		v.AddError("Message", "Message is required")
	}
	if utf8.RuneCountInString(in.Message) > responseMessageMaxLength {
		v.AddError("Message", "Message must be at most 1000 characters")
	}
	v.Check(!in.EstimatedDelivery.IsZero(), "EstimatedDelivery", "EstimatedDelivery is required")
	v.Check(in.PriceOffer > 0, "PriceOffer", "PriceOffer must be greater than 0")

	return v.AsError()
}

type AcceptResponse struct {
	Post       PostRef
	ResponseID string

	userID string
}

func (in *AcceptResponse) SetUserID(userID string) {
	in.userID = userID
}

func (in AcceptResponse) UserID() string {
	return in.userID
}

func (in *AcceptResponse) Validate() error {
	if err := in.Post.Validate(); err != nil {
		return err
	}

	v := validator.New()
	v.Check(ValidUUIDv4(in.ResponseID), "ResponseID", "invalid response ID")
	return v.AsError()
}

type AcceptedResponse struct {
	Response      Response `json:"response"`
	RejectedCount int64    `json:"rejectedCount"`
}
