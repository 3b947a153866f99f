package types

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/nakamauwu/parcelmate/errs"
	"github.com/nakamauwu/parcelmate/validator"
)

// PostKind discriminates the two disjoint post stores.
type PostKind string

const (
	PostKindSender    PostKind = "sender_post"
	PostKindTraveller PostKind = "traveller_post"
)

var ErrInvalidPostKind = errs.NewInvalidArgumentError("Kind", "invalid post type")

func ParsePostKind(s string) (PostKind, error) {
	switch strings.TrimSpace(s) {
	case "sender_post", "senderPost", "sender":
		return PostKindSender, nil
	case "traveller_post", "travellerPost", "traveller":
		return PostKindTraveller, nil
	}
	return "", ErrInvalidPostKind
}

func (k PostKind) Valid() bool {
	return k == PostKindSender || k == PostKindTraveller
}

func (k PostKind) String() string {
	return string(k)
}

// PostRef points at a post in one of the two stores.
type PostRef struct {
	Kind PostKind `json:"kind" db:"post_kind" msgpack:"k"`
	ID   string   `json:"id" db:"post_id" msgpack:"i"`
}

func (r PostRef) Validate() error {
	if !r.Kind.Valid() {
		return ErrInvalidPostKind
	}
	if !ValidUUIDv4(r.ID) {
		return errs.NewInvalidArgumentError("PostID", "invalid post ID")
	}
	return nil
}

func (r PostRef) String() string {
	return fmt.Sprintf("%s/%s", r.Kind, r.ID)
}

type PostStatus string

const (
	PostStatusPending  PostStatus = "pending"
	PostStatusAccepted PostStatus = "accepted"
	PostStatusRejected PostStatus = "rejected"
)

type Post struct {
	ID                string     `json:"id" db:"id"`
	Kind              PostKind   `json:"kind" db:"kind"`
	UserID            string     `json:"userID" db:"user_id"`
	Username          string     `json:"username" db:"username"`
	Email             *string    `json:"-" db:"email"`
	Source            string     `json:"source" db:"source"`
	Destination       string     `json:"destination" db:"destination"`
	ExpectedTime      time.Time  `json:"expectedTime" db:"expected_time"`
	AdditionalDetails *string    `json:"additionalDetails" db:"additional_details"`
	Status            PostStatus `json:"status" db:"status"`
	CreatedAt         time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time  `json:"updatedAt" db:"updated_at"`

	// sender post only.
	ProductName     *string  `json:"productName,omitempty" db:"product_name"`
	ProductWeight   *float64 `json:"productWeight,omitempty" db:"product_weight"`
	Length          *float64 `json:"length,omitempty" db:"length"`
	Breadth         *float64 `json:"breadth,omitempty" db:"breadth"`
	Height          *float64 `json:"height,omitempty" db:"height"`
	IsFragile       *bool    `json:"isFragile,omitempty" db:"is_fragile"`
	ReceiverDetails *string  `json:"receiverDetails,omitempty" db:"receiver_details"`
	PaymentMin      *float64 `json:"paymentMin,omitempty" db:"payment_min"`
	PaymentMax      *float64 `json:"paymentMax,omitempty" db:"payment_max"`
	Category        *string  `json:"category,omitempty" db:"category"`
	ImageURL        *string  `json:"imageURL,omitempty" db:"image_url"`

	// traveller post only.
	ModeOfTravel   *string  `json:"modeOfTravel,omitempty" db:"mode_of_travel"`
	ParcelSize     *string  `json:"parcelSize,omitempty" db:"parcel_size"`
	TravelDetails  *string  `json:"travelDetails,omitempty" db:"travel_details"`
	ExpectedAmount *float64 `json:"expectedAmount,omitempty" db:"expected_amount"`
	AgreeTerms     *bool    `json:"agreeTerms,omitempty" db:"agree_terms"`
}

func (p Post) Ref() PostRef {
	return PostRef{Kind: p.Kind, ID: p.ID}
}

func (p Post) Title() string {
	switch p.Kind {
	case PostKindSender:
		if p.ProductName != nil {
			return *p.ProductName
		}
	case PostKindTraveller:
		if p.ModeOfTravel != nil {
			return *p.ModeOfTravel + " trip"
		}
	}
	return p.Source + " to " + p.Destination
}

func (p Post) Snapshot() PostSnapshot {
	return PostSnapshot{
		Kind:        p.Kind,
		ID:          p.ID,
		Title:       p.Title(),
		Source:      p.Source,
		Destination: p.Destination,
	}
}

// PostSnapshot is the denormalized copy of a post kept on messages
// so threads still render after the post changes or goes away.
type PostSnapshot struct {
	Kind        PostKind `json:"kind" msgpack:"k"`
	ID          string   `json:"id" msgpack:"i"`
	Title       string   `json:"title" msgpack:"t"`
	Source      string   `json:"source" msgpack:"s"`
	Destination string   `json:"destination" msgpack:"d"`
}

const (
	postTextMaxLength    = 120
	postDetailsMaxLength = 1000
)

var (
	ModesOfTravel = []string{"Bus", "Train", "Airplane", "Car", "Bike", "Other"}
	ParcelSizes   = []string{"Small", "Medium", "Large", "Extra Large"}
)

type CreateSenderPost struct {
	ProductName       string    `json:"productName"`
	ProductWeight     float64   `json:"productWeight"`
	Length            float64   `json:"length"`
	Breadth           float64   `json:"breadth"`
	Height            float64   `json:"height"`
	IsFragile         bool      `json:"isFragile"`
	Source            string    `json:"source"`
	Destination       string    `json:"destination"`
	ReceiverDetails   string    `json:"receiverDetails"`
	ExpectedTime      time.Time `json:"expectedTime"`
	PaymentMin        float64   `json:"paymentMin"`
	PaymentMax        float64   `json:"paymentMax"`
	Category          string    `json:"category"`
	AdditionalDetails *string   `json:"additionalDetails"`

	owner User
}

func (in *CreateSenderPost) SetOwner(u User) {
	in.owner = u
}

func (in CreateSenderPost) Owner() User {
	return in.owner
}

func (in *CreateSenderPost) Validate() error {
	v := validator.New()

	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Source = strings.TrimSpace(in.Source)
	in.Destination = strings.TrimSpace(in.Destination)
	in.ReceiverDetails = tidyText(in.ReceiverDetails)
	in.Category = strings.TrimSpace(in.Category)
	in.AdditionalDetails = tidyOptional(in.AdditionalDetails)

	checkText(v, "ProductName", in.ProductName, postTextMaxLength)
	checkText(v, "Source", in.Source, postTextMaxLength)
	checkText(v, "Destination", in.Destination, postTextMaxLength)
	checkText(v, "ReceiverDetails", in.ReceiverDetails, postDetailsMaxLength)
	checkText(v, "Category", in.Category, postTextMaxLength)
	checkOptionalText(v, "AdditionalDetails", in.AdditionalDetails, postDetailsMaxLength)

	v.Check(in.ProductWeight > 0, "ProductWeight", "ProductWeight must be greater than 0")
	v.Check(in.Length > 0, "Length", "Length must be greater than 0")
	v.Check(in.Breadth > 0, "Breadth", "Breadth must be greater than 0")
	v.Check(in.Height > 0, "Height", "Height must be greater than 0")
	v.Check(!in.ExpectedTime.IsZero(), "ExpectedTime", "ExpectedTime is required")
	v.Check(in.PaymentMin >= 0, "PaymentMin", "PaymentMin cannot be negative")
	v.Check(in.PaymentMax >= in.PaymentMin, "PaymentMax", "PaymentMax must be greater or equal than PaymentMin")

	return v.AsError()
}

type CreateTravellerPost struct {
	ModeOfTravel      string    `json:"modeOfTravel"`
	Source            string    `json:"source"`
	Destination       string    `json:"destination"`
	ExpectedTime      time.Time `json:"expectedTime"`
	ParcelSize        string    `json:"parcelSize"`
	TravelDetails     *string   `json:"travelDetails"`
	ExpectedAmount    float64   `json:"expectedAmount"`
	AdditionalDetails *string   `json:"additionalDetails"`
	AgreeTerms        bool      `json:"agreeTerms"`

	owner User
}

func (in *CreateTravellerPost) SetOwner(u User) {
	in.owner = u
}

func (in CreateTravellerPost) Owner() User {
	return in.owner
}

func (in *CreateTravellerPost) Validate() error {
	v := validator.New()

	in.ModeOfTravel = strings.TrimSpace(in.ModeOfTravel)
	in.Source = strings.TrimSpace(in.Source)
	in.Destination = strings.TrimSpace(in.Destination)
	in.ParcelSize = strings.TrimSpace(in.ParcelSize)
	in.TravelDetails = tidyOptional(in.TravelDetails)
	in.AdditionalDetails = tidyOptional(in.AdditionalDetails)

	v.Check(slices.Contains(ModesOfTravel, in.ModeOfTravel), "ModeOfTravel", "ModeOfTravel must be one of "+strings.Join(ModesOfTravel, ", "))
	v.Check(slices.Contains(ParcelSizes, in.ParcelSize), "ParcelSize", "ParcelSize must be one of "+strings.Join(ParcelSizes, ", "))
	checkText(v, "Source", in.Source, postTextMaxLength)
	checkText(v, "Destination", in.Destination, postTextMaxLength)
	checkOptionalText(v, "TravelDetails", in.TravelDetails, postDetailsMaxLength)
	checkOptionalText(v, "AdditionalDetails", in.AdditionalDetails, postDetailsMaxLength)
	v.Check(!in.ExpectedTime.IsZero(), "ExpectedTime", "ExpectedTime is required")
	v.Check(in.ExpectedAmount > 0, "ExpectedAmount", "ExpectedAmount must be greater than 0")
	v.Check(in.AgreeTerms, "AgreeTerms", "Terms must be accepted")

	return v.AsError()
}

// UpdatePost is a partial update. Nil fields are left untouched.
// Fields that do not belong to the post kind are rejected.
type UpdatePost struct {
	Source            *string    `json:"source"`
	Destination       *string    `json:"destination"`
	ExpectedTime      *time.Time `json:"expectedTime"`
	AdditionalDetails *string    `json:"additionalDetails"`

	ProductName     *string  `json:"productName"`
	ProductWeight   *float64 `json:"productWeight"`
	Length          *float64 `json:"length"`
	Breadth         *float64 `json:"breadth"`
	Height          *float64 `json:"height"`
	IsFragile       *bool    `json:"isFragile"`
	ReceiverDetails *string  `json:"receiverDetails"`
	PaymentMin      *float64 `json:"paymentMin"`
	PaymentMax      *float64 `json:"paymentMax"`
	Category        *string  `json:"category"`

	ModeOfTravel   *string  `json:"modeOfTravel"`
	ParcelSize     *string  `json:"parcelSize"`
	TravelDetails  *string  `json:"travelDetails"`
	ExpectedAmount *float64 `json:"expectedAmount"`

	// Status is only here to detect attempts to move the status
	// outside of the acceptance flow.
	Status *string `json:"status"`

	Ref PostRef `json:"-"`

	userID string
}

var ErrStatusNotEditable = errs.ConflictError("post status can only change by accepting a response")

func (in *UpdatePost) SetUserID(userID string) {
	in.userID = userID
}

func (in UpdatePost) UserID() string {
	return in.userID
}

func (in *UpdatePost) Validate() error {
	if err := in.Ref.Validate(); err != nil {
		return err
	}

	if in.Status != nil {
		return ErrStatusNotEditable
	}

	v := validator.New()

	in.Source = trimOptional(in.Source)
	in.Destination = trimOptional(in.Destination)
	in.AdditionalDetails = tidyOptional(in.AdditionalDetails)

	if in.Source != nil {
		checkText(v, "Source", *in.Source, postTextMaxLength)
	}
	if in.Destination != nil {
		checkText(v, "Destination", *in.Destination, postTextMaxLength)
	}
	if in.ExpectedTime != nil {
		v.Check(!in.ExpectedTime.IsZero(), "ExpectedTime", "ExpectedTime cannot be empty")
	}
	checkOptionalText(v, "AdditionalDetails", in.AdditionalDetails, postDetailsMaxLength)

	senderOnly := in.ProductName != nil || in.ProductWeight != nil || in.Length != nil ||
		in.Breadth != nil || in.Height != nil || in.IsFragile != nil || in.ReceiverDetails != nil ||
		in.PaymentMin != nil || in.PaymentMax != nil || in.Category != nil
	travellerOnly := in.ModeOfTravel != nil || in.ParcelSize != nil || in.TravelDetails != nil || in.ExpectedAmount != nil

	switch in.Ref.Kind {
	case PostKindSender:
		v.Check(!travellerOnly, "Kind", "traveller post fields cannot be set on a sender post")

		in.ProductName = trimOptional(in.ProductName)
		in.ReceiverDetails = tidyOptional(in.ReceiverDetails)
		in.Category = trimOptional(in.Category)
		if in.ProductName != nil {
			checkText(v, "ProductName", *in.ProductName, postTextMaxLength)
		}
		if in.ReceiverDetails != nil {
			checkText(v, "ReceiverDetails", *in.ReceiverDetails, postDetailsMaxLength)
		}
		if in.Category != nil {
			checkText(v, "Category", *in.Category, postTextMaxLength)
		}
		for _, dim := range []struct {
			field string
			val   *float64
		}{
			{"ProductWeight", in.ProductWeight},
			{"Length", in.Length},
			{"Breadth", in.Breadth},
			{"Height", in.Height},
		} {
			if dim.val != nil {
				v.Check(*dim.val > 0, dim.field, dim.field+" must be greater than 0")
			}
		}
		if in.PaymentMin != nil {
			v.Check(*in.PaymentMin >= 0, "PaymentMin", "PaymentMin cannot be negative")
		}
		if in.PaymentMin != nil && in.PaymentMax != nil {
			v.Check(*in.PaymentMax >= *in.PaymentMin, "PaymentMax", "PaymentMax must be greater or equal than PaymentMin")
		}
	case PostKindTraveller:
		v.Check(!senderOnly, "Kind", "sender post fields cannot be set on a traveller post")

		in.ModeOfTravel = trimOptional(in.ModeOfTravel)
		in.ParcelSize = trimOptional(in.ParcelSize)
		in.TravelDetails = tidyOptional(in.TravelDetails)
		if in.ModeOfTravel != nil {
			v.Check(slices.Contains(ModesOfTravel, *in.ModeOfTravel), "ModeOfTravel", "ModeOfTravel must be one of "+strings.Join(ModesOfTravel, ", "))
		}
		if in.ParcelSize != nil {
			v.Check(slices.Contains(ParcelSizes, *in.ParcelSize), "ParcelSize", "ParcelSize must be one of "+strings.Join(ParcelSizes, ", "))
		}
		checkOptionalText(v, "TravelDetails", in.TravelDetails, postDetailsMaxLength)
		if in.ExpectedAmount != nil {
			v.Check(*in.ExpectedAmount > 0, "ExpectedAmount", "ExpectedAmount must be greater than 0")
		}
	}

	return v.AsError()
}

// ListOpenPosts filters pending posts of one kind.
type ListOpenPosts struct {
	Kind       PostKind
	Query      *string
	PaymentMin *float64
	PaymentMax *float64
	From       *time.Time
	To         *time.Time
	PageArgs   PageArgs
}

func (in *ListOpenPosts) Validate() error {
	if !in.Kind.Valid() {
		return ErrInvalidPostKind
	}

	in.Query = trimOptional(in.Query)

	v := validator.New()
	if in.PaymentMin != nil && in.PaymentMax != nil {
		v.Check(*in.PaymentMax >= *in.PaymentMin, "PaymentMax", "payment_max must be greater or equal than payment_min")
	}
	if in.From != nil && in.To != nil {
		v.Check(!in.To.Before(*in.From), "To", "to must be after from")
	}
	if err := v.AsError(); err != nil {
		return err
	}

	return in.PageArgs.Validate()
}

type ListUserPosts struct {
	Kind PostKind

	userID string
}

func (in *ListUserPosts) SetUserID(userID string) {
	in.userID = userID
}

func (in ListUserPosts) UserID() string {
	return in.userID
}

func (in *ListUserPosts) Validate() error {
	if !in.Kind.Valid() {
		return ErrInvalidPostKind
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

func checkText(v *validator.Validator, field, s string, max int) {
	if s == "" {
		v.AddError(field, field+" is required")
		return
	}
	if utf8.RuneCountInString(s) > max {
		v.AddError(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
}

func checkOptionalText(v *validator.Validator, field string, s *string, max int) {
	if s == nil {
		return
	}
	if utf8.RuneCountInString(*s) > max {
		v.AddError(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
}

var ErrImageRequired = errs.NewInvalidArgumentError("Image", "image is required")

type DeletePost struct {
	Ref PostRef

	userID string
}

func (in *DeletePost) SetUserID(userID string) {
	in.userID = userID
}

func (in DeletePost) UserID() string {
	return in.userID
}

func (in *DeletePost) Validate() error {
	return in.Ref.Validate()
}
