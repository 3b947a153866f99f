package types

import (
	"fmt"

	"github.com/nakamauwu/parcelmate/validator"
)

const maxPageSize = 200

type Page[T any] struct {
	Items    []T      `json:"items"`
	PageInfo PageInfo `json:"pageInfo"`
}

type PageInfo struct {
	EndCursor       *string `json:"endCursor"`
	HasNextPage     bool    `json:"hasNextPage"`
	StartCursor     *string `json:"startCursor"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
}

// PageArgs asks for a forward page (First, After)
// or a backward one (Last, Before), never both.
type PageArgs struct {
	First  *uint
	After  *string
	Last   *uint
	Before *string
}

func (args PageArgs) IsBackwards() bool {
	return args.Last != nil || args.Before != nil
}

func (args *PageArgs) Validate() error {
	v := validator.New()

	forward := args.First != nil || args.After != nil
	v.Check(!(forward && args.IsBackwards()), "PageArgs", "cannot mix first/after with last/before")

	checkPageSize(v, "First", args.First)
	checkPageSize(v, "Last", args.Last)

	return v.AsError()
}

func checkPageSize(v *validator.Validator, field string, size *uint) {
	if size == nil {
		return
	}

	v.Check(*size >= 1, field, field+" must be greater than 0")
	v.Check(*size <= maxPageSize, field, fmt.Sprintf("%s must be at most %d", field, maxPageSize))
}
