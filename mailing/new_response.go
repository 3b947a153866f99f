package mailing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"

	"github.com/hako/durafmt"
	"github.com/nakamauwu/parcelmate/types"
)

//go:embed template/*.tmpl
var templateFiles embed.FS

var (
	newResponseTmpl     *template.Template
	newResponseTmplErr  error
	newResponseTmplOnce sync.Once
)

const CategoryNewResponse = "new-response"

// NewResponseEmail renders the email telling a post owner about an offer.
// It is addressed to the post owner email when the post carries one.
func NewResponseEmail(ownerName string, post types.Post, resp types.Response, now time.Time) (Email, error) {
	newResponseTmplOnce.Do(func() {
		newResponseTmpl, newResponseTmplErr = template.
			New("new-response.html.tmpl").
			Funcs(template.FuncMap{
				"human_duration": humanDuration,
			}).
			ParseFS(templateFiles, "template/new-response.html.tmpl")
		if newResponseTmplErr != nil {
			newResponseTmplErr = fmt.Errorf("could not parse new response mail template: %w", newResponseTmplErr)
		}
	})
	if newResponseTmplErr != nil {
		return Email{}, newResponseTmplErr
	}

	data := map[string]any{
		"OwnerName":         ownerName,
		"TravellerName":     resp.TravellerName,
		"PostTitle":         post.Title(),
		"PriceOffer":        resp.PriceOffer,
		"EstimatedDelivery": resp.EstimatedDelivery,
		"DeliveryIn":        resp.EstimatedDelivery.Sub(now),
		"Message":           resp.Message,
	}

	var b bytes.Buffer
	if err := newResponseTmpl.Execute(&b, data); err != nil {
		return Email{}, fmt.Errorf("could not execute new response mail template: %w", err)
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%s made an offer of %.2f on %q.\n", resp.TravellerName, resp.PriceOffer, post.Title())
	fmt.Fprintf(&text, "Estimated delivery: %s (%s).\n", resp.EstimatedDelivery.Format("Jan 2, 2006"), humanDuration(resp.EstimatedDelivery.Sub(now)))
	if resp.Message != "" {
		fmt.Fprintf(&text, "\n%s\n", resp.Message)
	}

	email := Email{
		Subject:  "New offer on " + post.Title(),
		HTML:     b.String(),
		Text:     text.String(),
		Category: CategoryNewResponse,
	}
	if post.Email != nil {
		email.To = *post.Email
	}

	return email, nil
}

func humanDuration(d time.Duration) string {
	if d <= 0 {
		return "overdue"
	}
	return "in " + durafmt.Parse(d).LimitFirstN(1).String()
}
