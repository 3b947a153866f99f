package cockroach

import (
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nakamauwu/parcelmate/types"
)

func Test_openPostFilters(t *testing.T) {
	sender, err := tableOf(types.PostKindSender)
	if err != nil {
		t.Fatal(err)
	}

	traveller, err := tableOf(types.PostKindTraveller)
	if err != nil {
		t.Fatal(err)
	}

	from := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC)

	tt := []struct {
		name        string
		table       postTable
		in          types.ListOpenPosts
		wantFilters []string
		wantArgs    pgx.StrictNamedArgs
	}{
		{
			name:        "pending_only",
			table:       sender,
			in:          types.ListOpenPosts{Kind: types.PostKindSender},
			wantFilters: []string{"sender_posts.status = 'pending'"},
			wantArgs:    pgx.StrictNamedArgs{},
		},
		{
			name:  "payment_overlap",
			table: sender,
			in:    types.ListOpenPosts{Kind: types.PostKindSender, PaymentMin: new(150.0), PaymentMax: new(300.0)},
			wantFilters: []string{
				"sender_posts.status = 'pending'",
				"sender_posts.payment_max >= @payment_min",
				"sender_posts.payment_min <= @payment_max",
			},
			wantArgs: pgx.StrictNamedArgs{"payment_min": 150.0, "payment_max": 300.0},
		},
		{
			name:  "payment_min_only",
			table: sender,
			in:    types.ListOpenPosts{Kind: types.PostKindSender, PaymentMin: new(150.0)},
			wantFilters: []string{
				"sender_posts.status = 'pending'",
				"sender_posts.payment_max >= @payment_min",
			},
			wantArgs: pgx.StrictNamedArgs{"payment_min": 150.0},
		},
		{
			name:  "traveller_amount_as_both_bounds",
			table: traveller,
			in:    types.ListOpenPosts{Kind: types.PostKindTraveller, PaymentMax: new(90.0)},
			wantFilters: []string{
				"traveller_posts.status = 'pending'",
				"traveller_posts.expected_amount <= @payment_max",
			},
			wantArgs: pgx.StrictNamedArgs{"payment_max": 90.0},
		},
		{
			name:  "date_window",
			table: traveller,
			in:    types.ListOpenPosts{Kind: types.PostKindTraveller, From: &from, To: &to},
			wantFilters: []string{
				"traveller_posts.status = 'pending'",
				"traveller_posts.expected_time >= @from",
				"traveller_posts.expected_time <= @to",
			},
			wantArgs: pgx.StrictNamedArgs{"from": from, "to": to},
		},
		{
			name:  "free_text_escaped",
			table: traveller,
			in:    types.ListOpenPosts{Kind: types.PostKindTraveller, Query: new("50%_off")},
			wantFilters: []string{
				"traveller_posts.status = 'pending'",
				"(traveller_posts.source ILIKE @query OR traveller_posts.destination ILIKE @query OR traveller_posts.additional_details ILIKE @query OR traveller_posts.mode_of_travel ILIKE @query OR traveller_posts.parcel_size ILIKE @query OR traveller_posts.travel_details ILIKE @query)",
			},
			wantArgs: pgx.StrictNamedArgs{"query": `%50\%\_off%`},
		},
		{
			name:        "empty_query_ignored",
			table:       sender,
			in:          types.ListOpenPosts{Kind: types.PostKindSender, Query: new("")},
			wantFilters: []string{"sender_posts.status = 'pending'"},
			wantArgs:    pgx.StrictNamedArgs{},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			filters, args := openPostFilters(tc.table, tc.in)
			if !reflect.DeepEqual(filters, tc.wantFilters) {
				t.Errorf("openPostFilters() filters = %v, want %v", filters, tc.wantFilters)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Errorf("openPostFilters() args = %v, want %v", args, tc.wantArgs)
			}
		})
	}
}

func Test_tableOf(t *testing.T) {
	if _, err := tableOf("courier_post"); err != types.ErrInvalidPostKind {
		t.Errorf("tableOf() error = %v, want %v", err, types.ErrInvalidPostKind)
	}
}

func Test_postUpdates(t *testing.T) {
	in := types.UpdatePost{
		Ref:          types.PostRef{Kind: types.PostKindTraveller},
		Source:       new("Lima"),
		ModeOfTravel: new("Car"),
		ProductName:  new("ignored for traveller posts"),
	}

	sets, args := postUpdates(in)

	wantSets := []string{"source = @source", "mode_of_travel = @mode_of_travel"}
	if !reflect.DeepEqual(sets, wantSets) {
		t.Errorf("postUpdates() sets = %v, want %v", sets, wantSets)
	}
	if len(args) != 2 {
		t.Errorf("postUpdates() args = %v, want 2 entries", args)
	}
}

func Test_checkPaymentRange(t *testing.T) {
	current := types.Post{PaymentMin: new(100.0), PaymentMax: new(200.0)}

	if err := checkPaymentRange(current, types.UpdatePost{PaymentMin: new(150.0)}); err != nil {
		t.Errorf("checkPaymentRange() unexpected error: %v", err)
	}
	if err := checkPaymentRange(current, types.UpdatePost{PaymentMin: new(250.0)}); err == nil {
		t.Error("checkPaymentRange() expected error when min goes above the stored max")
	}
	if err := checkPaymentRange(current, types.UpdatePost{PaymentMax: new(50.0)}); err == nil {
		t.Error("checkPaymentRange() expected error when max goes below the stored min")
	}
}

func Test_decodeCursor(t *testing.T) {
	want := postCursor{
		ID:        "5f0b1b52-7a4a-4d61-9a3e-8f6a55a0d3c1",
		CreatedAt: time.Date(2026, time.May, 1, 10, 30, 0, 0, time.UTC),
	}

	s, err := encodeCursor(want)
	if err != nil {
		t.Fatal(err)
	}

	got, err := decodeCursor(s)
	if err != nil {
		t.Fatal(err)
	}

	if got.ID != want.ID || !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("decodeCursor() = %+v, want %+v", got, want)
	}

	forged, err := encodeCursor(postCursor{ID: "1 OR 1=1", CreatedAt: want.CreatedAt})
	if err != nil {
		t.Fatal(err)
	}

	for _, bad := range []string{"", "not-a-cursor", "0OIl", forged} {
		if _, err := decodeCursor(bad); err != ErrInvalidCursor {
			t.Errorf("decodeCursor(%q) error = %v, want %v", bad, err, ErrInvalidCursor)
		}
	}
}

func Test_keyset(t *testing.T) {
	const (
		idA = "a0000000-0000-4000-8000-00000000000a"
		idB = "b0000000-0000-4000-8000-00000000000b"
		idC = "c0000000-0000-4000-8000-00000000000c"
	)

	base := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	post := func(id string, minutes int) types.Post {
		return types.Post{ID: id, CreatedAt: base.Add(time.Duration(minutes) * time.Minute)}
	}

	t.Run("forward", func(t *testing.T) {
		k, err := newKeyset(types.PageArgs{First: new(uint(2))})
		if err != nil {
			t.Fatal(err)
		}

		args := pgx.StrictNamedArgs{}
		filters, tail := k.clauses("sender_posts", nil, args)
		if len(filters) != 0 {
			t.Errorf("filters = %v, want none", filters)
		}
		if want := "ORDER BY sender_posts.created_at DESC, sender_posts.id DESC LIMIT 3"; tail != want {
			t.Errorf("tail = %q, want %q", tail, want)
		}

		page, err := k.page([]types.Post{post(idC, 3), post(idB, 2), post(idA, 1)})
		if err != nil {
			t.Fatal(err)
		}

		if len(page.Items) != 2 || page.Items[0].ID != idC || page.Items[1].ID != idB {
			t.Fatalf("items = %+v", page.Items)
		}
		if !page.PageInfo.HasNextPage || page.PageInfo.HasPreviousPage {
			t.Errorf("page info = %+v", page.PageInfo)
		}

		end, err := decodeCursor(*page.PageInfo.EndCursor)
		if err != nil {
			t.Fatal(err)
		}
		if end.ID != idB || !end.CreatedAt.Equal(base.Add(2*time.Minute)) {
			t.Errorf("end cursor = %+v", end)
		}
	})

	t.Run("after", func(t *testing.T) {
		after, err := encodeCursor(postCursor{ID: idB, CreatedAt: base})
		if err != nil {
			t.Fatal(err)
		}

		k, err := newKeyset(types.PageArgs{After: &after})
		if err != nil {
			t.Fatal(err)
		}

		args := pgx.StrictNamedArgs{}
		filters, _ := k.clauses("traveller_posts", nil, args)
		if want := []string{"(traveller_posts.created_at, traveller_posts.id) < (@after_created_at, @after_id)"}; !reflect.DeepEqual(filters, want) {
			t.Errorf("filters = %v, want %v", filters, want)
		}
		if args["after_id"] != idB {
			t.Errorf("args = %v", args)
		}

		page, err := k.page([]types.Post{post(idA, 1)})
		if err != nil {
			t.Fatal(err)
		}
		if page.PageInfo.HasNextPage || !page.PageInfo.HasPreviousPage {
			t.Errorf("page info = %+v", page.PageInfo)
		}
	})

	t.Run("backwards", func(t *testing.T) {
		k, err := newKeyset(types.PageArgs{Last: new(uint(2))})
		if err != nil {
			t.Fatal(err)
		}

		_, tail := k.clauses("sender_posts", nil, pgx.StrictNamedArgs{})
		if want := "ORDER BY sender_posts.created_at ASC, sender_posts.id ASC LIMIT 3"; tail != want {
			t.Errorf("tail = %q, want %q", tail, want)
		}

		page, err := k.page([]types.Post{post(idA, 1), post(idB, 2), post(idC, 3)})
		if err != nil {
			t.Fatal(err)
		}

		if len(page.Items) != 2 || page.Items[0].ID != idB || page.Items[1].ID != idA {
			t.Fatalf("items = %+v", page.Items)
		}
		if !page.PageInfo.HasPreviousPage || page.PageInfo.HasNextPage {
			t.Errorf("page info = %+v", page.PageInfo)
		}
	})

	t.Run("empty", func(t *testing.T) {
		k, err := newKeyset(types.PageArgs{})
		if err != nil {
			t.Fatal(err)
		}

		page, err := k.page(nil)
		if err != nil {
			t.Fatal(err)
		}
		if page.PageInfo.StartCursor != nil || page.PageInfo.EndCursor != nil {
			t.Errorf("page info = %+v", page.PageInfo)
		}
	})

	t.Run("invalid_cursor", func(t *testing.T) {
		if _, err := newKeyset(types.PageArgs{Before: new("zzz")}); err != ErrInvalidCursor {
			t.Errorf("newKeyset() error = %v, want %v", err, ErrInvalidCursor)
		}
	})
}
