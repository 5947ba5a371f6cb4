package client

import (
	"context"
	"sync"
)

// ActivitySummary bundles the four per-user activity feeds. Each field is
// populated independently: a failed fetch only affects its own field.
type ActivitySummary struct {
	Orders       Result[[]Order]       `json:"orders"`
	Adoptions    Result[[]Adoption]    `json:"adoptions"`
	Appointments Result[[]Appointment] `json:"appointments"`
	Visits       Result[[]Visit]       `json:"visits"`
}

// FetchUserActivities fans out the four per-user list calls concurrently and
// always returns a complete summary. The calls share no mutable state; a
// panic or failure in any of them is contained and recorded as a failed
// result, so the aggregate call itself never fails.
func (c *Client) FetchUserActivities(ctx context.Context, userID string) ActivitySummary {
	var summary ActivitySummary
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		summary.Orders = contain(func() Result[[]Order] { return c.ListOrders(ctx, userID) }, "Failed to fetch orders")
	}()
	go func() {
		defer wg.Done()
		summary.Adoptions = contain(func() Result[[]Adoption] { return c.ListAdoptions(ctx, userID) }, "Failed to fetch adoptions")
	}()
	go func() {
		defer wg.Done()
		summary.Appointments = contain(func() Result[[]Appointment] { return c.ListAppointments(ctx, userID) }, "Failed to fetch appointments")
	}()
	go func() {
		defer wg.Done()
		summary.Visits = contain(func() Result[[]Visit] { return c.ListVisits(ctx, userID) }, "Failed to fetch visits")
	}()
	wg.Wait()

	return summary
}

// contain converts a panic in fn into a failed Result with the supplied
// message.
func contain[T any](fn func() Result[T], fallback string) (result Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			result = failure[T](fallback, 0)
		}
	}()
	return fn()
}
