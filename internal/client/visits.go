package client

import "context"

type Visit struct {
	ID               string  `json:"_id,omitempty"`
	UserID           string  `json:"user_id"`
	VisitDate        string  `json:"visit_date,omitempty"`
	VisitType        string  `json:"visit_type"`
	Reason           string  `json:"reason,omitempty"`
	Diagnosis        string  `json:"diagnosis,omitempty"`
	Treatment        string  `json:"treatment,omitempty"`
	Cost             float64 `json:"cost,omitempty"`
	Veterinarian     string  `json:"veterinarian,omitempty"`
	FollowUpRequired bool    `json:"follow_up_required,omitempty"`
}

// CreateVisit records a new clinic visit
func (c *Client) CreateVisit(ctx context.Context, visit Visit) Result[Visit] {
	res, err := c.Post(ctx, epVisits, visit)
	if err != nil {
		return serviceFailure[Visit](err, "Failed to create visit")
	}
	return normalize[Visit](res)
}

// ListVisits fetches the clinic visits recorded for the given user
func (c *Client) ListVisits(ctx context.Context, userID string) Result[[]Visit] {
	res, err := c.Get(ctx, epVisitsByUser(userID))
	if err != nil {
		return serviceFailure[[]Visit](err, "Failed to fetch visits")
	}
	return normalize[[]Visit](res)
}
