package client

import "context"

type Adoption struct {
	ID           string  `json:"_id,omitempty"`
	UserID       string  `json:"user_id"`
	PetID        string  `json:"pet_id"`
	AdoptionDate string  `json:"adoption_date,omitempty"`
	Status       string  `json:"status,omitempty"`
	AdoptionFee  float64 `json:"adoption_fee,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// CreateAdoption submits a new adoption request
func (c *Client) CreateAdoption(ctx context.Context, adoption Adoption) Result[Adoption] {
	res, err := c.Post(ctx, epAdoptions, adoption)
	if err != nil {
		return serviceFailure[Adoption](err, "Failed to create adoption")
	}
	return normalize[Adoption](res)
}

// ListAdoptions fetches the adoption records for the given user
func (c *Client) ListAdoptions(ctx context.Context, userID string) Result[[]Adoption] {
	res, err := c.Get(ctx, epAdoptionsByUser(userID))
	if err != nil {
		return serviceFailure[[]Adoption](err, "Failed to fetch adoptions")
	}
	return normalize[[]Adoption](res)
}
