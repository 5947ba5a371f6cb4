package client

import "context"

type Pet struct {
	ID             string   `json:"_id,omitempty"`
	Name           string   `json:"name"`
	Species        string   `json:"species"`
	Breed          string   `json:"breed,omitempty"`
	Age            int      `json:"age,omitempty"`
	Color          string   `json:"color,omitempty"`
	Size           string   `json:"size,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	Description    string   `json:"description,omitempty"`
	AdoptionStatus string   `json:"adoption_status,omitempty"`
	Price          float64  `json:"price,omitempty"`
	Images         []string `json:"images,omitempty"`
}

// ListPets fetches the pet catalogue
func (c *Client) ListPets(ctx context.Context) Result[[]Pet] {
	res, err := c.Get(ctx, epPets)
	if err != nil {
		return serviceFailure[[]Pet](err, "Failed to fetch pets")
	}
	return normalize[[]Pet](res)
}

// GetPet fetches a single pet by id
func (c *Client) GetPet(ctx context.Context, petID string) Result[Pet] {
	res, err := c.Get(ctx, epPet(petID))
	if err != nil {
		return serviceFailure[Pet](err, "Failed to fetch pet")
	}
	return normalize[Pet](res)
}
