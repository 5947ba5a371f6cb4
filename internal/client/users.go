package client

import (
	"context"
	"net/http"
)

// User is the account record returned by the backend. Depending on the
// route the identifier arrives as either "id" or Mongo's "_id"; Login
// normalizes to ID before returning.
type User struct {
	ID      string `json:"id,omitempty"`
	MongoID string `json:"_id,omitempty"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

// Login authenticates a user with the PetLoves API
func (c *Client) Login(ctx context.Context, creds Credentials) Result[User] {
	res, err := c.Post(ctx, epLogin, creds)
	if err != nil {
		return serviceFailure[User](err, "Login failed. Please try again.")
	}

	result := normalize[User](res)
	if result.Success && result.Data.ID == "" && result.Data.MongoID != "" {
		result.Data.ID = result.Data.MongoID
	}
	return result
}

// Register creates a new user account. The backend exposes two registration
// routes; when the primary route is unreachable or answers 405 the alternate
// route is tried once and its outcome is final.
func (c *Client) Register(ctx context.Context, reg Registration) Result[User] {
	res, err := c.Post(ctx, epRegister, reg)
	if err != nil {
		c.logger.Debug("primary registration endpoint unreachable, trying alternate", "error", err)
		return c.registerAlternate(ctx, reg)
	}

	if res.StatusCode == http.StatusMethodNotAllowed {
		_ = res.Body.Close()
		c.logger.Debug("primary registration endpoint returned 405, trying alternate")
		return c.registerAlternate(ctx, reg)
	}

	return normalize[User](res)
}

func (c *Client) registerAlternate(ctx context.Context, reg Registration) Result[User] {
	res, err := c.Post(ctx, epRegisterAlt, reg)
	if err != nil {
		return serviceFailure[User](err, "Registration failed. Please try again.")
	}
	return normalize[User](res)
}

// GetProfile fetches the profile of the given user
func (c *Client) GetProfile(ctx context.Context, userID string) Result[User] {
	res, err := c.Get(ctx, epProfile(userID))
	if err != nil {
		return serviceFailure[User](err, "Failed to fetch profile")
	}
	return normalize[User](res)
}
