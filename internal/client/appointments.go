package client

import "context"

type Appointment struct {
	ID              string `json:"_id,omitempty"`
	UserID          string `json:"user_id"`
	AppointmentType string `json:"appointment_type"`
	AppointmentDate string `json:"appointment_date,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Status          string `json:"status,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Veterinarian    string `json:"veterinarian,omitempty"`
}

// CreateAppointment books a new appointment
func (c *Client) CreateAppointment(ctx context.Context, appointment Appointment) Result[Appointment] {
	res, err := c.Post(ctx, epAppointments, appointment)
	if err != nil {
		return serviceFailure[Appointment](err, "Failed to create appointment")
	}
	return normalize[Appointment](res)
}

// ListAppointments fetches the appointments booked by the given user
func (c *Client) ListAppointments(ctx context.Context, userID string) Result[[]Appointment] {
	res, err := c.Get(ctx, epAppointmentsByUser(userID))
	if err != nil {
		return serviceFailure[[]Appointment](err, "Failed to fetch appointments")
	}
	return normalize[[]Appointment](res)
}
