package client

import "context"

type OrderItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type Order struct {
	ID           string      `json:"_id,omitempty"`
	UserID       string      `json:"user_id"`
	Items        []OrderItem `json:"items,omitempty"`
	TotalAmount  float64     `json:"total_amount"`
	Status       string      `json:"status,omitempty"`
	OrderDate    string      `json:"order_date,omitempty"`
	DeliveryDate string      `json:"delivery_date,omitempty"`
}

// CreateOrder places a new order
func (c *Client) CreateOrder(ctx context.Context, order Order) Result[Order] {
	res, err := c.Post(ctx, epOrders, order)
	if err != nil {
		return serviceFailure[Order](err, "Failed to create order")
	}
	return normalize[Order](res)
}

// ListOrders fetches the orders placed by the given user
func (c *Client) ListOrders(ctx context.Context, userID string) Result[[]Order] {
	res, err := c.Get(ctx, epOrdersByUser(userID))
	if err != nil {
		return serviceFailure[[]Order](err, "Failed to fetch orders")
	}
	return normalize[[]Order](res)
}
