package models

import "time"

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

const OrderIDPrefix = "ord"

// OrderItem is one line of an order. Name and Price are captured at order
// time and do not follow later catalogue changes.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order is a customer order. Total is derived from Items when the order is
// created and is never set by clients.
type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func (o Order) Key() string { return o.ID }

func (o Order) Clone() Order {
	items := make([]OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"  validate:"gt=0"`
	Price     Number `json:"price"     validate:"required,gte=0"`
}

// OrderInput is the body of a create request. A client-sent total is not
// part of it and is dropped on decode.
type OrderInput struct {
	CustomerName  string           `json:"customerName"  validate:"required"`
	CustomerEmail string           `json:"customerEmail" validate:"required"`
	Items         []OrderItemInput `json:"items"         validate:"required,min=1,dive"`
	Status        OrderStatus      `json:"status"        validate:"nullable,in=pending,processing,shipped,completed,cancelled"`
}

// OrderPatch is the body of an update request. Items and total cannot be
// changed after creation.
type OrderPatch struct {
	CustomerName  *string      `json:"customerName"`
	CustomerEmail *string      `json:"customerEmail"`
	Status        *OrderStatus `json:"status"`
}
