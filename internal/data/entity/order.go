package entity

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

type OrderCustomer struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type OrderItemProduct struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderItem struct {
	ID         string           `json:"id"`
	Product    OrderItemProduct `json:"product"`
	Quantity   int              `json:"quantity"`
	UnitPrice  float64          `json:"unitPrice"`
	TotalPrice float64          `json:"totalPrice"`
}

type Order struct {
	ID              string        `json:"id"`
	Customer        OrderCustomer `json:"customer"`
	Status          OrderStatus   `json:"status"`
	TotalAmount     float64       `json:"totalAmount"`
	ShippingAddress string        `json:"shippingAddress"`
	CreatedAt       string        `json:"createdAt"`
	Items           []OrderItem   `json:"items"`
}
