package entity

type CartItemProduct struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Images []string `json:"images"`
}

type CartItem struct {
	ID         string          `json:"id"`
	Product    CartItemProduct `json:"product"`
	Quantity   int             `json:"quantity"`
	TotalPrice float64         `json:"totalPrice"`
}

type Cart struct {
	ID          string     `json:"id"`
	Items       []CartItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
}
