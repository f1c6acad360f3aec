package entity

// Seller adalah user dengan data toko. Verified false = belum diverifikasi admin.
type Seller struct {
	User
	ShopName        string `json:"shopName"`
	ShopDescription string `json:"shopDescription"`
	BankAccount     string `json:"bankAccount"`
}

type Customer struct {
	User
	ShippingAddress string    `json:"shippingAddress"`
	BillingAddress  string    `json:"billingAddress"`
	Wishlist        []Product `json:"wishlist,omitempty"`
}
