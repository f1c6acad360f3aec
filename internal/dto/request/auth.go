package request

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CustomerRegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required,max=50"`
	LastName        string `json:"lastName" validate:"required,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Phone           string `json:"phone" validate:"required,min=10,max=15"`
	ShippingAddress string `json:"shippingAddress" validate:"required"`
	BillingAddress  string `json:"billingAddress" validate:"required"`
}

type SellerRegisterRequest struct {
	FirstName       string `json:"firstName" validate:"required,max=50"`
	LastName        string `json:"lastName" validate:"required,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	Phone           string `json:"phone" validate:"required,min=10,max=15"`
	ShopName        string `json:"shopName" validate:"required,max=100"`
	ShopDescription string `json:"shopDescription" validate:"required"`
	BankAccount     string `json:"bankAccount" validate:"required"`
}
