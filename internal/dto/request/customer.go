package request

type UpdateCustomerRequest struct {
	FirstName       string `json:"firstName,omitempty" validate:"omitempty,max=50"`
	LastName        string `json:"lastName,omitempty" validate:"omitempty,max=50"`
	Phone           string `json:"phone,omitempty" validate:"omitempty,min=10,max=15"`
	ShippingAddress string `json:"shippingAddress,omitempty"`
	BillingAddress  string `json:"billingAddress,omitempty"`
}
