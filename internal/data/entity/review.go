package entity

type ReviewCustomer struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
}

type Review struct {
	ID        string         `json:"id"`
	Rating    int            `json:"rating"`
	Comment   string         `json:"comment"`
	Customer  ReviewCustomer `json:"customer"`
	CreatedAt string         `json:"createdAt"`
}
