package request

type ProductCreateRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	SKU         string   `json:"sku" validate:"required,max=50"`
	CategoryID  string   `json:"categoryId" validate:"required"`
	Images      []string `json:"images"`
	IsActive    bool     `json:"isActive"`
}

// ProductListParams adalah query params listing produk (shape dari server).
type ProductListParams struct {
	CategoryID string
	SellerID   string
	Page       int
	Size       int
	Sort       string
	Search     string
}
