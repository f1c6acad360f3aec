package entity

type ProductSeller struct {
	ID       string `json:"id"`
	ShopName string `json:"shopName"`
	Verified bool   `json:"verified"`
}

type ProductCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        float64         `json:"price"`
	Stock        int             `json:"stock"`
	SKU          string          `json:"sku"`
	Images       []string        `json:"images"`
	Category     ProductCategory `json:"category"`
	Seller       ProductSeller   `json:"seller"`
	AvgRating    float64         `json:"avgRating"`
	ReviewsCount int             `json:"reviewsCount"`
	IsActive     bool            `json:"isActive"`
	CreatedAt    string          `json:"createdAt"`
}

// ProductPage adalah page hasil listing produk (shape pagination dari server).
type ProductPage struct {
	Content       []Product `json:"content"`
	TotalElements int64     `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Size          int       `json:"size"`
	Number        int       `json:"number"`
	First         bool      `json:"first"`
	Last          bool      `json:"last"`
}
