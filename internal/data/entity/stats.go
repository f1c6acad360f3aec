package entity

type SellerStats struct {
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

type AdminStats struct {
	TotalUsers     int     `json:"totalUsers"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalSellers   int     `json:"totalSellers"`
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	TotalProducts  int     `json:"totalProducts"`
}
