package dto

import "time"

type OrderRequest struct {
	Count     int      `json:"count"`
	MeanItems *float64 `json:"mean_items"`
	StdItems  *float64 `json:"std_items"`
	Seed      *int64   `json:"seed"`
}

type OrderResponse struct {
	OrderID   string    `json:"order_id"`
	PickList  []string  `json:"pick_list"`
	Timestamp time.Time `json:"timestamp"`
	NumItems  int       `json:"num_items"`
}

type ShelfCountResponse struct {
	ShelfID string `json:"shelf_id"`
	Count   int    `json:"count"`
}

type OrderStatsResponse struct {
	TotalOrders        int                  `json:"total_orders"`
	AvgItemsPerOrder   float64              `json:"avg_items_per_order"`
	StdItemsPerOrder   float64              `json:"std_items_per_order"`
	MinItemsPerOrder   int                  `json:"min_items_per_order"`
	MaxItemsPerOrder   int                  `json:"max_items_per_order"`
	TotalPicks         int                  `json:"total_picks"`
	MostPopularShelves []ShelfCountResponse `json:"most_popular_shelves"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse    `json:"orders"`
	Stats  OrderStatsResponse `json:"stats"`
}
