package dto

type LayoutResponse struct {
	Grid    [][]int           `json:"grid"`
	Shelves map[string][2]int `json:"shelves"`
	Depot   string            `json:"depot"`
}
