package dto

type RouteRequest struct {
	PickList      []string `json:"pick_list"`
	ReturnToDepot bool     `json:"return_to_depot"`
	Visualize     bool     `json:"visualize"`
}

type SegmentResponse struct {
	From     [2]int   `json:"from"`
	To       [2]int   `json:"to"`
	Path     [][2]int `json:"path"`
	Distance int      `json:"distance"`
	Found    bool     `json:"found"`
}

type RoutePointResponse struct {
	Position [2]int `json:"position"`
	Order    int    `json:"order"`
	ID       string `json:"id"`
}

type VisualizationResponse struct {
	VisualGrid  [][]int              `json:"visual_grid"`
	RoutePoints []RoutePointResponse `json:"route_points"`
	Directions  map[string][]string  `json:"directions"`
}

type RouteResponse struct {
	OrderedLocations [][2]int               `json:"ordered_locations"`
	Segments         []SegmentResponse      `json:"segments"`
	TotalDistance    int                    `json:"total_distance"`
	Visualization    *VisualizationResponse `json:"visualization,omitempty"`
}
