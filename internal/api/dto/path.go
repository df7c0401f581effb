package dto

type PathRequest struct {
	Start [2]int `json:"start"`
	Goal  [2]int `json:"goal"`
}

type PathResponse struct {
	Path     [][2]int `json:"path"`
	Distance int      `json:"distance"`
	Found    bool     `json:"found"`
}
