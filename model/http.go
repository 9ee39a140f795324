package model

type GenerateResponse struct {
	RunId    string   `json:"run_id"`
	Filename string   `json:"filename"`
	Events   Timeline `json:"events"`
	Skipped  int      `json:"skipped_out_of_range"`
}

type ListResponse struct {
	Names []string `json:"names"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
