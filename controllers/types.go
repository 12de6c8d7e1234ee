package controllers

type StandardResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ResultsMeta struct {
	TotalResults    int     `json:"totalResults"`
	FilteredResults int     `json:"filteredResults"`
	RadiusMeters    float64 `json:"radiusMeters,omitempty"`
}
