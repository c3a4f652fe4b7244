package models

// Sauna is the single device resource served by this process.
type Sauna struct {
	SaunaID   string     `json:"sauna_id"`
	ModelName string     `json:"model_name"`
	Status    Status     `json:"status"`
	Schedules []Schedule `json:"schedules"`
	Programs  []Program  `json:"programs"`
}

// SaunaID is the discovery payload.
type SaunaID struct {
	SaunaID   string `json:"sauna_id" example:"3f2a9c0d4b7e4e0e9a1c5b6d7e8f9a0b"`
	ModelName string `json:"model_name" example:"SOne v1"`
}

// HTTPError is the body of every error response.
type HTTPError struct {
	Detail string `json:"detail" example:"Sauna ID does not exist"`
}
