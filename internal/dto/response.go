package dto

type HealthDTO struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
