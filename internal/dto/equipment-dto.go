package dto

type CreateEquipmentDTO struct {
	Name string `json:"name" validate:"required"`
}

var EquipmentValidationMessages = map[string]string{
	"Name": "name is required",
}
