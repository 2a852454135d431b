package dto

type CreateDeviceDTO struct {
	Name string `json:"name" validate:"required"`
}

var DeviceValidationMessages = map[string]string{
	"Name": "name is required",
}
