package entities

// Assignment links one device to one equipment with a quantity.
// EquipmentID and DeviceID are not guaranteed to resolve.
type Assignment struct {
	ID          int64 `json:"id"`
	EquipmentID int64 `json:"equipmentId"`
	DeviceID    int64 `json:"deviceId"`
	Quantity    int64 `json:"quantity"`
}

func (a Assignment) GetID() int64 { return a.ID }
