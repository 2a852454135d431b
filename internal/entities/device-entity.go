package entities

// Device is an item that can be assigned to equipment.
type Device struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (d Device) GetID() int64 { return d.ID }
