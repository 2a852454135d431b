package entities

// Equipment is a piece of trackable inventory that devices are assigned to.
type Equipment struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (e Equipment) GetID() int64 { return e.ID }
