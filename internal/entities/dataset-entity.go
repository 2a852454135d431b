package entities

// Dataset is the full persisted document.
type Dataset struct {
	Equipment   []Equipment  `json:"equipment"`
	Devices     []Device     `json:"devices"`
	Assignments []Assignment `json:"assignments"`
}

func EmptyDataset() Dataset {
	return Dataset{
		Equipment:   []Equipment{},
		Devices:     []Device{},
		Assignments: []Assignment{},
	}
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (d Dataset) Normalize() Dataset {
	if d.Equipment == nil {
		d.Equipment = []Equipment{}
	}
	if d.Devices == nil {
		d.Devices = []Device{}
	}
	if d.Assignments == nil {
		d.Assignments = []Assignment{}
	}
	return d
}

// Clone returns a deep copy; the record types hold no pointers.
func (d Dataset) Clone() Dataset {
	return Dataset{
		Equipment:   append(make([]Equipment, 0, len(d.Equipment)), d.Equipment...),
		Devices:     append(make([]Device, 0, len(d.Devices)), d.Devices...),
		Assignments: append(make([]Assignment, 0, len(d.Assignments)), d.Assignments...),
	}
}
