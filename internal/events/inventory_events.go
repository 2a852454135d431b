package events

const (
	ResourceEquipment   = "equipment"
	ResourceDevices     = "devices"
	ResourceAssignments = "assignments"

	RecordCreatedName = "inventory.record.created"
	RecordDeletedName = "inventory.record.deleted"
)

// RecordCreatedEvent is published after a record was created and saved.
type RecordCreatedEvent struct {
	Resource string
	ID       int64
}

func (e RecordCreatedEvent) Name() string { return RecordCreatedName }

// RecordDeletedEvent is published after an explicit delete was saved.
// CascadedAssignments counts assignments removed along with the record.
type RecordDeletedEvent struct {
	Resource            string
	ID                  int64
	CascadedAssignments int
}

func (e RecordDeletedEvent) Name() string { return RecordDeletedName }
