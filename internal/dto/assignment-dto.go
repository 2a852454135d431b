package dto

// CreateAssignmentDTO accepts ids and quantity as JSON numbers or numeric
// strings. A falsy quantity (absent, null, false, "", 0) means 1.
type CreateAssignmentDTO struct {
	EquipmentID FlexibleNumber `json:"equipmentId" validate:"nonzero_number"`
	DeviceID    FlexibleNumber `json:"deviceId"    validate:"nonzero_number"`
	Quantity    FlexibleNumber `json:"quantity"    validate:"omitempty,numeric_value"`
}

const AssignmentIDsRequired = "equipmentId and deviceId are required"

var AssignmentValidationMessages = map[string]string{
	"EquipmentID": AssignmentIDsRequired,
	"DeviceID":    AssignmentIDsRequired,
	"Quantity":    "quantity must be a number",
}

// AssignmentDTO is an assignment with the names of its equipment and device
// resolved for display.
type AssignmentDTO struct {
	ID            int64  `json:"id"`
	EquipmentID   int64  `json:"equipmentId"`
	DeviceID      int64  `json:"deviceId"`
	Quantity      int64  `json:"quantity"`
	EquipmentName string `json:"equipmentName"`
	DeviceName    string `json:"deviceName"`
}
