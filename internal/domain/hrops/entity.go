package hrops

import "time"

// Onboarding task statuses
const (
	TaskStatusPending    = "Pending"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
)

// Onboarding task owners
const (
	TaskOwnerHR       = "HR"
	TaskOwnerEmployee = "Employee"
)

type OnboardingTask struct {
	ID          string
	EmployeeID  string
	Title       string
	Description *string
	AssignedTo  string
	DueDate     *time.Time
	Status      string
	Notes       *string
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for responses
	EmployeeName *string
}

// Asset types
const (
	AssetTypeLaptop     = "Laptop"
	AssetTypePhone      = "Phone"
	AssetTypeAccessCard = "AccessCard"
	AssetTypeMonitor    = "Monitor"
	AssetTypeOther      = "Other"
)

// Asset statuses
const (
	AssetStatusAvailable = "Available"
	AssetStatusAssigned  = "Assigned"
	AssetStatusRepair    = "Repair"
	AssetStatusRetired   = "Retired"
)

type Asset struct {
	ID           string
	AssetType    string
	AssetTag     string
	SerialNumber *string
	Model        *string
	Status       string
	PurchaseDate *time.Time
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for responses: current holder, when assigned
	AssignedToID   *string
	AssignedToName *string
}

// AssetAssignment is the handover log; ReturnedAt nil means still held.
type AssetAssignment struct {
	ID              string
	AssetID         string
	EmployeeID      string
	AssignedByID    *string
	AssignedAt      time.Time
	ReturnedAt      *time.Time
	ReturnCondition *string
	Notes           *string
}

type Policy struct {
	ID            string
	Title         string
	Content       string
	Version       string
	EffectiveDate time.Time
	IsActive      bool
	RequireAck    bool
	CreatedByID   *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Acknowledgment statuses
const (
	AckStatusAcknowledged = "Acknowledged"
	AckStatusDeclined     = "Declined"
)

// PolicyAcknowledgment is unique per (policy, employee).
type PolicyAcknowledgment struct {
	ID             string
	PolicyID       string
	EmployeeID     string
	Status         string
	Comment        *string
	AcknowledgedAt time.Time

	// Joined for responses
	EmployeeName *string
}
