package util

// Collection names
const (
	HospitalCollection     = "HOSPITALS"
	UserCollection         = "USERS"
	PatientCollection      = "PATIENTS"
	VitalCollection        = "VITALS"
	LabTestCollection      = "LAB_TESTS"
	LabResultCollection    = "LAB_RESULTS"
	LabTestTypeCollection  = "LAB_TEST_TYPES"
	InventoryCollection    = "INVENTORY"
	LabInventoryCollection = "LAB_INVENTORY"
	AppointmentCollection  = "APPOINTMENTS"
	TemplateCollection     = "PRESCRIPTION_TEMPLATES"
	CounterCollection      = "COUNTERS"
	QueueCounterCollection = "QUEUE_COUNTERS"
)

// Cache key prefixes
const (
	HospitalKey = "HOSPITAL_"
	UserKey     = "USER_"
	PatientKey  = "PATIENT_"
	TemplateKey = "TEMPLATE_"
)

// Roles
const (
	RoleAdmin      = "admin"
	RoleReception  = "reception"
	RoleDoctor     = "doctor"
	RolePharmacy   = "pharmacy"
	RoleLab        = "lab"
	RoleSuperAdmin = "superadmin"
)

// Departments a patient moves through
const (
	DeptReception = "reception"
	DeptDoctor    = "doctor"
	DeptPharmacy  = "pharmacy"
	DeptLab       = "lab"
)

// Lab test status values. These are written as-is from client input; the
// server does not enforce a transition table.
const (
	StatusPending           = "pending"
	StatusCollectionPending = "collection_pending"
	StatusProcessing        = "processing"
	StatusCompleted         = "completed"
	StatusRejected          = "rejected"
)

// Sample status values
const (
	SamplePending   = "pending"
	SampleCollected = "collected"
	SampleRejected  = "rejected"
)

// Priorities
const (
	PriorityNormal = "normal"
	PriorityUrgent = "urgent"
)

// Error messages
const (
	PLEASE_PROVIDE_USERNAME_AND_PASSWORD = "please provide username and password"
	INVALID_CREDENTIALS                  = "invalid username or password"
	USERNAME_ALREADY_EXISTS              = "username already exists in this hospital"
	HOSPITAL_NOT_FOUND                   = "hospital not found"
	USER_NOT_FOUND                       = "user not found"
	PATIENT_NOT_FOUND                    = "patient not found"
	TEST_NOT_FOUND                       = "lab test not found"
	TEMPLATE_NOT_FOUND                   = "prescription template not found"
	ITEM_NOT_FOUND                       = "inventory item not found"
	APPOINTMENT_NOT_FOUND                = "appointment not found"
	INSUFFICIENT_STOCK                   = "insufficient stock to dispense"
	INVALID_DEPARTMENT                   = "invalid department"
	MISSING_CREATOR_CODE                 = "missing creator code"
	UNAUTHORIZED                         = "unauthorized"
	TOKEN_EXPIRED                        = "token expired"
	ROLE_NOT_ALLOWED                     = "role not allowed for this operation"
)

// ValidDepartments is the set of queue departments a patient can sit in.
var ValidDepartments = []string{DeptReception, DeptDoctor, DeptPharmacy, DeptLab}

func IsValidDepartment(dept string) bool {
	for _, d := range ValidDepartments {
		if d == dept {
			return true
		}
	}
	return false
}
