package domain

var (
	MessageSuccessInitDatabase  = "database initialized successfully"
	MessageSuccessResetDatabase = "database reset successfully"
	MessageSuccessForceReset    = "database force reset successfully"
	MessageSuccessGetStatus     = "success get database status"

	MessageFailedInitDatabase  = "database initialization failed"
	MessageFailedResetDatabase = "database reset failed"
	MessageFailedForceReset    = "database force reset failed"
	MessageFailedGetStatus     = "failed to get database status"
)

type (
	DatabaseStatus struct {
		Status     string   `json:"status"`
		Tables     []string `json:"tables"`
		TableCount int      `json:"table_count"`
	}
)
