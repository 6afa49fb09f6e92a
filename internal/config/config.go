package config

const (
	// Service listen addresses
	GatewayAddr  = ":8081"
	AnalysisAddr = ":7143"

	// Gateway proxy target for the analysis service
	AnalysisTarget = "http://localhost:7143"

	// Logger defaults
	DefaultLogFolder     = "./logs"
	DefaultMaxFileMB     = 32
	DefaultRetentionDays = 14

	// Retention sweep schedule (daily at 02:30)
	RetentionSchedule = "30 2 * * *"
)
