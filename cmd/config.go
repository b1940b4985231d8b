package cmd

// Config carries every runtime setting of the service, loaded from the
// environment by cmd/app.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaHost is optional; when empty, audit events go to the log.
	KafkaHost        string
	KafkaEventsTopic string

	// VaultAddress holds escrowed funds; PayoutAddress receives milestone
	// releases.
	VaultAddress  string
	PayoutAddress string

	// EscrowTTLHours is the default refund deadline for escrows opened
	// without an explicit one.
	EscrowTTLHours int

	// SweepSchedule is the six-field cron expression of the escrow expiry
	// sweep.
	SweepSchedule string

	// SeedAdminAddress is granted the ADMIN role at startup so the system
	// never boots without an administrator.
	SeedAdminAddress string
}
