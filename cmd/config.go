package cmd

import "time"

// Config carries everything the process needs from its environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ManagerPassword is the credential seeded for the built-in manager
	// account on first startup.
	ManagerPassword string

	// OrderTransitionInterval is the wall-clock delay between two lifecycle
	// steps of an order. Production uses one minute; tests shrink it.
	OrderTransitionInterval time.Duration
}
