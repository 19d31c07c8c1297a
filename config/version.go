package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular components
	Sweep_Aggregator = "v1.0.0"
	Report_Writer    = "v1.0.0"
	Benchmark        = "v1.0.0"
)
