package simulation

// SimulationError is a custom error type for simulation errors
type SimulationError string

// Error implements the error interface
func (e SimulationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidArgument  SimulationError = "invalid argument"
	ErrNilConfig        SimulationError = "config cannot be nil"
	ErrInvalidWorkers   SimulationError = "workers cannot be negative"
	ErrInvalidBatchSize SimulationError = "batch size cannot be negative"
)
