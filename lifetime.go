package scope

import "fmt"

// Lifetime names the reuse policy of a scope.
//
// Available lifetimes:
//   - [Application]: one value per process
//   - [Goroutine]: one value per goroutine
//   - [Request]: one value per logical request on a goroutine
type Lifetime uint8

const (
	// Application reuses a bound value for the life of the process.
	Application Lifetime = iota

	// Goroutine reuses a bound value for the life of the binding goroutine.
	// Other goroutines do not see it.
	Goroutine Lifetime = iota

	// Request reuses a bound value between Start and End of a logical
	// request on the binding goroutine.
	Request Lifetime = iota
)

func (l Lifetime) String() string {
	switch l {
	case Application:
		return "Application"
	case Goroutine:
		return "Goroutine"
	case Request:
		return "Request"
	default:
		return fmt.Sprintf("Unknown Lifetime %d", l)
	}
}
