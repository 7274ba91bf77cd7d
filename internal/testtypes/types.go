// Package testtypes provides small types bound and resolved in tests.
package testtypes

// Greeter is a minimal service interface.
type Greeter interface {
	Greet() string
}

// StaticGreeter greets with a fixed message.
type StaticGreeter struct {
	Message string
}

func (g *StaticGreeter) Greet() string {
	return g.Message
}

// NewGreeter creates a Greeter with a default message.
func NewGreeter() Greeter {
	return &StaticGreeter{Message: "hello"}
}

// Config is a plain value bound in tests.
type Config struct {
	DSN string
}

// Conn stands in for a request-lived resource.
type Conn struct {
	ID int
}
