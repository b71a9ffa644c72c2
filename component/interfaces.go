package component

import "context"

// HealthStatus represents the health state of a component.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// Health holds health information for a component.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Component is a lifecycle-managed resource owned by an application,
// such as an NDEx connection.
type Component interface {
	// Name returns the unique name of the component.
	Name() string

	// Start initializes the component.
	Start(ctx context.Context) error

	// Stop releases the component's resources.
	Stop(ctx context.Context) error

	// Health returns the current health status of the component.
	Health(ctx context.Context) Health
}

// Description summarizes what a component is and how it is configured.
type Description struct {
	// Name is the display name. If empty, the component's Name() is used.
	Name string
	// Type categorizes the component, e.g. "ndex-client".
	Type string
	// Details is a one-line configuration summary, e.g. "https://www.ndexbio.org/v2 backend=pooled".
	Details string
}

// Describable is optionally implemented by components that can describe
// themselves for startup logs.
type Describable interface {
	Describe() Description
}
