package serviceiface

// Service is the unit managed by the appmanager. Start must not block;
// long-running work belongs in goroutines owned by the service.
type Service interface {
	Name() string
	Start() error
	Stop() error
}
