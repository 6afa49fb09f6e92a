package loadbalancer

import (
	"sync"
)

// LoadBalancer hands out upstream targets round-robin. The gateway uses it to
// spread analysis requests across replicas when more than one is configured.
type LoadBalancer struct {
	targets []string
	mu      sync.Mutex
	current int
}

func NewLoadBalancer(targets []string) *LoadBalancer {
	return &LoadBalancer{targets: targets}
}

func (lb *LoadBalancer) NextTarget() string {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if len(lb.targets) == 0 {
		return ""
	}
	target := lb.targets[lb.current]
	lb.current = (lb.current + 1) % len(lb.targets)
	return target
}
