package health

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"roombook/pkg/logger"
)

const (
	StatusOnline   = "online"
	StatusDegraded = "degraded"
	StatusOffline  = "offline"
)

type ServiceStatus struct {
	Status string `json:"status"`
	Code   int    `json:"code,omitempty"`
	Error  string `json:"error,omitempty"`
}

type Report struct {
	Gateway  string                   `json:"gateway"`
	Services map[string]ServiceStatus `json:"services"`
}

type target struct {
	name    string
	baseURL string
}

// Aggregator probes each downstream health endpoint with its own
// bounded timeout. One slow or dead service never delays or fails the
// report; it just shows up as offline.
type Aggregator struct {
	targets []target
	client  *http.Client
	timeout time.Duration
	log     *logger.Logger
}

func NewAggregator(timeout time.Duration, log *logger.Logger) *Aggregator {
	return &Aggregator{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
		log:     log,
	}
}

func (a *Aggregator) Register(name, baseURL string) {
	a.targets = append(a.targets, target{name: name, baseURL: baseURL})
	sort.Slice(a.targets, func(i, j int) bool { return a.targets[i].name < a.targets[j].name })
}

// Probe fans one GET /health out per registered service and collects
// the verdicts. Always returns a full report.
func (a *Aggregator) Probe(ctx context.Context) Report {
	report := Report{
		Gateway:  StatusOnline,
		Services: make(map[string]ServiceStatus, len(a.targets)),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, t := range a.targets {
		wg.Add(1)
		go func(t target) {
			defer wg.Done()
			status := a.probeOne(ctx, t)

			mu.Lock()
			report.Services[t.name] = status
			mu.Unlock()
		}(t)
	}

	wg.Wait()
	return report
}

func (a *Aggregator) probeOne(ctx context.Context, t target) ServiceStatus {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"/health", nil)
	if err != nil {
		return ServiceStatus{Status: StatusOffline, Error: err.Error()}
	}

	resp, err := a.client.Do(req)
	if err != nil {
		a.log.Warn("Health probe failed", "service", t.name, "error", err)
		return ServiceStatus{Status: StatusOffline, Error: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return ServiceStatus{Status: StatusOnline, Code: resp.StatusCode}
	}

	a.log.Warn("Health probe degraded", "service", t.name, "code", resp.StatusCode)
	return ServiceStatus{Status: StatusDegraded, Code: resp.StatusCode}
}
