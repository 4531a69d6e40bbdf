// Package cron runs the keep-warm job: a periodic GET against the service's
// own health endpoint so free-tier hosting does not idle the process. It is
// unrelated to request handling and exposes only Start/Stop.
package cron

import (
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const defaultPeriod = 14 * time.Minute

// Job pings URL every Period until stopped.
type Job struct {
	URL    string
	Period time.Duration
	Client *http.Client

	mu   sync.Mutex
	stop chan struct{}
}

func NewJob(url string) *Job {
	return &Job{
		URL:    url,
		Period: defaultPeriod,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Start launches the ticker goroutine. Calling Start on a running job is a
// no-op.
func (j *Job) Start() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stop != nil {
		return
	}
	j.stop = make(chan struct{})

	go j.run(j.stop)
	slog.Info("keep-warm job started", "url", j.URL, "period", j.Period)
}

// Stop halts the ticker. Safe to call on a stopped job.
func (j *Job) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.stop == nil {
		return
	}
	close(j.stop)
	j.stop = nil
}

func (j *Job) run(stop chan struct{}) {
	ticker := time.NewTicker(j.Period)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			j.ping()
		}
	}
}

func (j *Job) ping() {
	resp, err := j.Client.Get(j.URL)
	if err != nil {
		slog.Warn("keep-warm ping failed", "url", j.URL, "error", err)
		return
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.Warn("keep-warm ping returned non-200", "url", j.URL, "status", resp.StatusCode)
	}
}
