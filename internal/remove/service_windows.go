//go:build windows

package remove

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/mgr"

	"github.com/sweepkit/agent/internal/detect"
)

// removeServices (M7) stops and deletes services belonging to the
// application, matched by binary path or by a simplified name stem.
func (r *Remover) removeServices(ctx context.Context, d detect.Detection, res *Result) {
	m, err := mgr.Connect()
	if err != nil {
		res.record(StepServiceRemove, false, fmt.Sprintf("connect to SCM: %v", err))
		return
	}
	defer m.Disconnect()

	names, err := m.ListServices()
	if err != nil {
		res.record(StepServiceRemove, false, fmt.Sprintf("list services: %v", err))
		return
	}

	terms := simplifyTerms(append([]string{d.Name, d.VendorHint}, r.terms(d)...)...)
	installLoc := strings.ToLower(d.InstallLocation)

	var deleted, failed int
	for _, name := range names {
		if ctx.Err() != nil {
			break
		}
		s, err := m.OpenService(name)
		if err != nil {
			continue
		}
		cfg, err := s.Config()
		if err != nil {
			s.Close()
			continue
		}
		if !serviceMatches(name, cfg.DisplayName, cfg.BinaryPathName, installLoc, terms) {
			s.Close()
			continue
		}

		if r.dryRun {
			deleted++
			log.Info("dry run: would remove service", "service", name)
			s.Close()
			continue
		}

		// Delete even when the stop fails: deletion of a running service
		// is marked pending and completes at shutdown.
		r.stopService(ctx, s, name)
		if err := r.deleteService(s); err != nil {
			failed++
			log.Warn("delete service", "service", name, "error", err)
		} else {
			deleted++
			log.Info("deleted service", "service", name)
		}
		s.Close()
	}

	if deleted == 0 && failed == 0 {
		// No services belong to this application; skip rather than fail.
		return
	}
	res.record(StepServiceRemove, failed == 0,
		fmt.Sprintf("deleted %d, failed %d", deleted, failed))
}

func serviceMatches(name, displayName, binPath, installLoc string, terms []string) bool {
	if installLoc != "" && strings.HasPrefix(strings.ToLower(strings.Trim(binPath, `"`)), installLoc) {
		return true
	}
	return containsAnyTerm(name, terms) || containsAnyTerm(displayName, terms)
}

// deleteService bounds the SCM delete call, which can hang on services
// with a wedged control handler.
func (r *Remover) deleteService(s *mgr.Service) error {
	done := make(chan error, 1)
	go func() { done <- s.Delete() }()
	select {
	case err := <-done:
		return err
	case <-time.After(r.serviceDeleteTimeout):
		return fmt.Errorf("delete timed out after %s", r.serviceDeleteTimeout)
	}
}

// stopService sends a stop control and polls until the service reaches
// Stopped or the stop timeout elapses, then gives the SCM a short settle
// window.
func (r *Remover) stopService(ctx context.Context, s *mgr.Service, name string) {
	status, err := s.Query()
	if err != nil || status.State == svc.Stopped {
		return
	}

	status, err = s.Control(svc.Stop)
	if err != nil {
		log.Warn("stop service", "service", name, "error", err)
		return
	}

	deadline := time.Now().Add(r.serviceStopTimeout)
	for status.State != svc.Stopped && time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return
		case <-time.After(500 * time.Millisecond):
		}
		status, err = s.Query()
		if err != nil {
			return
		}
	}
	if status.State != svc.Stopped {
		log.Warn("service did not stop in time", "service", name)
		return
	}
	time.Sleep(3 * time.Second)
}
