package noop

import (
	"context"
	"log"

	"basesync/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op ReportSender that logs deliveries to stdout.
func NewNoopSender() port.ReportSender {
	return &noopSender{}
}

func (s *noopSender) Deliver(_ context.Context, recipient, subject string, payload []byte) error {
	log.Printf("[NOOP EMAIL] Report %q for %s (%d bytes)", subject, recipient, len(payload))
	return nil
}
