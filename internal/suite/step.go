package suite

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/themizzi/saucesuite/internal/logging"
)

// Step runs fn as a named step of t. A failure stops the test and reports the
// step description with the wrapped cause.
func Step(t testing.TB, log logrus.FieldLogger, desc string, fn func() error) {
	t.Helper()

	entry := logging.Category(log, "step").WithField("test", t.Name()).WithField("step", desc)
	start := time.Now()
	if err := fn(); err != nil {
		entry.WithError(err).WithField("took", time.Since(start)).Error("step failed")
		t.Fatalf("step %q: %v", desc, err)
		return
	}
	entry.WithField("took", time.Since(start)).Info("step passed")
}
