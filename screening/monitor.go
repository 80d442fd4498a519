package screening

import (
	"github.com/poiesic/resumatch/core"
)

// Monitor provides hooks to observe a screening run.
// Scored and Failed are called from worker goroutines and must be safe
// for concurrent use.
type Monitor interface {
	Start(job core.JobRequirement, total int)
	Scored(result core.MatchResult)
	Failed(resumeID core.ID, err error)
	Finish(report *Report)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ core.JobRequirement, _ int) {}
func (n *noopMonitor) Scored(_ core.MatchResult)          {}
func (n *noopMonitor) Failed(_ core.ID, _ error)          {}
func (n *noopMonitor) Finish(_ *Report)                   {}
