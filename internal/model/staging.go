package model

// StagingJob copies one source artifact into an ordered list of directories.
type StagingJob struct {
	Source       Path
	Destinations []Path
}

// StageStatus is the per-destination result of a staging job.
type StageStatus int

const (
	// StageCopied means the destination was written.
	StageCopied StageStatus = iota
	// StageUpToDate means the destination was newer or as new as the source.
	StageUpToDate
	// StageFailed means a filesystem error was suppressed.
	StageFailed
)

func (s StageStatus) String() string {
	switch s {
	case StageCopied:
		return "copied"
	case StageUpToDate:
		return "up-to-date"
	case StageFailed:
		return "failed"
	}

	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s StageStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// StageOutcome is what happened to a single destination.
type StageOutcome struct {
	Destination Path        `json:"destination" yaml:"destination"`
	Status      StageStatus `json:"status" yaml:"status"`
	Message     string      `json:"message,omitempty" yaml:"message,omitempty"`
	Err         error       `json:"-" yaml:"-"`
}

// StagingReport collects the outcomes of a job.
type StagingReport struct {
	Job      StagingJob
	Outcomes []StageOutcome
}

// Copied returns how many destinations were written.
func (r StagingReport) Copied() int {
	n := 0

	for _, o := range r.Outcomes {
		if o.Status == StageCopied {
			n++
		}
	}

	return n
}
