package domain

import (
	"context"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"capres.dev/pkg/capres/internal/adapter"
	m "capres.dev/pkg/capres/internal/model"
)

// Stager copies runtime artifacts next to the binaries that load them.
type Stager interface {
	// Stage copies job.Source into every destination directory. Filesystem
	// and permission failures are recorded per destination and never
	// returned; the error is reserved for jobs that cannot be acted on.
	Stage(ctx context.Context, job m.StagingJob) (m.StagingReport, error)

	// EnsureDirs creates each directory, logging failures.
	EnsureDirs(ctx context.Context, dirs ...m.Path)
}

type stager struct {
	fs adapter.FSAdapter
}

// NewStager creates a Stager.
func NewStager(fs adapter.FSAdapter) Stager {
	return &stager{fs: fs}
}

func (s *stager) Stage(ctx context.Context, job m.StagingJob) (m.StagingReport, error) {
	report := m.StagingReport{Job: job}

	if job.Source == "" {
		return report, fmt.Errorf("%w: empty source", ErrInvalidJob)
	}

	srcInfo, srcErr := s.fs.FileInfo(job.Source)
	if srcErr == nil && srcInfo.IsDir() {
		return report, fmt.Errorf("%w: source %s is a directory", ErrInvalidJob, job.Source)
	}

	name := filepath.Base(string(job.Source))

	for _, dest := range job.Destinations {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		target := s.fs.JoinPath(string(dest), name)

		if srcErr != nil {
			// Unreadable source: every destination fails the same way.
			if !isFilesystemError(srcErr) {
				return report, srcErr
			}

			report.Outcomes = append(report.Outcomes, s.failed(target, srcErr))

			continue
		}

		outcome, stageErr := s.stageOne(dest, target, job.Source, srcInfo.ModTime())
		if stageErr != nil {
			return report, stageErr
		}

		report.Outcomes = append(report.Outcomes, outcome)
	}

	slog.Debug("staging finished", "source", job.Source, "destinations", len(job.Destinations), "copied", report.Copied())

	return report, nil
}

func (s *stager) stageOne(dest, target, source m.Path, srcModTime time.Time) (m.StageOutcome, error) {
	if err := s.fs.MkdirAll(dest); err != nil {
		if !isFilesystemError(err) {
			return m.StageOutcome{}, err
		}

		return s.failed(target, err), nil
	}

	dstInfo, err := s.fs.FileInfo(target)

	switch {
	case err == nil && !dstInfo.Mode().IsRegular():
		return s.failed(target, &iofs.PathError{Op: "stage", Path: string(target), Err: ErrDestinationNotRegular}), nil
	case err == nil && !dstInfo.ModTime().Before(srcModTime):
		slog.Debug("staged copy up to date", "target", target)
		return m.StageOutcome{Destination: target, Status: m.StageUpToDate}, nil
	case err != nil && !adapter.IsNotExist(err):
		if !isFilesystemError(err) {
			return m.StageOutcome{}, err
		}

		return s.failed(target, err), nil
	}

	if err := s.fs.CopyFile(source, target, srcModTime); err != nil {
		if !isFilesystemError(err) {
			return m.StageOutcome{}, err
		}

		return s.failed(target, err), nil
	}

	slog.Info("staged runtime library", "source", source, "target", target)

	return m.StageOutcome{Destination: target, Status: m.StageCopied}, nil
}

func (s *stager) failed(target m.Path, err error) m.StageOutcome {
	slog.Warn("staging skipped", "target", target, "error", err)

	return m.StageOutcome{Destination: target, Status: m.StageFailed, Message: err.Error(), Err: err}
}

func (s *stager) EnsureDirs(ctx context.Context, dirs ...m.Path) {
	for _, dir := range dirs {
		if ctx.Err() != nil {
			return
		}

		if err := s.fs.MkdirAll(dir); err != nil {
			slog.Warn("could not create binaries directory", "dir", dir, "error", err)
		}
	}
}
