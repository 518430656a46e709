package supervisor

import (
	"bytes"
	"context"
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/qscaler/qscaler/models"
)

// Writer applies a process count to the supervisor: it rewrites numprocs and
// asks supervisord to reload. It is not safe for concurrent use.
type Writer struct {
	file     *ProgramFile
	reloader Reloader
	logger   lager.Logger

	// count of the last apply that reloaded successfully, 0 if none
	lastApplied int
}

func NewWriter(file *ProgramFile, reloader Reloader, logger lager.Logger) *Writer {
	return &Writer{
		file:     file,
		reloader: reloader,
		logger:   logger.Session("supervisor-writer", lager.Data{"path": file.Path, "program": file.Program}),
	}
}

// Apply returns an error wrapping models.ErrConfigWrite when the file could not
// be updated, or models.ErrReloadFailed when supervisord rejected the reload.
// In the latter case the previous file content is restored and reloaded once
// more; the original reload error is returned either way.
func (w *Writer) Apply(ctx context.Context, processes int) error {
	logger := w.logger.Session("apply", lager.Data{"processes": processes})

	if processes < 1 {
		return fmt.Errorf("%w: invalid process count %d", models.ErrConfigWrite, processes)
	}

	original, err := w.file.Read()
	if err != nil {
		return err
	}

	updated, current, err := w.file.Rewrite(original, processes)
	if err != nil {
		return err
	}

	if current == processes && w.lastApplied == processes {
		logger.Debug("unchanged")
		return nil
	}

	changed := !bytes.Equal(original, updated)
	if changed {
		if err := w.file.Write(updated); err != nil {
			return err
		}
		logger.Info("rewrote-numprocs", lager.Data{"previous": current})
	}

	if err := w.reloader.Reload(ctx); err != nil {
		if changed {
			if restoreErr := w.file.Write(original); restoreErr != nil {
				logger.Error("failed-to-restore-program-config", restoreErr, lager.Data{"previous": current})
			} else {
				logger.Info("restored-program-config", lager.Data{"previous": current})
				// reread may already have staged the new count
				if reloadErr := w.reloader.Reload(ctx); reloadErr != nil {
					logger.Error("failed-to-reload-restored-program-config", reloadErr, lager.Data{"previous": current})
				}
			}
		}
		return err
	}

	w.lastApplied = processes
	logger.Info("applied", lager.Data{"previous": current})
	return nil
}
