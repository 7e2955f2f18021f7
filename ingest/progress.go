package ingest

import "log/slog"

// Progress reports pipeline activity through the logger: a line when a
// stage starts and finishes, periodic ticks inside long files at debug
// level, and a warning when a stage dropped unresolved roots.
type Progress struct {
	logger *slog.Logger
}

func newProgress(logger *slog.Logger) *Progress {
	return &Progress{logger: logger}
}

// Stage announces that a stage started.
func (p *Progress) Stage(name string) {
	p.logger.Info("running stage", slog.String("stage", name))
}

// Tick reports incremental progress within a stage.
func (p *Progress) Tick(stage, item string) {
	p.logger.Debug("progress", slog.String("stage", stage), slog.String("at", item))
}

// Done reports the rows a stage wrote.
func (p *Progress) Done(stage string, rows int) {
	p.logger.Info("stage complete", slog.String("stage", stage), slog.Int("rows", rows))
}

// Skipped reports the unresolved roots a stage dropped.
func (p *Progress) Skipped(stage string, skipped SkipSet) {
	if skipped.Len() == 0 {
		return
	}
	p.logger.Warn("skipped unresolved roots",
		slog.String("stage", stage),
		slog.Int("count", skipped.Len()),
	)
}
