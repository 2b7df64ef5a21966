package players

import (
	"context"
	"errors"
	"fmt"
	"time"

	"player-enricher/core/metrics"
	"player-enricher/core/reconcile"
	"player-enricher/feature/players/rankings"
	"player-enricher/feature/players/registry"
	"player-enricher/feature/players/sink"
	"player-enricher/feature/players/valuation"

	"go.uber.org/zap"
)

// RunOptions overrides the configured pipeline settings for one run. Zero
// values fall back to Config.
type RunOptions struct {
	Mode      string
	DryRun    bool
	BatchSize int
	Formats   []string
	Registry  registry.Source
}

// SourceUpload is the upload a ranking format was read from.
type SourceUpload struct {
	Format       string    `json:"format"`
	Key          string    `json:"key,omitempty"`
	LastModified time.Time `json:"last_modified,omitempty"`
	Error        string    `json:"error,omitempty"`
}

// RunResult is everything a run found and did.
type RunResult struct {
	Mode      reconcile.JoinMode `json:"mode"`
	DryRun    bool               `json:"dry_run"`
	StartedAt time.Time          `json:"started_at"`
	Elapsed   string             `json:"elapsed"`
	Registry  string             `json:"registry"`
	Valuation valuation.Report   `json:"valuation"`
	Players   registry.Report    `json:"players"`
	Uploads   []SourceUpload     `json:"uploads"`
	Plan      *reconcile.Plan    `json:"plan,omitempty"`
	Write     *sink.WriteReport  `json:"write,omitempty"`
}

// RunShared runs the pipeline, joining a run already in flight with the
// same mode and dry-run flag instead of starting a second one. The run is
// detached from ctx cancellation once started.
func (s *Service) RunShared(ctx context.Context, opts RunOptions) (*RunResult, bool, error) {
	mode, err := s.joinMode(opts.Mode)
	if err != nil {
		return nil, false, err
	}
	opts.Mode = string(mode)

	key := fmt.Sprintf("%s|%t", mode, opts.DryRun)
	v, err, shared := s.runs.Do(key, func() (any, error) {
		return s.Run(context.WithoutCancel(ctx), opts)
	})
	result, _ := v.(*RunResult)
	return result, shared, err
}

// Run executes the pipeline once: fetch valuations, load the registry, load
// the latest upload of every ranking format, build the master relation and,
// unless DryRun is set, upsert it into the sink.
//
// Missing or unreadable ranking uploads only leave their fields null. A
// failure to fetch valuations or load the registry ends the run with a
// StageError. A partial sink write returns the result together with an
// error wrapping ErrPartialWrite.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	mode, err := s.joinMode(opts.Mode)
	if err != nil {
		return nil, err
	}
	profiles, err := rankings.Enabled(s.formats(opts.Formats))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}
	if !opts.DryRun && s.repo == nil {
		return nil, &StageError{Stage: StageWrite, Err: ErrNoDatabase}
	}

	start := s.now()
	result := &RunResult{Mode: mode, DryRun: opts.DryRun, StartedAt: start.UTC()}
	l := s.logger.With(zap.String("mode", string(mode)), zap.Bool("dry_run", opts.DryRun))
	l.Info("Pipeline run started")

	outcome := metrics.OutcomeFailure
	defer func() {
		elapsed := s.now().Sub(start)
		result.Elapsed = elapsed.String()
		s.metrics.ObserveRun(string(mode), outcome, elapsed)
	}()

	values, vReport, err := s.values.Fetch(ctx)
	if err != nil {
		l.Error("Valuation fetch failed", zap.Error(err))
		return nil, &StageError{Stage: StageValuation, Err: err}
	}
	result.Valuation = vReport
	l.Info("Valuations fetched",
		zap.Int("players", vReport.Players),
		zap.Int("missing_id", vReport.MissingID),
		zap.Int("duplicates", vReport.Duplicates),
	)

	src := opts.Registry
	if src == nil {
		src = s.RegistrySource()
	}
	result.Registry = src.String()
	players, pReport, err := registry.Load(ctx, src)
	if err != nil {
		l.Error("Registry load failed", zap.String("registry", src.String()), zap.Error(err))
		return nil, &StageError{Stage: StageRegistry, Err: err}
	}
	result.Players = pReport
	l.Info("Registry loaded",
		zap.String("registry", src.String()),
		zap.Int("players", pReport.Players),
		zap.Int("missing_id", pReport.MissingID),
	)

	inputs := make([]reconcile.SourceInput, 0, len(profiles))
	for _, p := range profiles {
		wb, obj, err := s.rankings.Load(ctx, p)
		upload := SourceUpload{Format: p.Format, Key: obj.Key, LastModified: obj.LastModified}
		if err != nil {
			upload.Error = err.Error()
			l.Warn("Ranking upload unavailable", zap.String("format", p.Format), zap.Error(err))
		}
		result.Uploads = append(result.Uploads, upload)
		inputs = append(inputs, reconcile.SourceInput{Spec: p.Spec, Workbook: wb})
	}

	plan, err := reconcile.BuildPlan(reconcile.PlanInput{
		Registry:  players,
		Sources:   inputs,
		Valuation: values,
		Mode:      mode,
	})
	if err != nil {
		l.Error("Plan failed", zap.Error(err))
		return nil, &StageError{Stage: StagePlan, Err: err}
	}
	result.Plan = plan
	s.logPlan(l, plan)

	if opts.DryRun {
		outcome = metrics.OutcomeSuccess
		l.Info("Dry run finished", zap.Int("master_rows", plan.Summary.MasterRows))
		return result, nil
	}

	rows, err := sink.ToModels(plan.Master, s.now())
	if err != nil {
		return nil, &StageError{Stage: StageWrite, Err: err}
	}
	batch := opts.BatchSize
	if batch < 1 {
		batch = s.cfg.BatchSize
	}

	report := s.repo.Write(ctx, rows, batch)
	result.Write = &report
	for range report.Chunks - len(report.Failed) {
		s.metrics.ChunkWritten(true)
	}
	for _, f := range report.Failed {
		s.metrics.ChunkWritten(false)
		l.Error("Sink chunk failed", zap.Int("chunk", f.Index), zap.Strings("ids", f.IDs), zap.String("error", f.Error))
	}

	if err := report.Err(); err != nil {
		outcome = metrics.OutcomePartial
		l.Warn("Pipeline run finished with failures", zap.Int("written", report.Written), zap.Int("failed_chunks", len(report.Failed)))
		return result, &StageError{Stage: StageWrite, Err: err}
	}

	outcome = metrics.OutcomeSuccess
	l.Info("Pipeline run finished", zap.Int("written", report.Written), zap.Int("chunks", report.Chunks))
	return result, nil
}

func (s *Service) logPlan(l *zap.Logger, plan *reconcile.Plan) {
	for i, src := range plan.Sources {
		if src.Err != nil {
			s.metrics.SourceSkipped(src.Source)
			if !errors.Is(src.Err, reconcile.ErrSourceAbsent) {
				l.Warn("Ranking source skipped", zap.String("source", src.Source), zap.Error(src.Err))
			}
			continue
		}

		var match reconcile.MatchStat
		if i < len(plan.Matches) {
			match = plan.Matches[i]
		}
		s.metrics.RecordSource(src.Source, src.Rows, match.Matched, match.Collisions)
		l.Info("Ranking source merged",
			zap.String("source", src.Source),
			zap.String("strategy", src.Location.Strategy),
			zap.Int("header_row", src.Location.HeaderRow),
			zap.Int("rows", src.Rows),
			zap.Int("duplicates", src.Duplicates),
			zap.Int("matched", match.Matched),
			zap.Int("collisions", match.Collisions),
			zap.Strings("missing_columns", src.MissingColumns),
		)
	}

	s.metrics.SetMasterRows(string(plan.Identity.Mode), plan.Summary.MasterRows)
	l.Info("Master relation built",
		zap.Int("registry_rows", plan.Summary.RegistryRows),
		zap.Int("matched", plan.Identity.Matched),
		zap.Int("master_rows", plan.Summary.MasterRows),
		zap.Int("skipped_sources", plan.Summary.SkippedSources),
	)
}

func (s *Service) joinMode(override string) (reconcile.JoinMode, error) {
	if override != "" {
		return reconcile.ParseJoinMode(override)
	}
	return reconcile.ParseJoinMode(s.cfg.JoinMode)
}

func (s *Service) formats(override []string) []string {
	if len(override) > 0 {
		return override
	}
	return s.cfg.Formats
}
