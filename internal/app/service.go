// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"strings"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/okian/lineout/internal/adapters/repository"
	"github.com/okian/lineout/internal/domain/attendance"
	"github.com/okian/lineout/internal/domain/dates"
	"github.com/okian/lineout/internal/domain/dedupe"
	"github.com/okian/lineout/internal/domain/injury"
	"github.com/okian/lineout/internal/domain/model"
	"github.com/okian/lineout/internal/domain/names"
	"github.com/okian/lineout/internal/domain/roles"
	"github.com/okian/lineout/internal/domain/stats"
	"github.com/okian/lineout/internal/domain/types"
	"github.com/okian/lineout/pkg/logger"
	"github.com/okian/lineout/pkg/metrics"
)

// Service implements the API dependencies for the attendance system.
// Every read reloads the tables from the backend and recomputes; nothing
// is cached between requests.
type Service struct {
	mu sync.RWMutex

	// Core components
	backend repository.Backend
	loader  *repository.SafeLoader
	deduper dedupe.Deduper

	// Configuration
	tables     Tables
	sourceTag  string
	formURL    string
	dedupeSize int
	now        func() time.Time

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		tables:     DefaultTables,
		sourceTag:  "Manual",
		dedupeSize: 4096,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start wires the loader and the duplicate guard.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.backend == nil {
		return ErrNoBackend
	}

	s.loader = repository.NewSafeLoader(s.backend, repository.WithLoaderLogger(s.logger.Named("repository")))
	s.deduper = dedupe.NewInMemoryDeduper(dedupe.WithMaxSize(s.dedupeSize))
	s.started = true

	s.logger.Info(ctx, "attendance service started",
		logger.String("players_table", s.tables.Players),
		logger.String("manual_table", s.tables.Manual),
		logger.String("form_table", s.tables.Form),
		logger.String("injuries_table", s.tables.Injuries),
		logger.Int("dedupeSize", s.dedupeSize),
	)
	return nil
}

// Stop marks the service as stopped.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "attendance service stopped")
}

func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// snapshot is everything one request computes from.
type snapshot struct {
	players  []model.Player
	events   []model.Event
	injuries []model.Injury
}

func (s *Service) load(ctx context.Context) snapshot {
	roster := s.loader.Load(ctx, s.tables.Players)
	manual := s.loader.Load(ctx, s.tables.Manual)
	form := s.loader.Load(ctx, s.tables.Form)
	injuries := s.loader.Load(ctx, s.tables.Injuries)

	events, rep := attendance.CleanWithReport(attendance.Unify(manual, form))
	metrics.RecordEventsCleaned(rep.Events)
	metrics.RecordRowsDropped("no_name", rep.NoName)
	metrics.RecordRowsDropped("invalid_date", rep.InvalidDate)
	if rep.InvalidDate > 0 {
		s.logger.Debug(ctx, "dropped attendance rows with unparseable dates", logger.Int("rows", rep.InvalidDate))
	}

	snap := snapshot{
		players:  model.ParseRoster(roster),
		events:   events,
		injuries: model.ParseInjuries(injuries),
	}
	metrics.UpdateSessionCount(stats.SessionCount(snap.events))
	return snap
}

// Dashboard returns the squad summary, the session dates, the role split
// for day and the attendance series. A zero day selects the newest session.
func (s *Service) Dashboard(ctx context.Context, day time.Time) (types.Dashboard, error) {
	if err := s.ready(); err != nil {
		return types.Dashboard{}, err
	}
	snap := s.load(ctx)

	sessions := attendance.SessionDates(snap.events)
	unknown := stats.Unidentified(snap.players, snap.events)
	metrics.UpdateUnidentifiedPlayers(len(unknown))

	out := types.Dashboard{
		Squad:        types.FromSquad(stats.SquadSummary(snap.players, snap.injuries)),
		Sessions:     types.FromDates(sessions),
		Series:       types.FromSeries(stats.DailySeries(snap.events)),
		Unidentified: unknown,
	}
	if day.IsZero() && len(sessions) > 0 {
		day = sessions[0]
	}
	if !day.IsZero() {
		b := types.FromBreakdown(stats.DailyBreakdown(snap.events, roles.BuildIndex(snap.players), day))
		out.Breakdown = &b
	}
	return out, nil
}

// Players returns the roster attendance view.
func (s *Service) Players(ctx context.Context) ([]types.PlayerRow, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	snap := s.load(ctx)
	return types.FromRoster(stats.RosterAttendance(snap.players, snap.events, snap.injuries)), nil
}

// Player returns the profile of a roster player matched case-insensitively.
func (s *Service) Player(ctx context.Context, name string) (types.PlayerDetail, error) {
	if err := s.ready(); err != nil {
		return types.PlayerDetail{}, err
	}
	snap := s.load(ctx)

	key := names.Key(name)
	for _, p := range snap.players {
		if p.Key() != key {
			continue
		}
		periods := stats.PlayerPeriods(snap.events, roles.BuildIndex(snap.players), p.FullName(), s.now())
		return types.PlayerDetail{
			Name:     p.FullName(),
			Role:     p.Role,
			Position: p.Position(),
			Contact:  p.Contact,
			Periods:  types.FromPeriods(periods),
			Status:   string(stats.StatusOf(periods.Year)),
			Injuries: types.FromInjuries(injury.History(snap.injuries, p.FullName())),
		}, nil
	}
	return types.PlayerDetail{}, ErrPlayerNotFound
}

// SessionDates returns the distinct session days, newest first.
func (s *Service) SessionDates(ctx context.Context) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return types.FromDates(attendance.SessionDates(s.load(ctx).events)), nil
}

// Daily returns the role split of the players present on day.
func (s *Service) Daily(ctx context.Context, day time.Time) (types.Breakdown, error) {
	if err := s.ready(); err != nil {
		return types.Breakdown{}, err
	}
	snap := s.load(ctx)
	return types.FromBreakdown(stats.DailyBreakdown(snap.events, roles.BuildIndex(snap.players), day)), nil
}

// Injuries returns every injury record.
func (s *Service) Injuries(ctx context.Context) ([]types.Injury, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return types.FromInjuries(model.ParseInjuries(s.loader.Load(ctx, s.tables.Injuries))), nil
}

// FormURL returns the self-registration form link.
func (s *Service) FormURL() string {
	return s.formURL
}

// MarkPresent appends one manual attendance row per name for today.
//
// A name is a duplicate when it was already submitted today through this
// process, or when the manual table already has a row for it dated today.
// The check is not atomic across processes. A failed append forgets the
// submission so it can be retried.
func (s *Service) MarkPresent(ctx context.Context, submitted []string) ([]types.Mark, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	now := s.now()
	today := dates.Day(now)
	marked := s.markedOn(ctx, today)

	out := make([]types.Mark, 0, len(submitted))
	for _, raw := range submitted {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		key := dedupe.Key(today, name)
		outcome := types.Recorded

		switch {
		case marked.Contains(key):
			s.deduper.SeenAndRecord(ctx, key)
			outcome = types.Duplicate
		case s.deduper.SeenAndRecord(ctx, key):
			outcome = types.Duplicate
		default:
			row := []string{dates.FormatTimestamp(now), name, s.sourceTag}
			if err := s.loader.Append(ctx, s.tables.Manual, row); err != nil {
				s.deduper.Unrecord(ctx, key)
				s.logger.Error(ctx, "failed to record attendance", logger.String("player", name), logger.Error(err))
				outcome = types.Failed
			}
		}

		metrics.RecordSubmission(string(outcome))
		s.logger.Debug(ctx, "attendance submission", logger.String("player", name), logger.String("outcome", string(outcome)))
		out = append(out, types.Mark{Name: name, Outcome: outcome})
	}
	return out, nil
}

// markedOn returns the keys of manual rows dated day.
func (s *Service) markedOn(ctx context.Context, day time.Time) mapset.Set[string] {
	manual := s.loader.Load(ctx, s.tables.Manual)
	keys := mapset.NewThreadUnsafeSet[string]()
	for r := range manual.Rows {
		d, ok := dates.Parse(manual.Cell(r, 0))
		if !ok || !d.Equal(day) {
			continue
		}
		keys.Add(dedupe.Key(day, manual.Cell(r, 1)))
	}
	return keys
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string]interface{}{
		"started":    s.started,
		"dedupeSize": s.dedupeSize,
		"tables": map[string]string{
			"players":  s.tables.Players,
			"manual":   s.tables.Manual,
			"form":     s.tables.Form,
			"injuries": s.tables.Injuries,
		},
	}
	if s.started {
		out["submissionsTracked"] = s.deduper.Size()
	}
	return out
}

// Size returns the current number of entries in the duplicate guard.
func (s *Service) Size() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}
