package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"sauna_api/internal/logger"
	"sauna_api/internal/models"
	"sauna_api/internal/repository"

	"github.com/google/uuid"
)

const (
	FirmwareVersion = 1
	ModelName       = "SOne v1"
)

// NewSaunaID returns a fresh opaque sauna id (32 hex chars).
func NewSaunaID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// SaunaService owns the in-memory sauna record. Reads hand out deep copies;
// every mutation runs under the write lock.
type SaunaService struct {
	mu    sync.RWMutex
	sauna models.Sauna

	eventRepo repository.EventRepo
	log       *logger.Logger
	now       func() time.Time
}

var _ Sauna = (*SaunaService)(nil)

// NewSaunaService seeds a sauna with the default status and schedule.
func NewSaunaService(saunaID string, eventRepo repository.EventRepo, log *logger.Logger) *SaunaService {
	if log == nil {
		log = logger.NewNop()
	}
	status := models.DefaultStatus()
	status.SaunaID = saunaID
	status.FirmwareVersion = FirmwareVersion

	return &SaunaService{
		sauna: models.Sauna{
			SaunaID:   saunaID,
			ModelName: ModelName,
			Status:    status,
			Schedules: []models.Schedule{models.DefaultSchedule()},
			Programs:  []models.Program{},
		},
		eventRepo: eventRepo,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *SaunaService) Discover() models.SaunaID {
	// id and model name never change after construction
	return models.SaunaID{SaunaID: s.sauna.SaunaID, ModelName: s.sauna.ModelName}
}

func (s *SaunaService) checkID(saunaID string) error {
	if saunaID != s.sauna.SaunaID {
		return fmt.Errorf("sauna %q: %w", saunaID, ErrSaunaNotFound)
	}
	return nil
}

func (s *SaunaService) GetStatus(_ context.Context, saunaID string) (models.Status, error) {
	if err := s.checkID(saunaID); err != nil {
		return models.Status{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sauna.Status.Clone(), nil
}

// UpdateStatus merges the non-nil fields of upd into the live status.
func (s *SaunaService) UpdateStatus(ctx context.Context, saunaID string, upd models.StatusUpdate) (models.Status, error) {
	if err := s.checkID(saunaID); err != nil {
		return models.Status{}, err
	}

	s.mu.Lock()
	changed := applyStatusUpdate(&s.sauna.Status, upd)
	out := s.sauna.Status.Clone()
	s.mu.Unlock()

	if len(changed) > 0 {
		s.appendEvent(ctx, models.EventStatusUpdate, "Status updated", map[string]any{"fields": changed})
	}
	return out, nil
}

// applyStatusUpdate returns the json names of the fields it touched.
func applyStatusUpdate(st *models.Status, upd models.StatusUpdate) []string {
	var changed []string
	if upd.State != nil {
		st.State = *upd.State
		changed = append(changed, "state")
	}
	if upd.TargetTemperature != nil {
		st.TargetTemperature = *upd.TargetTemperature
		changed = append(changed, "target_temperature")
	}
	if upd.CurrentTemperature != nil {
		st.CurrentTemperature = *upd.CurrentTemperature
		changed = append(changed, "current_temperature")
	}
	if upd.Timer != nil {
		st.Timer = *upd.Timer
		changed = append(changed, "timer")
	}
	if upd.Lights != nil {
		st.Lights = append([]models.Light{}, upd.Lights...)
		changed = append(changed, "lights")
	}
	if upd.Heaters != nil {
		st.Heaters = append([]models.Heater{}, upd.Heaters...)
		changed = append(changed, "heaters")
	}
	if upd.Program != nil {
		p := withListsNonNil(upd.Program.Clone())
		st.Program = &p
		changed = append(changed, "program")
	}
	return changed
}

func (s *SaunaService) ListSchedules(_ context.Context, saunaID string) ([]models.Schedule, error) {
	if err := s.checkID(saunaID); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.CloneSchedules(s.sauna.Schedules), nil
}

// AddSchedules appends all schedules or none. Any id already present, or
// repeated within the batch, fails the whole call with ErrScheduleConflict.
func (s *SaunaService) AddSchedules(ctx context.Context, saunaID string, schedules []models.Schedule) ([]models.Schedule, error) {
	if err := s.checkID(saunaID); err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, ErrEmptySchedules
	}
	for _, sc := range schedules {
		if strings.TrimSpace(sc.ID) == "" {
			return nil, ErrInvalidSchedule
		}
	}

	s.mu.Lock()
	seen := make(map[string]struct{}, len(s.sauna.Schedules)+len(schedules))
	for _, sc := range s.sauna.Schedules {
		seen[sc.ID] = struct{}{}
	}
	ids := make([]string, 0, len(schedules))
	for _, sc := range schedules {
		if _, dup := seen[sc.ID]; dup {
			s.mu.Unlock()
			return nil, fmt.Errorf("schedule %q: %w", sc.ID, ErrScheduleConflict)
		}
		seen[sc.ID] = struct{}{}
		ids = append(ids, sc.ID)
	}
	for _, sc := range schedules {
		sc = sc.Clone()
		sc.Program = withListsNonNil(sc.Program)
		if sc.Sauna == "" {
			sc.Sauna = s.sauna.SaunaID
		}
		s.sauna.Schedules = append(s.sauna.Schedules, sc)
	}
	out := models.CloneSchedules(s.sauna.Schedules)
	s.mu.Unlock()

	s.appendEvent(ctx, models.EventSchedulesAdded, fmt.Sprintf("%d schedule(s) added", len(ids)), map[string]any{"schedule_ids": ids})
	return out, nil
}

func (s *SaunaService) DeleteSchedule(ctx context.Context, saunaID, scheduleID string) ([]models.Schedule, error) {
	if err := s.checkID(saunaID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	idx := -1
	for i, sc := range s.sauna.Schedules {
		if sc.ID == scheduleID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("schedule %q: %w", scheduleID, ErrScheduleNotFound)
	}
	s.sauna.Schedules = append(s.sauna.Schedules[:idx], s.sauna.Schedules[idx+1:]...)
	out := models.CloneSchedules(s.sauna.Schedules)
	s.mu.Unlock()

	s.appendEvent(ctx, models.EventScheduleDeleted, "Schedule "+scheduleID+" deleted", map[string]any{"schedule_id": scheduleID})
	return out, nil
}

func (s *SaunaService) ListPrograms(_ context.Context, saunaID string) ([]models.Program, error) {
	if err := s.checkID(saunaID); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Program, 0, len(s.sauna.Programs))
	for _, p := range s.sauna.Programs {
		out = append(out, p.Clone())
	}
	return out, nil
}

// withListsNonNil makes omitted program lists serialise as [] like status lists do.
func withListsNonNil(p models.Program) models.Program {
	if p.Lights == nil {
		p.Lights = []models.Light{}
	}
	if p.Heaters == nil {
		p.Heaters = []models.Heater{}
	}
	return p
}

// appendEvent records a mutation. Failures are logged, never returned.
func (s *SaunaService) appendEvent(ctx context.Context, typ, description string, meta map[string]any) {
	if s.eventRepo == nil {
		return
	}
	err := s.eventRepo.Append(ctx, models.SaunaEvent{
		EventID:     uuid.NewString(),
		SaunaID:     s.sauna.SaunaID,
		OccurredAt:  s.now(),
		Type:        typ,
		Description: description,
		Metadata:    meta,
	})
	if err != nil {
		s.log.Warnw("sauna_event_append_failed", "err", err, "type", typ)
	}
}
