package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go-appointment-board/internal/converter"
	"go-appointment-board/internal/domain/repository"
	"go-appointment-board/internal/tableview"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ScheduleCacheKey is the stable cache key for the appointment dataset.
const ScheduleCacheKey = "schedule"

type LoadStatus string

const (
	LoadStatusIdle    LoadStatus = "idle"
	LoadStatusLoading LoadStatus = "loading"
	LoadStatusReady   LoadStatus = "ready"
	LoadStatusFailed  LoadStatus = "failed"
)

// RowSource fetches the dataset from the source of truth.
type RowSource interface {
	Fetch(ctx context.Context) ([]tableview.Row, error)
}

// RepositoryRowSource reads appointments through the gorm repository.
type RepositoryRowSource struct {
	db              *gorm.DB
	appointmentRepo repository.AppointmentRepository
}

func NewRepositoryRowSource(db *gorm.DB, appointmentRepo repository.AppointmentRepository) *RepositoryRowSource {
	return &RepositoryRowSource{
		db:              db,
		appointmentRepo: appointmentRepo,
	}
}

func (s *RepositoryRowSource) Fetch(ctx context.Context) ([]tableview.Row, error) {
	appointments, err := s.appointmentRepo.FindAll(s.db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return converter.AppointmentsToRows(appointments), nil
}

type cacheEntry struct {
	status LoadStatus
	rows   []tableview.Row
	err    error
}

// ScheduleLoader is the data-loading collaborator: a scoped, explicitly
// owned query cache (key -> {status, rows, err}) with an indefinite
// freshness policy. Overlapping loads for the same key collapse into a
// single in-flight fetch. A Redis JSON snapshot sits between memory and
// the database; a nil client disables it. A failed load is recorded but
// retried on the next request.
type ScheduleLoader struct {
	log         *logrus.Logger
	source      RowSource
	redisClient *redis.Client

	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

func NewScheduleLoader(log *logrus.Logger, source RowSource, redisClient *redis.Client) *ScheduleLoader {
	return &ScheduleLoader{
		log:         log,
		source:      source,
		redisClient: redisClient,
		entries:     make(map[string]*cacheEntry),
	}
}

// Load returns the cached dataset for key, fetching it once if absent.
func (l *ScheduleLoader) Load(ctx context.Context, key string) ([]tableview.Row, error) {
	l.mu.RLock()
	entry, ok := l.entries[key]
	l.mu.RUnlock()
	if ok && entry.status == LoadStatusReady {
		return entry.rows, nil
	}

	result, err, _ := l.group.Do(key, func() (interface{}, error) {
		l.setEntry(key, &cacheEntry{status: LoadStatusLoading})

		rows, err := l.fetch(ctx, key)
		if err != nil {
			l.log.Warnf("Failed to load dataset %s: %+v", key, err)
			l.setEntry(key, &cacheEntry{status: LoadStatusFailed, err: err})
			return nil, err
		}

		l.setEntry(key, &cacheEntry{status: LoadStatusReady, rows: rows})
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]tableview.Row), nil
}

// Status reports the cache entry state for key.
func (l *ScheduleLoader) Status(key string) LoadStatus {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if entry, ok := l.entries[key]; ok {
		return entry.status
	}
	return LoadStatusIdle
}

// Invalidate drops the memory and Redis entries for key so the next load
// hits the source of truth. The loader never refetches on its own.
func (l *ScheduleLoader) Invalidate(ctx context.Context, key string) {
	l.mu.Lock()
	delete(l.entries, key)
	l.mu.Unlock()

	if l.redisClient != nil {
		if err := l.redisClient.Del(ctx, snapshotKey(key)).Err(); err != nil {
			l.log.Warnf("Failed to drop snapshot %s: %+v", key, err)
		}
	}
}

func (l *ScheduleLoader) fetch(ctx context.Context, key string) ([]tableview.Row, error) {
	if rows, ok := l.snapshotGet(ctx, key); ok {
		return rows, nil
	}

	rows, err := l.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	l.snapshotSet(ctx, key, rows)
	return rows, nil
}

func (l *ScheduleLoader) snapshotGet(ctx context.Context, key string) ([]tableview.Row, bool) {
	if l.redisClient == nil {
		return nil, false
	}

	payload, err := l.redisClient.Get(ctx, snapshotKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			l.log.Warnf("Failed to read snapshot %s: %+v", key, err)
		}
		return nil, false
	}

	var rows []tableview.Row
	if err := json.Unmarshal(payload, &rows); err != nil {
		l.log.Warnf("Failed to decode snapshot %s: %+v", key, err)
		return nil, false
	}
	return rows, true
}

func (l *ScheduleLoader) snapshotSet(ctx context.Context, key string, rows []tableview.Row) {
	if l.redisClient == nil {
		return
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		l.log.Warnf("Failed to encode snapshot %s: %+v", key, err)
		return
	}
	// Indefinite freshness: the snapshot only leaves Redis on Invalidate.
	if err := l.redisClient.Set(ctx, snapshotKey(key), payload, 0).Err(); err != nil {
		l.log.Warnf("Failed to store snapshot %s: %+v", key, err)
	}
}

func (l *ScheduleLoader) setEntry(key string, entry *cacheEntry) {
	l.mu.Lock()
	l.entries[key] = entry
	l.mu.Unlock()
}

func snapshotKey(key string) string {
	return fmt.Sprintf("schedule_snapshot:%s", key)
}
