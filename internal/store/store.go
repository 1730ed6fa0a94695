// Package store holds every query the API runs against the database.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/suteetoe/jobboard/internal/apperror"
	"github.com/suteetoe/jobboard/prometheus"
	"gorm.io/gorm"
)

// Store is the gorm-backed data access layer shared by all services
type Store struct {
	db      *gorm.DB
	metrics *prometheus.Metrics
}

// New creates a store over db. metrics may be nil.
func New(db *gorm.DB, metrics *prometheus.Metrics) *Store {
	return &Store{db: db, metrics: metrics}
}

// DB exposes the underlying handle for health checks and seeding
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *Store) track(operation string) func() {
	if s.metrics == nil {
		return func() {}
	}
	start := time.Now()
	observe := s.metrics.TrackDBOperation(operation)
	return func() { observe(start) }
}

// notFound maps gorm's missing-row error to a NotFound error carrying message
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.Wrap(apperror.NotFound, message, err)
	}
	return err
}

// conflict maps a unique index violation to a Conflict error carrying message
func conflict(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Wrap(apperror.Conflict, message, err)
	}
	return err
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
