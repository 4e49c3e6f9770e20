package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/metrics"
	"github.com/Joshmi-K-Joy/ecommerce-database-system/internal/models"
	repository "github.com/Joshmi-K-Joy/ecommerce-database-system/internal/repositories"
	"github.com/google/uuid"
)

const (
	activityBufferSize   = 1024
	activityBatchSize    = 100
	activityFlushEvery   = 5 * time.Second
	activityFlushTimeout = 10 * time.Second
)

// ActivityService collects behavioral events for the analytics reports.
// Recording never blocks the caller and never fails a request: when the
// buffer is full the event is dropped and counted.
type ActivityService interface {
	RecordView(ctx context.Context, productID uuid.UUID, userID *uuid.UUID)
	RecordSearch(ctx context.Context, query string, userID *uuid.UUID, resultsCount int)
	Close(ctx context.Context) error
}

type activityEvent struct {
	view   *models.ProductView
	search *models.ProductSearchLog
}

type activityService struct {
	repo   repository.ActivityRepository
	logger *slog.Logger

	// events is never closed; Record* may race Close, and a send on a
	// closed channel panics even behind a select. Shutdown is signalled
	// through quit and the closed flag instead.
	events    chan activityEvent
	quit      chan struct{}
	done      chan struct{}
	closed    atomic.Bool
	closeOnce sync.Once
}

func NewActivityService(repo repository.ActivityRepository, logger *slog.Logger) ActivityService {

	s := &activityService{
		repo:   repo,
		logger: logger,
		events: make(chan activityEvent, activityBufferSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	go s.run()

	return s
}

func (s *activityService) RecordView(ctx context.Context, productID uuid.UUID, userID *uuid.UUID) {

	if s.closed.Load() {
		metrics.CountDroppedActivityEvent("view")
		s.logger.Warn("Dropping product view event, writer closed", slog.String("productID", productID.String()))

		return
	}

	event := activityEvent{view: &models.ProductView{
		ProductID: productID,
		UserID:    userID,
		ViewedAt:  time.Now().UTC(),
	}}

	select {
	case s.events <- event:
	default:
		metrics.CountDroppedActivityEvent("view")
		s.logger.Warn("Dropping product view event, buffer full", slog.String("productID", productID.String()))
	}
}

func (s *activityService) RecordSearch(ctx context.Context, query string, userID *uuid.UUID, resultsCount int) {

	if s.closed.Load() {
		metrics.CountDroppedActivityEvent("search")
		s.logger.Warn("Dropping search log event, writer closed", slog.String("query", query))

		return
	}

	event := activityEvent{search: &models.ProductSearchLog{
		Query:        query,
		UserID:       userID,
		ResultsCount: resultsCount,
		SearchedAt:   time.Now().UTC(),
	}}

	select {
	case s.events <- event:
	default:
		metrics.CountDroppedActivityEvent("search")
		s.logger.Warn("Dropping search log event, buffer full", slog.String("query", query))
	}
}

// Close drains the buffer and flushes what is left. Events recorded after
// Close begins are dropped and counted.
func (s *activityService) Close(ctx context.Context) error {

	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.quit)
	})

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the single writer goroutine. It batches events and flushes either
// when a batch fills up or on the ticker, whichever comes first.
func (s *activityService) run() {

	defer close(s.done)

	ticker := time.NewTicker(activityFlushEvery)
	defer ticker.Stop()

	var views []models.ProductView

	var searches []models.ProductSearchLog

	flush := func() {
		if len(views) == 0 && len(searches) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), activityFlushTimeout)
		defer cancel()

		if len(views) > 0 {
			if err := s.repo.InsertProductViews(ctx, views); err != nil {
				s.logger.Error("Failed to flush product views", slog.Int("count", len(views)), slog.Any("error", err))
			}

			views = views[:0]
		}

		if len(searches) > 0 {
			if err := s.repo.InsertSearchLogs(ctx, searches); err != nil {
				s.logger.Error("Failed to flush search logs", slog.Int("count", len(searches)), slog.Any("error", err))
			}

			searches = searches[:0]
		}
	}

	collect := func(event activityEvent) {
		if event.view != nil {
			views = append(views, *event.view)
		}

		if event.search != nil {
			searches = append(searches, *event.search)
		}
	}

	for {
		select {
		case event := <-s.events:
			collect(event)

			if len(views)+len(searches) >= activityBatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-s.quit:
			// Drain what producers managed to buffer before the closed
			// flag stopped them, then do the final flush.
			for {
				select {
				case event := <-s.events:
					collect(event)
				default:
					flush()

					return
				}
			}
		}
	}
}
