package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oggyb/beem-sms/internal/cache"
	"github.com/oggyb/beem-sms/internal/domain/dispatch"
	"github.com/oggyb/beem-sms/sms"
)

// requestTTL is how long a request id stays resolvable from the cache.
const requestTTL = 24 * time.Hour

// SendInput is a single send request.
type SendInput struct {
	SourceAddr string
	DestAddrs  []string
	Message    string
	Encoding   sms.Encoding
}

// BulkInput is a bulk send request. A zero BatchSize uses the service default.
type BulkInput struct {
	SendInput
	BatchSize int
}

type DispatchService interface {
	Send(ctx context.Context, in SendInput) (sms.SendResult, error)
	SendBulk(ctx context.Context, in BulkInput) ([]sms.SendResult, error)
	History(ctx context.Context, page, limit int) ([]*dispatch.Dispatch, int64, error)
	FindByRequestID(ctx context.Context, requestID string) (*dispatch.Dispatch, error)
	SentOn(ctx context.Context, day time.Time) (int64, error)
}

type dispatchService struct {
	sender sms.Sender
	repo   dispatch.Repository
	cache  cache.Cache
	log    logrus.FieldLogger

	defaultSource    string
	defaultBatchSize int
}

// NewDispatchService creates a dispatch service. defaultSource is used when a
// request has no sender id; defaultBatchSize when a bulk request has none.
// cache may be nil.
func NewDispatchService(
	sender sms.Sender,
	repo dispatch.Repository,
	c cache.Cache,
	defaultSource string,
	defaultBatchSize int,
	log logrus.FieldLogger,
) DispatchService {
	if defaultBatchSize <= 0 {
		defaultBatchSize = sms.DefaultBatchSize
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &dispatchService{
		sender:           sender,
		repo:             repo,
		cache:            c,
		log:              log.WithField("component", "service"),
		defaultSource:    defaultSource,
		defaultBatchSize: defaultBatchSize,
	}
}

func (s *dispatchService) source(in string) string {
	if in == "" {
		return s.defaultSource
	}
	return in
}

// Send dispatches one request through the gateway client and records the
// outcome. Validation failures are not recorded since nothing was sent.
func (s *dispatchService) Send(ctx context.Context, in SendInput) (sms.SendResult, error) {
	source := s.source(in.SourceAddr)

	res, err := s.sender.Send(ctx, source, in.DestAddrs, in.Message, in.Encoding)
	if err != nil {
		if !errors.Is(err, sms.ErrValidation) {
			s.record(ctx, dispatch.Failed(source, len(in.DestAddrs), in.Message, in.Encoding, err))
		}
		return sms.SendResult{}, err
	}

	s.record(ctx, dispatch.New(source, len(in.DestAddrs), in.Message, in.Encoding, res))
	return res, nil
}

// SendBulk dispatches in batches and records one dispatch per batch, all
// sharing a bulk id.
func (s *dispatchService) SendBulk(ctx context.Context, in BulkInput) ([]sms.SendResult, error) {
	source := s.source(in.SourceAddr)
	batchSize := in.BatchSize
	if batchSize == 0 {
		batchSize = s.defaultBatchSize
	}

	results, err := s.sender.SendBulk(ctx, source, in.DestAddrs, in.Message, in.Encoding, batchSize)
	if err != nil {
		return nil, err
	}

	bulkID := uuid.New()
	for i, res := range results {
		n := min(batchSize, len(in.DestAddrs)-i*batchSize)
		s.record(ctx, dispatch.New(source, n, in.Message, in.Encoding, res).InBulk(bulkID, i+1))
	}

	s.log.WithFields(logrus.Fields{
		"bulk_id": bulkID.String(),
		"batches": len(results),
	}).Info("Bulk dispatch recorded")

	return results, nil
}

// record persists d and, for successful dispatches, caches its request id
// and bumps the daily counter. Failures here are logged and never surface
// to the caller: the SMS has already been handed to the gateway.
func (s *dispatchService) record(ctx context.Context, d *dispatch.Dispatch) {
	entry := s.log.WithField("dispatch_id", d.ID.String())

	if err := s.repo.Save(ctx, d); err != nil {
		entry.WithError(err).Error("Failed to persist dispatch")
		return
	}

	if s.cache == nil || !d.Success {
		return
	}

	if d.RequestID != "" {
		key := cache.SentRequests.Key(d.RequestID)
		if err := s.cache.Set(ctx, key, d.ID.String(), requestTTL); err != nil {
			entry.WithError(err).Warn("Failed to cache request id")
		}
	}

	if _, err := s.cache.Incr(ctx, cache.SentCount.Key(day(d.CreatedAt))); err != nil {
		entry.WithError(err).Warn("Failed to bump daily sent counter")
	}
}

func (s *dispatchService) History(ctx context.Context, page, limit int) ([]*dispatch.Dispatch, int64, error) {
	return s.repo.List(ctx, page, limit)
}

// FindByRequestID resolves a gateway request id, trying the cache before the repository.
func (s *dispatchService) FindByRequestID(ctx context.Context, requestID string) (*dispatch.Dispatch, error) {
	if s.cache != nil {
		v, err := s.cache.Get(ctx, cache.SentRequests.Key(requestID))
		switch {
		case err == nil:
			if id, perr := uuid.Parse(v); perr == nil {
				if d, ferr := s.repo.FindByID(ctx, id); ferr == nil {
					return d, nil
				}
			}
		case !errors.Is(err, cache.ErrNotFound):
			s.log.WithError(err).Warn("Request id cache lookup failed")
		}
	}

	d, err := s.repo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("find dispatch by request id %q: %w", requestID, err)
	}
	return d, nil
}

// SentOn returns the number of successful dispatches recorded on day.
func (s *dispatchService) SentOn(ctx context.Context, d time.Time) (int64, error) {
	if s.cache == nil {
		return 0, nil
	}

	v, err := s.cache.Get(ctx, cache.SentCount.Key(day(d)))
	if errors.Is(err, cache.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read sent counter: %w", err)
	}
	return strconv.ParseInt(v, 10, 64)
}

func day(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
