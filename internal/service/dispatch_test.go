package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/beem-sms/internal/cache"
	"github.com/oggyb/beem-sms/internal/domain/dispatch"
	"github.com/oggyb/beem-sms/sms"
)

// fakeSender is a test double for sms.Sender that records its inputs and
// replies with canned results.
type fakeSender struct {
	result  sms.SendResult
	err     error
	bulk    []sms.SendResult
	bulkErr error

	lastSource    string
	lastBatchSize int
}

func (f *fakeSender) Send(_ context.Context, source string, _ []string, _ string, _ sms.Encoding) (sms.SendResult, error) {
	f.lastSource = source
	return f.result, f.err
}

func (f *fakeSender) SendBulk(_ context.Context, source string, _ []string, _ string, _ sms.Encoding, batchSize int) ([]sms.SendResult, error) {
	f.lastSource = source
	f.lastBatchSize = batchSize
	return f.bulk, f.bulkErr
}

type fakeRepo struct {
	mu      sync.Mutex
	saved   []*dispatch.Dispatch
	saveErr error
}

func (r *fakeRepo) Save(_ context.Context, d *dispatch.Dispatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, d)
	return nil
}

func (r *fakeRepo) List(_ context.Context, page, limit int) ([]*dispatch.Dispatch, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved, int64(len(r.saved)), nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*dispatch.Dispatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.saved {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, dispatch.ErrNotFound
}

func (r *fakeRepo) FindByRequestID(_ context.Context, requestID string) (*dispatch.Dispatch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.saved {
		if d.RequestID == requestID {
			return d, nil
		}
	}
	return nil, dispatch.ErrNotFound
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (c *fakeCache) Ping(context.Context) error { return nil }

func (c *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return "", cache.ErrNotFound
	}
	return v, nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := strconv.ParseInt(c.data[key], 10, 64)
	n++
	c.data[key] = strconv.FormatInt(n, 10)
	return n, nil
}

func newTestService(sender sms.Sender, repo dispatch.Repository, c cache.Cache) DispatchService {
	logger, _ := test.NewNullLogger()
	return NewDispatchService(sender, repo, c, "DEFAULT", 2, logger)
}

func TestSend_RecordsSuccessAndCachesRequestID(t *testing.T) {
	sender := &fakeSender{result: sms.SendResult{Success: true, StatusCode: 200, Message: "SMS sent successfully", RequestID: "abc123"}}
	repo := &fakeRepo{}
	c := newFakeCache()
	svc := newTestService(sender, repo, c)

	res, err := svc.Send(context.Background(), SendInput{
		DestAddrs: []string{"0712345678", "0612345678"},
		Message:   "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "abc123", res.RequestID)
	assert.Equal(t, "DEFAULT", sender.lastSource)

	require.Len(t, repo.saved, 1)
	d := repo.saved[0]
	assert.Equal(t, 2, d.Recipients)
	assert.Equal(t, 5, d.MessageLength)
	assert.True(t, d.Success)

	assert.Equal(t, d.ID.String(), c.data[cache.SentRequests.Key("abc123")])

	n, err := svc.SentOn(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestSend_ValidationErrorIsNotRecorded(t *testing.T) {
	sender := &fakeSender{err: &sms.Error{Kind: sms.ErrValidation, Message: "Message cannot be empty"}}
	repo := &fakeRepo{}
	svc := newTestService(sender, repo, newFakeCache())

	_, err := svc.Send(context.Background(), SendInput{SourceAddr: "INFO", DestAddrs: []string{"0712345678"}})

	assert.ErrorIs(t, err, sms.ErrValidation)
	assert.Equal(t, "INFO", sender.lastSource)
	assert.Empty(t, repo.saved)
}

func TestSend_GatewayErrorIsRecordedAsFailure(t *testing.T) {
	sender := &fakeSender{err: &sms.Error{Kind: sms.ErrAuthentication, Message: "Authentication failed"}}
	repo := &fakeRepo{}
	c := newFakeCache()
	svc := newTestService(sender, repo, c)

	_, err := svc.Send(context.Background(), SendInput{DestAddrs: []string{"0712345678"}, Message: "hi"})

	assert.ErrorIs(t, err, sms.ErrAuthentication)
	require.Len(t, repo.saved, 1)
	assert.False(t, repo.saved[0].Success)
	assert.Equal(t, "authentication error: Authentication failed", repo.saved[0].ResultMessage)
	assert.Empty(t, c.data)
}

func TestSend_PersistenceFailureDoesNotFailSend(t *testing.T) {
	sender := &fakeSender{result: sms.SendResult{Success: true, StatusCode: 200, RequestID: "x"}}
	repo := &fakeRepo{saveErr: errors.New("db down")}
	c := newFakeCache()
	svc := newTestService(sender, repo, c)

	res, err := svc.Send(context.Background(), SendInput{DestAddrs: []string{"0712345678"}, Message: "hi"})

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Empty(t, c.data, "nothing cached when the record was not saved")
}

func TestSendBulk_RecordsOneDispatchPerBatch(t *testing.T) {
	sender := &fakeSender{bulk: []sms.SendResult{
		{Success: true, StatusCode: 200, RequestID: "r1"},
		{Success: false, StatusCode: 0, Message: "Batch 2 failed: boom"},
		{Success: true, StatusCode: 200, RequestID: "r3"},
	}}
	repo := &fakeRepo{}
	svc := newTestService(sender, repo, newFakeCache())

	results, err := svc.SendBulk(context.Background(), BulkInput{
		SendInput: SendInput{DestAddrs: []string{"1", "2", "3", "4", "5"}, Message: "hi"},
	})
	require.NoError(t, err)

	assert.Len(t, results, 3)
	assert.Equal(t, 2, sender.lastBatchSize, "zero batch size uses the default")

	require.Len(t, repo.saved, 3)
	for i, want := range []int{2, 2, 1} {
		d := repo.saved[i]
		assert.Equal(t, want, d.Recipients)
		assert.Equal(t, i+1, d.Batch)
		require.NotNil(t, d.BulkID)
		assert.Equal(t, *repo.saved[0].BulkID, *d.BulkID)
	}
	assert.False(t, repo.saved[1].Success)
}

func TestSendBulk_PropagatesBatchSizeError(t *testing.T) {
	sender := &fakeSender{bulkErr: &sms.Error{Kind: sms.ErrValidation, Message: "Batch size must be positive"}}
	repo := &fakeRepo{}
	svc := newTestService(sender, repo, nil)

	_, err := svc.SendBulk(context.Background(), BulkInput{BatchSize: -1})

	assert.ErrorIs(t, err, sms.ErrValidation)
	assert.Equal(t, -1, sender.lastBatchSize)
	assert.Empty(t, repo.saved)
}

func TestFindByRequestID(t *testing.T) {
	repo := &fakeRepo{}
	c := newFakeCache()
	svc := newTestService(&fakeSender{}, repo, c)

	cached := dispatch.New("INFO", 1, "hi", sms.PlainText, sms.SendResult{Success: true, StatusCode: 200, RequestID: "cached"})
	uncached := dispatch.New("INFO", 1, "hi", sms.PlainText, sms.SendResult{Success: true, StatusCode: 200, RequestID: "db-only"})
	require.NoError(t, repo.Save(context.Background(), cached))
	require.NoError(t, repo.Save(context.Background(), uncached))
	c.data[cache.SentRequests.Key("cached")] = cached.ID.String()

	got, err := svc.FindByRequestID(context.Background(), "cached")
	require.NoError(t, err)
	assert.Equal(t, cached.ID, got.ID)

	got, err = svc.FindByRequestID(context.Background(), "db-only")
	require.NoError(t, err)
	assert.Equal(t, uncached.ID, got.ID)

	_, err = svc.FindByRequestID(context.Background(), "missing")
	assert.ErrorIs(t, err, dispatch.ErrNotFound)
}

func TestSentOn_WithoutCache(t *testing.T) {
	svc := newTestService(&fakeSender{}, &fakeRepo{}, nil)

	n, err := svc.SentOn(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}
