package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/helloworld/api-backend/internal/models"
	"github.com/helloworld/api-backend/internal/repositories"
)

var errStorageDown = errors.New("storage unavailable")

type fakeGreetingStore struct {
	greeting *models.Greeting
	err      error
}

func (f *fakeGreetingStore) Get(ctx context.Context) (*models.Greeting, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.greeting == nil {
		return nil, fmt.Errorf("greeting %w", repositories.ErrNotFound)
	}
	return f.greeting, nil
}

func (f *fakeGreetingStore) Upsert(ctx context.Context, message string) (*models.Greeting, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.greeting = &models.Greeting{ID: models.GreetingSingletonID, Message: message}
	return f.greeting, nil
}

func (f *fakeGreetingStore) DeleteAll(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.greeting == nil {
		return 0, nil
	}
	f.greeting = nil
	return 1, nil
}

type fakeErrorStore struct {
	records map[uint]*models.ErrorRecord
	nextID  uint
	err     error
}

func newFakeErrorStore() *fakeErrorStore {
	return &fakeErrorStore{records: map[uint]*models.ErrorRecord{}, nextID: 1}
}

func (f *fakeErrorStore) Create(ctx context.Context, code int, message string) (*models.ErrorRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	r := &models.ErrorRecord{ID: f.nextID, Code: code, ErrorMessage: message}
	f.records[r.ID] = r
	f.nextID++
	return r, nil
}

func (f *fakeErrorStore) FindByID(ctx context.Context, id uint) (*models.ErrorRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.records[id]
	if !ok {
		return nil, fmt.Errorf("error record %d %w", id, repositories.ErrNotFound)
	}
	return r, nil
}

func (f *fakeErrorStore) First(ctx context.Context) (*models.ErrorRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	all, _ := f.ListAll(ctx)
	if len(all) == 0 {
		return nil, fmt.Errorf("error log is empty: %w", repositories.ErrNotFound)
	}
	return all[0], nil
}

func (f *fakeErrorStore) ListAll(ctx context.Context) ([]*models.ErrorRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.ErrorRecord, 0, len(f.records))
	for _, r := range f.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeErrorStore) Update(ctx context.Context, id uint, code int, message string) (*models.ErrorRecord, error) {
	r, err := f.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Code = code
	r.ErrorMessage = message
	return r, nil
}

func (f *fakeErrorStore) Delete(ctx context.Context, id uint) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if _, ok := f.records[id]; !ok {
		return 0, nil
	}
	delete(f.records, id)
	return 1, nil
}

type fakeHealthStore struct {
	status  *models.HealthStatus
	err     error
	deleted []uint
}

func (f *fakeHealthStore) Get(ctx context.Context) (*models.HealthStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.status == nil {
		return nil, fmt.Errorf("health status %w", repositories.ErrNotFound)
	}
	return f.status, nil
}

func (f *fakeHealthStore) Upsert(ctx context.Context, statusMessage string) (*models.HealthStatus, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.status = &models.HealthStatus{ID: models.HealthStatusSingletonID, StatusMessage: statusMessage}
	return f.status, nil
}

func (f *fakeHealthStore) Delete(ctx context.Context, id uint) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.deleted = append(f.deleted, id)
	if f.status == nil || f.status.ID != id {
		return 0, nil
	}
	f.status = nil
	return 1, nil
}

type fakeDocumentationStore struct {
	doc *models.Documentation
	err error
}

func (f *fakeDocumentationStore) First(ctx context.Context) (*models.Documentation, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.doc == nil {
		return nil, fmt.Errorf("documentation entry %w", repositories.ErrNotFound)
	}
	return f.doc, nil
}
