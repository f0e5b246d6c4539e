package core

import (
	"context"
	"sync"

	"github.com/inovacc/clientdir/internal/model"
)

// fakeResource records calls and returns canned results.
type fakeResource struct {
	mu sync.Mutex

	clients   []model.Client
	listErr   error
	createID  int
	createErr error
	updateErr error
	deleteErr map[int]error

	calls []string
}

func (f *fakeResource) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, call)
}

func (f *fakeResource) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.calls...)
}

func (f *fakeResource) List(_ context.Context) ([]model.Client, error) {
	f.record("list")

	if f.listErr != nil {
		return nil, f.listErr
	}

	return append([]model.Client(nil), f.clients...), nil
}

func (f *fakeResource) Create(_ context.Context, payload model.Payload) (*model.Client, error) {
	f.record("create")

	if f.createErr != nil {
		return nil, f.createErr
	}

	c := payload.Client(f.createID)

	return &c, nil
}

func (f *fakeResource) Update(_ context.Context, id int, payload model.Payload) (*model.Client, error) {
	f.record("update")

	if f.updateErr != nil {
		return nil, f.updateErr
	}

	c := payload.Client(id)

	return &c, nil
}

func (f *fakeResource) Delete(_ context.Context, id int) error {
	f.record("delete")

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.deleteErr[id]
}
