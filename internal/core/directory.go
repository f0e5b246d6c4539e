package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inovacc/clientdir/internal/model"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentDeletes bounds DeleteMany.
const maxConcurrentDeletes = 4

// Resource is the remote client collection.
type Resource interface {
	Lister
	Create(ctx context.Context, payload model.Payload) (*model.Client, error)
	Update(ctx context.Context, id int, payload model.Payload) (*model.Client, error)
	Delete(ctx context.Context, id int) error
}

// Confirmer asks the user whether c should really be deleted.
type Confirmer func(c model.Client) bool

// DirectoryOptions configures a Directory
type DirectoryOptions struct {
	Logger *slog.Logger

	// RemotePersistsCreates tags created records as remote so later edits
	// and deletes go to the collection.
	RemotePersistsCreates bool
}

// Directory ties the local store to the remote collection: every write goes
// to the remote first and is applied to the store only when it succeeds.
type Directory struct {
	store          *ClientStore
	resource       Resource
	logger         *slog.Logger
	persistCreates bool
}

// NewDirectory creates a Directory with an empty store.
func NewDirectory(resource Resource, opts DirectoryOptions) *Directory {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Directory{
		store:          NewClientStore(),
		resource:       resource,
		logger:         logger,
		persistCreates: opts.RemotePersistsCreates,
	}
}

// Store returns the store the presentation layer renders.
func (d *Directory) Store() *ClientStore {
	return d.store
}

// Load fetches the collection into the store.
func (d *Directory) Load(ctx context.Context) error {
	d.logger.Debug("loading clients")

	if err := d.store.Load(ctx, d.resource); err != nil {
		d.logger.Error("failed to load clients", slog.String("error", err.Error()))
		return fmt.Errorf("failed to load clients: %w", err)
	}

	d.logger.Info("loaded clients", slog.Int("count", d.store.Len()))

	return nil
}

// Search returns the stored clients matching query.
func (d *Directory) Search(query string) []model.Client {
	return Filter(d.store.Clients(), query)
}

// Get returns the stored client with the given id.
func (d *Directory) Get(id int) (model.Client, error) {
	c, ok := d.store.Get(id)
	if !ok {
		return model.Client{}, &NotFoundError{ID: id}
	}

	return c, nil
}

// Create validates the draft, creates it remotely and prepends the result.
func (d *Directory) Create(ctx context.Context, draft model.Draft) (*model.Client, error) {
	if errs := Validate(draft); !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}

	created, err := d.resource.Create(ctx, draft.Payload())
	if err != nil {
		d.logger.Error("failed to add client", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to add client: %w", err)
	}

	c := *created
	c.Origin = model.OriginLocal

	if d.persistCreates {
		c.Origin = model.OriginRemote
	}

	// Demo collections echo the same id for every create; keep ids unique.
	remoteID := c.ID

	c, reassigned := d.store.InsertUnique(c)
	if reassigned {
		d.logger.Warn("remote id unusable, assigned a local one",
			slog.Int("remote_id", remoteID),
			slog.Int("local_id", c.ID),
		)
	}

	d.logger.Info("added client", slog.Int("id", c.ID), slog.String("origin", c.Origin.String()))

	return &c, nil
}

// Update validates the draft and applies it to the client with the given id.
// Local-only clients are updated without a network call.
func (d *Directory) Update(ctx context.Context, id int, draft model.Draft) (*model.Client, error) {
	if errs := Validate(draft); !errs.Empty() {
		return nil, &ValidationError{Fields: errs}
	}

	existing, err := d.Get(id)
	if err != nil {
		return nil, err
	}

	payload := draft.Payload()

	if !existing.IsLocal() {
		if _, err := d.resource.Update(ctx, id, payload); err != nil {
			d.logger.Error("failed to update client", slog.Int("id", id), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to update client: %w", err)
		}
	}

	updated := payload.Apply(existing)
	d.store.Replace(updated)
	d.logger.Info("updated client", slog.Int("id", id), slog.String("origin", existing.Origin.String()))

	return &updated, nil
}

// Delete removes the client remotely and then from the store. The row is
// flagged pending while the request is in flight; on failure the flag is
// cleared and the record stays. Local-only clients are removed without a
// network call.
func (d *Directory) Delete(ctx context.Context, id int) error {
	existing, err := d.Get(id)
	if err != nil {
		return err
	}

	if !existing.IsLocal() {
		d.store.SetPending(id, true)

		if err := d.resource.Delete(ctx, id); err != nil {
			d.store.SetPending(id, false)
			d.logger.Error("failed to delete client", slog.Int("id", id), slog.String("error", err.Error()))

			return fmt.Errorf("failed to delete client %d: %w", id, err)
		}
	}

	d.store.Remove(id)
	d.logger.Info("deleted client", slog.Int("id", id))

	return nil
}

// ConfirmDelete asks confirm before deleting. It reports whether the delete
// was confirmed.
func (d *Directory) ConfirmDelete(ctx context.Context, id int, confirm Confirmer) (bool, error) {
	c, err := d.Get(id)
	if err != nil {
		return false, err
	}

	if !confirm(c) {
		d.logger.Debug("delete cancelled", slog.Int("id", id))
		return false, nil
	}

	return true, d.Delete(ctx, id)
}

// DeleteMany deletes every id concurrently. Repeated ids are deleted once.
// Each delete succeeds or fails on its own; the returned error joins all
// failures.
func (d *Directory) DeleteMany(ctx context.Context, ids []int) error {
	ids = UniqueIDs(ids)
	errs := make([]error, len(ids))

	var g errgroup.Group

	g.SetLimit(maxConcurrentDeletes)

	for i, id := range ids {
		g.Go(func() error {
			errs[i] = d.Delete(ctx, id)
			return nil
		})
	}

	_ = g.Wait()

	return errors.Join(errs...)
}

// UniqueIDs returns ids without repeats, keeping first-seen order.
func UniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
