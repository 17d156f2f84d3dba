// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-inventory-hub/internal/adapter"
	"github.com/MKhiriev/go-inventory-hub/internal/config"
	"github.com/MKhiriev/go-inventory-hub/internal/logger"
	"github.com/MKhiriev/go-inventory-hub/internal/store"
	"github.com/MKhiriev/go-inventory-hub/models"
)

const notificationsBuffer = 16

// ClientSettingsReconciler batches inventory settings edits into
// compare-and-swap writes.
//
// Edits land in a buffer. When no edit arrives for the debounce interval
// the buffer is folded into the pending patch, which is persisted as a
// draft. A ticker flushes the pending patch with the last confirmed
// version. After a version conflict the reconciler is stale: edits are
// kept, flushes stop, and only Reload clears the state.
type ClientSettingsReconciler struct {
	server adapter.ServerAdapter
	drafts store.DraftRepository

	debounce      time.Duration
	flushInterval time.Duration
	flushTimeout  time.Duration

	notifications chan Notification

	// flushing is held for the whole server write. Ticks take it with
	// TryLock and skip when a write is in flight.
	flushing sync.Mutex
	// draftMu orders draft writes so the stored draft follows the latest state.
	draftMu sync.Mutex

	mu          sync.Mutex
	started     bool
	inventoryID int64
	confirmed   models.Inventory
	buffer      models.InventoryPatch
	pending     models.InventoryPatch
	dirty       bool
	// generation changes whenever pending changes.
	generation    uint64
	stale         bool
	debounceTimer *time.Timer

	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSettingsReconciler creates an idle reconciler. Start loads the
// inventory and begins flushing.
func NewClientSettingsReconciler(server adapter.ServerAdapter, drafts store.DraftRepository, cfg config.ClientWorkers, logger *logger.Logger) *ClientSettingsReconciler {
	if cfg.DebounceInterval <= 0 {
		cfg.DebounceInterval = config.DefaultDebounceInterval
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = config.DefaultFlushInterval
	}
	if cfg.FlushTimeout <= 0 {
		cfg.FlushTimeout = config.DefaultFlushTimeout
	}

	return &ClientSettingsReconciler{
		server:        server,
		drafts:        drafts,
		debounce:      cfg.DebounceInterval,
		flushInterval: cfg.FlushInterval,
		flushTimeout:  cfg.FlushTimeout,
		notifications: make(chan Notification, notificationsBuffer),
		logger:        logger,
	}
}

// Start implements SettingsReconciler. A restored draft whose base version
// differs from the server version marks the reconciler stale right away.
func (r *ClientSettingsReconciler) Start(ctx context.Context, inventoryID int64) error {
	r.Stop()

	inv, err := r.server.GetInventory(ctx, inventoryID)
	if err != nil {
		return mapAdapterError(err)
	}

	draft, err := r.drafts.LoadDraft(ctx, inventoryID)
	hasDraft := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	r.inventoryID = inventoryID
	r.confirmed = inv
	r.buffer = models.InventoryPatch{}
	r.pending = models.InventoryPatch{}
	r.dirty = false
	r.stale = false
	r.generation++
	if hasDraft && !draft.Patch.IsEmpty() {
		r.pending = draft.Patch
		r.dirty = true
		if draft.BaseVersion != inv.Version {
			r.stale = true
			r.notify(Notification{Kind: NotificationConflict, InventoryID: inventoryID, Version: inv.Version, Err: store.ErrVersionConflict})
		}
	}
	r.started = true
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	r.logger.Info().Str("func", "ClientSettingsReconciler.Start").
		Int64("inventory_id", inventoryID).
		Int64("version", inv.Version).
		Bool("draft_restored", hasDraft).
		Msg("reconciler started")

	go r.loop(runCtx)
	return nil
}

func (r *ClientSettingsReconciler) loop(ctx context.Context) {
	defer r.wg.Done()
	t := time.NewTicker(r.flushInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_ = r.flush(ctx)
		}
	}
}

// Edit implements SettingsReconciler.
func (r *ClientSettingsReconciler) Edit(patch models.InventoryPatch) {
	if patch.IsEmpty() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.buffer = r.buffer.Merge(patch)
	if r.debounceTimer != nil {
		r.debounceTimer.Stop()
	}
	r.debounceTimer = time.AfterFunc(r.debounce, r.promote)
}

// promote folds the debounced buffer into the pending patch.
func (r *ClientSettingsReconciler) promote() {
	r.mu.Lock()
	if r.buffer.IsEmpty() {
		r.mu.Unlock()
		return
	}
	r.pending = r.pending.Merge(r.buffer)
	r.buffer = models.InventoryPatch{}
	r.dirty = true
	r.generation++
	started := r.started
	r.mu.Unlock()

	if started {
		r.persistDraft()
	}
}

// flush sends the pending patch unless a write is already in flight.
func (r *ClientSettingsReconciler) flush(ctx context.Context) error {
	if !r.flushing.TryLock() {
		return nil
	}
	defer r.flushing.Unlock()

	r.mu.Lock()
	if !r.started || !r.dirty || r.stale {
		r.mu.Unlock()
		return nil
	}
	id := r.inventoryID
	version := r.confirmed.Version
	payload := r.pending
	generation := r.generation
	r.mu.Unlock()

	flushCtx, cancel := context.WithTimeout(ctx, r.flushTimeout)
	defer cancel()

	inv, err := r.server.UpdateInventory(flushCtx, id, version, payload)
	if err != nil {
		return r.writeFailed("ClientSettingsReconciler.flush", id, version, err)
	}

	r.mu.Lock()
	r.confirmed = inv
	// edits debounced during the flight stay pending for the next tick
	if r.generation == generation {
		r.pending = models.InventoryPatch{}
		r.dirty = false
	}
	r.mu.Unlock()

	r.persistDraft()
	r.notify(Notification{Kind: NotificationSaved, InventoryID: id, Version: inv.Version})

	r.logger.Debug().Str("func", "ClientSettingsReconciler.flush").
		Int64("inventory_id", id).
		Int64("version", inv.Version).
		Msg("pending edits confirmed")
	return nil
}

// writeFailed records a failed server write. A conflict makes the
// reconciler stale; anything else is retried on the next tick.
func (r *ClientSettingsReconciler) writeFailed(fn string, id, version int64, err error) error {
	mapped := mapAdapterError(err)

	if errors.Is(mapped, store.ErrVersionConflict) {
		r.mu.Lock()
		r.stale = true
		r.mu.Unlock()

		r.logger.Warn().Err(err).Str("func", fn).
			Int64("inventory_id", id).
			Int64("version", version).
			Msg("server rejected local version")
		r.notify(Notification{Kind: NotificationConflict, InventoryID: id, Version: version, Err: mapped})
		return mapped
	}

	r.logger.Warn().Err(err).Str("func", fn).
		Int64("inventory_id", id).
		Msg("flush attempt failed")
	r.notify(Notification{Kind: NotificationFlushFailed, InventoryID: id, Version: version, Err: mapped})
	return mapped
}

// Reload implements SettingsReconciler. It waits for an in-flight flush.
// On a failed fetch the local state is left untouched.
func (r *ClientSettingsReconciler) Reload(ctx context.Context) error {
	r.flushing.Lock()
	defer r.flushing.Unlock()

	r.mu.Lock()
	started, id := r.started, r.inventoryID
	r.mu.Unlock()
	if !started {
		return ErrReconcilerNotStarted
	}

	inv, err := r.server.GetInventory(ctx, id)
	if err != nil {
		return mapAdapterError(err)
	}

	r.mu.Lock()
	if r.debounceTimer != nil {
		r.debounceTimer.Stop()
	}
	r.confirmed = inv
	r.buffer = models.InventoryPatch{}
	r.pending = models.InventoryPatch{}
	r.dirty = false
	r.stale = false
	r.generation++
	r.mu.Unlock()

	r.persistDraft()

	r.logger.Info().Str("func", "ClientSettingsReconciler.Reload").
		Int64("inventory_id", id).
		Int64("version", inv.Version).
		Msg("local edits discarded")
	return nil
}

// ReplaceImage implements SettingsReconciler. It is not debounced and
// waits for an in-flight flush so the confirmed version is current.
func (r *ClientSettingsReconciler) ReplaceImage(ctx context.Context, data []byte, contentType string) error {
	r.flushing.Lock()
	defer r.flushing.Unlock()

	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return ErrReconcilerNotStarted
	}
	if r.stale {
		r.mu.Unlock()
		return ErrStaleVersion
	}
	id, version := r.inventoryID, r.confirmed.Version
	r.mu.Unlock()

	writeCtx, cancel := context.WithTimeout(ctx, r.flushTimeout)
	defer cancel()

	inv, err := r.server.ReplaceImage(writeCtx, id, version, models.ImageUpload{Data: data, ContentType: contentType})
	if err != nil {
		return r.writeFailed("ClientSettingsReconciler.ReplaceImage", id, version, err)
	}

	r.mu.Lock()
	r.confirmed = inv
	r.mu.Unlock()

	r.persistDraft()
	r.notify(Notification{Kind: NotificationSaved, InventoryID: id, Version: inv.Version})
	return nil
}

// State implements SettingsReconciler.
func (r *ClientSettingsReconciler) State() models.Inventory {
	r.mu.Lock()
	defer r.mu.Unlock()
	return applyInventoryPatch(r.confirmed, r.pending.Merge(r.buffer))
}

// Stale reports whether flushing is suspended until Reload.
func (r *ClientSettingsReconciler) Stale() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stale
}

// Dirty reports whether debounced edits wait for confirmation.
func (r *ClientSettingsReconciler) Dirty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dirty
}

func (r *ClientSettingsReconciler) Notifications() <-chan Notification {
	return r.notifications
}

// Stop implements SettingsReconciler. Safe to call when not started.
func (r *ClientSettingsReconciler) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	if r.debounceTimer != nil {
		r.debounceTimer.Stop()
	}
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	r.wg.Wait()

	// edits still inside the debounce window survive as a draft
	r.promote()

	r.mu.Lock()
	r.started = false
	r.mu.Unlock()
}

// persistDraft stores the pending patch, or removes the draft when
// nothing is pending. Failures are logged: the draft only protects
// against restarts.
func (r *ClientSettingsReconciler) persistDraft() {
	r.draftMu.Lock()
	defer r.draftMu.Unlock()

	r.mu.Lock()
	draft := models.InventoryDraft{
		InventoryID: r.inventoryID,
		BaseVersion: r.confirmed.Version,
		Patch:       r.pending,
		UpdatedAt:   time.Now(),
	}
	dirty := r.dirty
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), r.flushTimeout)
	defer cancel()

	var err error
	if dirty {
		err = r.drafts.SaveDraft(ctx, draft)
	} else {
		err = r.drafts.DeleteDraft(ctx, draft.InventoryID)
	}
	if err != nil {
		r.logger.Err(err).Str("func", "ClientSettingsReconciler.persistDraft").
			Int64("inventory_id", draft.InventoryID).
			Msg("draft persistence failed")
	}
}

func (r *ClientSettingsReconciler) notify(n Notification) {
	select {
	case r.notifications <- n:
	default:
		r.logger.Warn().Str("func", "ClientSettingsReconciler.notify").
			Stringer("kind", n.Kind).
			Msg("notification dropped, nobody is listening")
	}
}

// applyInventoryPatch returns inv with patch applied the way the server
// applies it.
func applyInventoryPatch(inv models.Inventory, patch models.InventoryPatch) models.Inventory {
	if patch.Title != nil {
		inv.Title = *patch.Title
	}
	if patch.Description != nil {
		if *patch.Description == "" {
			inv.Description = nil
		} else {
			d := *patch.Description
			inv.Description = &d
		}
	}
	if patch.CategoryID != nil {
		if *patch.CategoryID <= 0 {
			inv.CategoryID = nil
		} else {
			c := *patch.CategoryID
			inv.CategoryID = &c
		}
	}
	if patch.IsPublic != nil {
		inv.IsPublic = *patch.IsPublic
	}
	if patch.Tags != nil {
		inv.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.ImageURL != nil {
		u := *patch.ImageURL
		inv.ImageURL = &u
	}
	return inv
}
