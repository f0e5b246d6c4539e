// Package core provides the business logic layer for clientdir.
//
// This package contains all core functionality separated from UI concerns:
// the local client store, the form validator, the search filter and the
// [Directory] that keeps the store in step with the remote collection.
//
// # Design Principles
//
//   - Functions return errors instead of printing to stdout/stderr
//   - Remote access goes through the [Resource] interface
//   - UI-specific logic belongs in the cli package, not here
//
// # Fetch Once, Never Reconcile
//
// The collection is fetched once by [Directory.Load]. After that the store is
// only changed locally, after each successful remote write:
//
//	create  -> [ClientStore.InsertUnique] (prepended, newest first)
//	update  -> [ClientStore.Replace]      (same position)
//	delete  -> [ClientStore.Remove]
//
// The store is never re-fetched, so changes made to the remote collection by
// anyone else are not seen until the next start. Consumers must not assume
// live multi-client consistency.
//
// # Provenance
//
// Every stored record carries a [model.Origin]. Records that the remote
// collection never persisted are [model.OriginLocal]; editing or deleting them
// does not touch the network.
package core
