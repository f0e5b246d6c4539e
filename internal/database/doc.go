// Package database provides the persisted configuration store for clientdir.
//
// The package defines the [Store] interface, backed by BoltDB, an embedded
// key-value store. Only the application configuration is persisted; client
// records live in memory for the duration of a session and are never written
// here.
//
// Use [Open] with [DefaultPath] to obtain the store:
//
//	path, err := database.DefaultPath()
//	db, err := database.Open(path)
//	defer db.Close()
//	cfg, err := db.GetConfig()
package database
