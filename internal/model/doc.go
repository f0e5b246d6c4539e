// Package model defines the data structures used throughout clientdir.
//
// # Client
//
// The [Client] struct is one record of the client directory as the remote
// collection returns it, plus an [Origin] tag recording its provenance:
//
//	type Client struct {
//	    ID       int      // Unique within the local store
//	    Name     string
//	    Username string
//	    Email    string
//	    Phone    string
//	    Website  string   // Detail view only
//	    Address  *Address // Detail view only
//	    Company  Company
//	    Origin   Origin   // Never serialized
//	}
//
// # Draft and Payload
//
// A [Draft] is the transient content of the add/edit form. [Draft.Payload]
// converts it into the [Payload] written to the remote collection, deriving
// the username from the email address.
//
// # Config
//
// The [Config] struct holds application configuration:
//
//	type Config struct {
//	    APIURL                string // Collection endpoint
//	    TimeoutSeconds        int    // Per-request timeout
//	    RemotePersistsCreates bool   // Whether created records are remote
//	    LogLevel              string // debug, info, warn, error
//	    LogFormat             string // text or json
//	}
package model
