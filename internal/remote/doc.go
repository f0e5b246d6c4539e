// Package remote provides the client for the client collection resource.
//
// The collection is an opaque HTTP/JSON resource addressed by a single base
// URL. The four operations map onto standard verbs:
//
//	List    GET    {base}
//	Create  POST   {base}
//	Update  PUT    {base}/{id}
//	Delete  DELETE {base}/{id}
//
// Every call is a single attempt; there are no retries. Failures are reported
// as [*NetworkError] for transport problems and [*HTTPError] for non-2xx
// responses, so callers can tell them apart with [IsNetworkFailure] and
// [StatusCode].
package remote
