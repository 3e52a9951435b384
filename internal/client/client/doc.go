// Package client contains the client-side building blocks for talking to the
// Classroom Manager entry API and for bootstrapping the local database.
//
// # Overview
//
//  1. Client is the transport-agnostic API contract: list, create, update
//     and delete entries, plus register, login and whoami.
//  2. HTTPClient implements Client over HTTP+JSON. Every request carries a
//     fresh X-Request-ID and, when a token is known, an Authorization bearer
//     header.
//  3. InitDatabase / RunMigrations open the SQLite session store and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses are returned as
// *StatusError, which unwraps to ErrUnauthorized (401/403), ErrNotFound (404)
// or ErrUnexpectedStatus (anything else). Match with errors.Is.
package client
