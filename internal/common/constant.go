// Package common contains shared constants and sentinel errors used across
// the shared lists server.
package common

// AccessTokenHeaderName is the gRPC metadata key that carries the access
// token on protected calls.
const AccessTokenHeaderName = "access_token"

