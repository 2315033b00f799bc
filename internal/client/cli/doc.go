// Package cli is the interactive command-line front end for the shared
// lists server. It keeps the session in memory and talks to the server over
// gRPC with the JSON codec.
package cli
