// Package proto holds the shared lists gRPC API generated from
// sharedlists.proto.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative sharedlists.proto
