// Package proto holds the gRPC contract between the orchestrator and the
// completion sidecar. The generated code is produced by protoc and not
// committed; run go generate ./proto before building.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
