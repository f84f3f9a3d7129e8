// Package events declares the typed payloads published on the eventbus.
package events

import "time"

// HTTPStart is published when a request reaches the GraphQL endpoint.
type HTTPStart struct {
	Method     string
	Path       string
	RemoteAddr string
}

// HTTPFinish is published after the response has been written.
type HTTPFinish struct {
	Method   string
	Path     string
	Status   int
	Duration time.Duration
}

// GraphQLStart is published before executing a GraphQL operation.
type GraphQLStart struct {
	Query         string
	OperationName string
	OperationType string
}

// GraphQLFinish is published after executing a GraphQL operation.
type GraphQLFinish struct {
	Query         string
	OperationName string
	OperationType string
	Errors        []error
	Duration      time.Duration
}

// StoreMutation is published by mutation resolvers after a successful
// store change. TodoIDs are the local ids the operation touched.
type StoreMutation struct {
	Op      string
	TodoIDs []string
}
