// Package memory provides in-process implementations of the event store,
// blob store and user repository. They back the "memory" drivers used in
// development and in transport tests.
package memory
