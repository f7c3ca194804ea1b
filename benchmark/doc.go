// Package benchmark compares kvlog lines emitted through each backend
// sink against the same lines written with the backend's native API.
//
// Run with:
//
//	go test -bench . -benchmem ./benchmark
package benchmark
