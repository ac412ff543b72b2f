// Package memory provides process-local implementations of the storage
// interfaces defined in the internal/store package. Data lives for the
// lifetime of the process and is lost on restart.
package memory
