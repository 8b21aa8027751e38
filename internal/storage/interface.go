package storage

import "errors"

var (
	// ErrNotInitialized is returned by Load when the backing file does not exist
	ErrNotInitialized = errors.New("storage not initialized")
	// ErrRecordNotFound is returned by Get when nothing is stored under a namespace
	ErrRecordNotFound = errors.New("record not found")
)

// Provider is durable local key-value storage. Values are opaque JSON
// documents stored under a namespace key.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Values
	Get(namespace string) ([]byte, error)
	Put(namespace string, value []byte) error
	Delete(namespace string) error
	Namespaces() ([]string, error)

	// Utils
	GetConfigPath() string
}
