package keyopts

type KeyData struct {
	ID  string
	SKI string
}

type Options interface {
	Set(kVs ...interface{}) (Options, error)
	Get(key string) (interface{}, bool)
}

// KeyOpts manages the key metadata referred to by a key ID.
type KeyOpts interface {
	// Import links the SKI of a stored key to the key ID found in opts.
	Import(ski string, opts Options) error

	// Get returns the key metadata related to the key ID found in opts.
	Get(opts Options) (*KeyData, error)

	// GetAll returns the metadata of every known key.
	GetAll() (map[string]*KeyData, error)

	// Delete removes the key metadata related to the key ID found in opts.
	Delete(opts Options) error
}
