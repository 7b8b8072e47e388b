package vault

// Vault holds encoded key material indexed by its SKI.
type Vault interface {
	Import(ski string, key []byte) error
	Get(ski string) ([]byte, error)
	Delete(ski string) error
}
