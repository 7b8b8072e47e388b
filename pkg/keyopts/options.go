package keyopts

import (
	"errors"

	com_keyopts "github.com/shona13/ElGamal/pkg/common/keyopts"
)

var ErrInvalidOptions = errors.New("keyopts: invalid options")

type Options map[string]interface{}

var _ com_keyopts.Options = Options{}

func NewOptions() Options {
	return make(Options)
}

// Set stores key/value pairs given as alternating arguments.
func (opts Options) Set(kVs ...interface{}) (com_keyopts.Options, error) {
	if len(kVs)%2 != 0 {
		return nil, ErrInvalidOptions
	}

	for i := 0; i < len(kVs); i += 2 {
		key, ok := kVs[i].(string)
		if !ok {
			return nil, ErrInvalidOptions
		}
		opts[key] = kVs[i+1]
	}

	return opts, nil
}

func (opts Options) Get(key string) (interface{}, bool) {
	val, ok := opts[key]
	return val, ok
}
