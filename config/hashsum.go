package config

import (
	"encoding/json"
	"hash/fnv"
)

// Hashsum calculates FNV non-cryptographic hash suitable for checking the equality
func Hashsum(args ...interface{}) ([]byte, error) {
	h := fnv.New128()
	for _, arg := range args {
		s, err := json.Marshal(arg)
		if err != nil {
			return nil, err
		}
		if _, err := h.Write(s); err != nil {
			return nil, err
		}
	}
	return h.Sum(nil), nil
}
