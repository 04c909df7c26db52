package helpers

import (
	"fmt"
	"hash/fnv"
)

func FNVHash(key string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(key))
	return h.Sum32()
}

// Fingerprint returns the stable hex identity of a (rule, label-set) key.
func Fingerprint(key string) string {
	h := fnv.New64a()
	h.Write([]byte(key))
	return fmt.Sprintf("%016x", h.Sum64())
}
