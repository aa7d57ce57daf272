// Class fingerprinting for caches and duplicate detection.
package classfile

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a stable hex identifier for a class file's raw
// bytes. Two byte-identical class files always share a fingerprint;
// recompiled classes almost never do.
func Fingerprint(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:16])
}
