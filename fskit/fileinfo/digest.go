package fileinfo

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/fskit/fskit/common"
)

// Checksum calculates the digest of the file content using the named
// algorithm ("md5", "sha1", "sha256", "sha384" or "sha512") and returns
// it as a lowercase hexadecimal string. The full content is streamed on
// every call; callers that reuse a digest should cache the result.
func (fi *FileInfo) Checksum(algorithm string) (string, error) {
	var hasher hash.Hash
	switch strings.ToLower(algorithm) {
	case "md5":
		hasher = md5.New()
	case "sha1":
		hasher = sha1.New()
	case "sha256":
		hasher = sha256.New()
	case "sha384":
		hasher = sha512.New384()
	case "sha512":
		hasher = sha512.New()
	default:
		return "", fmt.Errorf("unsupported checksum algorithm: %s", algorithm)
	}

	file, err := os.Open(fi.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", common.NotFoundError(fi.path)
		}
		return "", common.WrapError(err, "failed to open file %s", fi.path)
	}
	defer file.Close()

	if _, err := io.Copy(hasher, file); err != nil {
		return "", common.WrapError(err, "failed to calculate checksum for %s", fi.path)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// MD5 returns the MD5 digest of the file content.
func (fi *FileInfo) MD5() (string, error) {
	return fi.Checksum("md5")
}

// SHA1 returns the SHA-1 digest of the file content.
func (fi *FileInfo) SHA1() (string, error) {
	return fi.Checksum("sha1")
}

// SHA256 returns the SHA-256 digest of the file content.
func (fi *FileInfo) SHA256() (string, error) {
	return fi.Checksum("sha256")
}

// SHA384 returns the SHA-384 digest of the file content.
func (fi *FileInfo) SHA384() (string, error) {
	return fi.Checksum("sha384")
}

// SHA512 returns the SHA-512 digest of the file content.
func (fi *FileInfo) SHA512() (string, error) {
	return fi.Checksum("sha512")
}
