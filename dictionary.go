package passcheck

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/text/cases"
)

//go:embed data/common_passwords.txt
var commonPasswordsData string

// Dictionary is an immutable set of common passwords. Lookups fold case.
type Dictionary struct {
	set map[string]struct{}
}

// defaultDict is built from the embedded list at package load time.
var defaultDict = mustParseDictionary(commonPasswordsData)

func mustParseDictionary(data string) *Dictionary {
	d, err := ParseDictionary(data)
	if err != nil {
		panic(fmt.Sprintf("passcheck: embedded dictionary: %v", err))
	}
	return d
}

// DefaultDictionary returns the dictionary embedded in the binary.
func DefaultDictionary() *Dictionary {
	return defaultDict
}

// ParseDictionary builds a dictionary from newline separated entries.
// Blank lines and lines starting with '#' are skipped.
func ParseDictionary(data string) (*Dictionary, error) {
	return ReadDictionary(strings.NewReader(data))
}

// ReadDictionary builds a dictionary from r. Gzip and zstd compressed input
// is detected by its magic bytes and decompressed transparently.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	br := bufio.NewReader(r)
	src, closeFn, err := decompress(br)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	d := &Dictionary{set: make(map[string]struct{})}
	fold := cases.Fold()
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		d.set[fold.String(word)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	if len(d.set) == 0 {
		return nil, ErrEmptyDictionary
	}
	return d, nil
}

// LoadDictionaryFile reads a dictionary from path (plain, .gz or .zst).
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	d, err := ReadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return d, nil
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

func decompress(br *bufio.Reader) (io.Reader, func(), error) {
	head, _ := br.Peek(len(zstdMagic))

	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip dictionary: %w", err)
		}
		return zr, func() { zr.Close() }, nil
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd dictionary: %w", err)
		}
		return zr, zr.Close, nil
	default:
		return br, func() {}, nil
	}
}

// Len returns the number of distinct entries.
func (d *Dictionary) Len() int {
	return len(d.set)
}

// Contains reports whether password is an entry, ignoring case. It is an
// exact match, never a substring match.
func (d *Dictionary) Contains(password string) bool {
	if d == nil || password == "" {
		return false
	}
	_, ok := d.set[cases.Fold().String(password)]
	return ok
}

// IsCommon reports whether password is in the embedded dictionary.
func IsCommon(password string) bool {
	return defaultDict.Contains(password)
}
