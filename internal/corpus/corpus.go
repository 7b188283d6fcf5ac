// Package corpus provides access to test corpora and helpers to feed them
// piecewise into hash digests.
package corpus

import (
	"io"
	"io/fs"
	"math/rand"
)

// File is a corpus file held in memory.
type File struct {
	Name string
	Data []byte
}

// Files reads all regular files of the corpus.
func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

// Size returns the total number of bytes of all files.
func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

// Split cuts p into pieces of random length in the range [0,maxLen]. The
// same seed always produces the same pieces. Empty pieces are included on
// purpose; writers must handle them.
func Split(p []byte, maxLen int, seed int64) [][]byte {
	if maxLen < 1 {
		panic("corpus: maxLen must be positive")
	}
	r := rand.New(rand.NewSource(seed))
	var pieces [][]byte
	for len(p) > 0 {
		k := r.Intn(maxLen + 1)
		if k > len(p) {
			k = len(p)
		}
		pieces = append(pieces, p[:k])
		p = p[k:]
	}
	return pieces
}

// WriteSplit writes p to w in pieces as produced by Split.
func WriteSplit(w io.Writer, p []byte, maxLen int, seed int64) error {
	for _, q := range Split(p, maxLen, seed) {
		if _, err := w.Write(q); err != nil {
			return err
		}
	}
	return nil
}
