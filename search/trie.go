package search

import (
	"encoding/gob"
	"io"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/pierrec/lz4/v4"

	"github.com/tessark/cohort/core"
)

// PrefixIndex is a character trie mapping key prefixes to the set of record
// identifiers whose indexed key has that prefix.
//
// The index is an explicitly owned structure: the caller builds it once with
// Insert and queries it repeatedly with Lookup. It is never rebuilt per query.
// After construction it is read-only and safe for concurrent Lookup calls.
type PrefixIndex struct {
	root *trieNode
	keys int
}

type trieNode struct {
	// Exported for gob.
	Children map[rune]*trieNode
	IDs      *roaring.Bitmap
}

func newTrieNode() *trieNode {
	return &trieNode{
		Children: make(map[rune]*trieNode),
		IDs:      roaring.New(),
	}
}

// NewPrefixIndex creates an empty prefix index.
func NewPrefixIndex() *PrefixIndex {
	return &PrefixIndex{root: newTrieNode()}
}

// Insert adds id under every prefix of key. Keys are case-folded, so lookups
// are case-insensitive.
func (x *PrefixIndex) Insert(id core.LocalID, key string) {
	node := x.root
	node.IDs.Add(uint32(id))
	for _, r := range strings.ToLower(key) {
		child, ok := node.Children[r]
		if !ok {
			child = newTrieNode()
			node.Children[r] = child
		}
		child.IDs.Add(uint32(id))
		node = child
	}
	x.keys++
}

// Lookup returns the identifiers of all keys starting with prefix, in
// ascending order. An empty prefix returns every indexed identifier.
func (x *PrefixIndex) Lookup(prefix string) []core.LocalID {
	node := x.root
	for _, r := range strings.ToLower(prefix) {
		child, ok := node.Children[r]
		if !ok {
			return nil
		}
		node = child
	}

	ids := make([]core.LocalID, 0, node.IDs.GetCardinality())
	it := node.IDs.Iterator()
	for it.HasNext() {
		ids = append(ids, core.LocalID(it.Next()))
	}
	return ids
}

// Len returns the number of inserted keys.
func (x *PrefixIndex) Len() int {
	return x.keys
}

// countingWriter tracks bytes written to the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// WriteTo serializes the index as an lz4-compressed gob stream.
func (x *PrefixIndex) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := lz4.NewWriter(cw)

	enc := gob.NewEncoder(zw)
	if err := enc.Encode(x.keys); err != nil {
		return cw.n, err
	}
	if err := enc.Encode(x.root); err != nil {
		return cw.n, err
	}
	if err := zw.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// ReadFrom replaces the index contents from a stream written by WriteTo.
func (x *PrefixIndex) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	zr := lz4.NewReader(cr)

	dec := gob.NewDecoder(zr)
	var keys int
	if err := dec.Decode(&keys); err != nil {
		return cr.n, err
	}
	root := newTrieNode()
	if err := dec.Decode(root); err != nil {
		return cr.n, err
	}

	x.keys = keys
	x.root = root
	return cr.n, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}
