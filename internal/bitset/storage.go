package bitset

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/graphalgo/resource"
)

const (
	// DefaultPageShift gives pages of 16384 words.
	DefaultPageShift = 14

	// MaxPageShift bounds a single page to 2^30 words.
	MaxPageShift = 30

	// DefaultFlatLimit is the largest node count stored in a single slice.
	DefaultFlatLimit = int64(1) << 28
)

// Options configures bitset storage.
type Options struct {
	// PageShift is log2 of the page length (in words) of the paged variant.
	PageShift uint

	// FlatLimit is the largest node count that uses the flat variant.
	// Larger node counts are paged.
	FlatLimit int64

	// Controller is charged for every allocation. May be nil.
	Controller *resource.Controller
}

// DefaultOptions contains the default storage configuration.
var DefaultOptions = Options{
	PageShift: DefaultPageShift,
	FlatLimit: DefaultFlatLimit,
}

func applyOptions(optFns []func(o *Options)) Options {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.PageShift == 0 || opts.PageShift > MaxPageShift {
		opts.PageShift = DefaultPageShift
	}
	return opts
}

type word interface {
	~uint32 | ~uint64
}

// array is addressable per-node word storage.
type array[T word] interface {
	get(i int64) T
	set(i int64, v T)
	or(i int64, v T)
	fill(v T)
	size() int64
	cursor(from int64) cursor[T]
	paged() bool
}

// cursor walks the pages of an array starting at a node id.
// After next returns true, words holds the current run and start is the
// node id of words[0].
type cursor[T word] struct {
	pages  [][]T
	page   int
	offset int
	base   int64

	words []T
	start int64
}

func (c *cursor[T]) next() bool {
	for c.page < len(c.pages) {
		p := c.pages[c.page]
		off := c.offset
		c.offset = 0
		c.start = c.base + int64(off)
		c.base += int64(len(p))
		c.page++
		if off < len(p) {
			c.words = p[off:]
			return true
		}
	}
	c.words = nil
	return false
}

type flatArray[T word] struct {
	data []T
}

func (a *flatArray[T]) get(i int64) T    { return a.data[i] }
func (a *flatArray[T]) set(i int64, v T) { a.data[i] = v }
func (a *flatArray[T]) or(i int64, v T)  { a.data[i] |= v }
func (a *flatArray[T]) size() int64      { return int64(len(a.data)) }
func (a *flatArray[T]) paged() bool      { return false }
func (a *flatArray[T]) fill(v T)         { fillWords(a.data, v) }

func (a *flatArray[T]) cursor(from int64) cursor[T] {
	c := cursor[T]{pages: [][]T{a.data}}
	if from >= int64(len(a.data)) {
		c.page = 1
		return c
	}
	c.offset = int(from)
	return c
}

type pagedArray[T word] struct {
	pages [][]T
	shift uint
	mask  int64
	n     int64
}

func (a *pagedArray[T]) get(i int64) T    { return a.pages[i>>a.shift][i&a.mask] }
func (a *pagedArray[T]) set(i int64, v T) { a.pages[i>>a.shift][i&a.mask] = v }
func (a *pagedArray[T]) or(i int64, v T)  { a.pages[i>>a.shift][i&a.mask] |= v }
func (a *pagedArray[T]) size() int64      { return a.n }
func (a *pagedArray[T]) paged() bool      { return true }

func (a *pagedArray[T]) fill(v T) {
	for _, p := range a.pages {
		fillWords(p, v)
	}
}

func (a *pagedArray[T]) cursor(from int64) cursor[T] {
	c := cursor[T]{pages: a.pages}
	if from >= a.n {
		c.page = len(a.pages)
		return c
	}
	c.page = int(from >> a.shift)
	c.offset = int(from & a.mask)
	c.base = int64(c.page) << a.shift
	return c
}

func fillWords[T word](words []T, v T) {
	if v == 0 {
		clear(words)
		return
	}
	for i := range words {
		words[i] = v
	}
}

// allocate creates flat or paged storage for nodeCount words and charges
// the controller for it. The returned byte count must be released by the
// owner.
func allocate[T word](nodeCount int64, opts Options) (arr array[T], bytes int64, err error) {
	if nodeCount <= 0 {
		return nil, 0, &InvalidSizeError{NodeCount: nodeCount, cause: fmt.Errorf("node count must be positive")}
	}

	var zero T
	wordSize := int64(unsafe.Sizeof(zero))
	if nodeCount > math.MaxInt64/wordSize {
		return nil, 0, &InvalidSizeError{NodeCount: nodeCount, cause: fmt.Errorf("node count overflows addressable memory")}
	}
	bytes = nodeCount * wordSize

	if err := opts.Controller.AcquireMemory(bytes); err != nil {
		return nil, 0, &InvalidSizeError{NodeCount: nodeCount, cause: err}
	}

	defer func() {
		if r := recover(); r != nil {
			opts.Controller.ReleaseMemory(bytes)
			arr, bytes = nil, 0
			err = &InvalidSizeError{NodeCount: nodeCount, cause: fmt.Errorf("allocation failed: %v", r)}
		}
	}()

	if nodeCount <= opts.FlatLimit && uint64(nodeCount) <= uint64(math.MaxInt) {
		return &flatArray[T]{data: make([]T, nodeCount)}, bytes, nil
	}

	return newPagedArray[T](nodeCount, opts.PageShift), bytes, nil
}

func newPagedArray[T word](nodeCount int64, shift uint) *pagedArray[T] {
	pageSize := int64(1) << shift
	numPages := (nodeCount + pageSize - 1) >> shift

	pages := make([][]T, numPages)
	for i := range pages {
		size := pageSize
		if i == len(pages)-1 {
			// last page only holds the remainder
			size = nodeCount - int64(i)*pageSize
		}
		pages[i] = make([]T, size)
	}

	return &pagedArray[T]{
		pages: pages,
		shift: shift,
		mask:  pageSize - 1,
		n:     nodeCount,
	}
}
