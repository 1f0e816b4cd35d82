// Package assets is the table of images available to drawing code, keyed by
// file id. Callers never hold image data directly; they name it by FID.
package assets

import (
	"fmt"
	"sort"

	"github.com/32bitkid/mode13/cxpm"
)

// FID is a file id, a key into a Table.
type FID int

const (
	FIDHSC   FID = iota // HSC banner
	FIDPrism            // prism stripes over a transparent field
)

func (f FID) String() string {
	return fmt.Sprintf("FID(%d)", int(f))
}

// Table maps file ids to images.
type Table map[FID]*cxpm.Image

// Lookup returns the image for fid, or nil.
func (t Table) Lookup(fid FID) *cxpm.Image {
	return t[fid]
}

// FIDs returns the ids in the table in ascending order.
func (t Table) FIDs() []FID {
	fids := make([]FID, 0, len(t))
	for fid := range t {
		fids = append(fids, fid)
	}
	sort.Slice(fids, func(i, j int) bool { return fids[i] < fids[j] })
	return fids
}

// Merge returns a new table holding t overlaid with o.
func (t Table) Merge(o Table) Table {
	m := make(Table, len(t)+len(o))
	for fid, img := range t {
		m[fid] = img
	}
	for fid, img := range o {
		m[fid] = img
	}
	return m
}

// Builtin returns the images compiled into the program.
func Builtin() Table {
	return Table{
		FIDHSC:   hsc,
		FIDPrism: prism,
	}
}
