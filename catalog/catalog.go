// Package catalog keeps CXPM images in a sqlite database so they can be
// loaded into an asset table at startup instead of being compiled in.
package catalog

import (
	"bytes"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/32bitkid/mode13/assets"
	"github.com/32bitkid/mode13/cxpm"
)

// FirstFID is the id given to the first imported image, leaving the lower
// ids to the compiled-in table.
const FirstFID assets.FID = 16

var ErrNotFound = errors.New("catalog: image not found")

type Catalog struct {
	db *sql.DB
}

// Record describes a stored image without its pixel data.
type Record struct {
	FID    assets.FID
	Name   string
	Width  int
	Height int
	Colors int
}

func Open(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS image (fid INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, width INTEGER NOT NULL, height INTEGER NOT NULL, colors INTEGER NOT NULL, cxpm BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "catalog: create schema")
	}

	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

// Import stores img under name, replacing the image previously stored under
// that name but keeping its id.
func (c *Catalog) Import(name string, img *cxpm.Image) (assets.FID, error) {
	b := new(bytes.Buffer)
	if err := cxpm.Write(b, img); err != nil {
		return 0, errors.Wrapf(err, "catalog: encode %q", name)
	}
	dims, colors := img.Stat()

	var fid int64
	switch err := c.db.QueryRow("SELECT fid FROM image WHERE name = ?", name).Scan(&fid); err {
	case sql.ErrNoRows:
		if err := c.db.QueryRow("SELECT COALESCE(MAX(fid) + 1, ?) FROM image", int64(FirstFID)).Scan(&fid); err != nil {
			return 0, err
		}
		if _, err := c.db.Exec("INSERT INTO image (fid, name, width, height, colors, cxpm) VALUES (?, ?, ?, ?, ?, ?)", fid, name, dims.X, dims.Y, colors, b.Bytes()); err != nil {
			return 0, errors.Wrapf(err, "catalog: insert %q", name)
		}
	case nil:
		if _, err := c.db.Exec("UPDATE image SET width = ?, height = ?, colors = ?, cxpm = ? WHERE fid = ?", dims.X, dims.Y, colors, b.Bytes(), fid); err != nil {
			return 0, errors.Wrapf(err, "catalog: update %q", name)
		}
	default:
		return 0, err
	}

	return assets.FID(fid), nil
}

// Image returns the image stored under fid, or ErrNotFound.
func (c *Catalog) Image(fid assets.FID) (*cxpm.Image, error) {
	var blob []byte
	switch err := c.db.QueryRow("SELECT cxpm FROM image WHERE fid = ?", int64(fid)).Scan(&blob); err {
	case sql.ErrNoRows:
		return nil, errors.Wrapf(ErrNotFound, "%v", fid)
	case nil:
		img, err := cxpm.Read(bytes.NewReader(blob))
		if err != nil {
			return nil, errors.Wrapf(err, "catalog: %v", fid)
		}
		return img, nil
	default:
		return nil, err
	}
}

// List returns every stored image ordered by id.
func (c *Catalog) List() ([]Record, error) {
	rows, err := c.db.Query("SELECT fid, name, width, height, colors FROM image ORDER BY fid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var fid int64
		if err := rows.Scan(&fid, &r.Name, &r.Width, &r.Height, &r.Colors); err != nil {
			return nil, err
		}
		r.FID = assets.FID(fid)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Load decodes every stored image into a table.
func (c *Catalog) Load() (assets.Table, error) {
	rows, err := c.db.Query("SELECT fid, cxpm FROM image")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	t := make(assets.Table)
	for rows.Next() {
		var fid int64
		var blob []byte
		if err := rows.Scan(&fid, &blob); err != nil {
			return nil, err
		}
		img, err := cxpm.Read(bytes.NewReader(blob))
		if err != nil {
			return nil, errors.Wrapf(err, "catalog: %v", assets.FID(fid))
		}
		t[assets.FID(fid)] = img
	}
	return t, rows.Err()
}
