package pdb

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"blainsmith.com/go/seahash"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/log"
	"github.com/klauspost/compress/gzip"
)

// TableSize is the number of entries in a full 6-tile database: 25^6.
const TableSize = 244140625

// Unreached marks a table entry no pattern-move sequence has reached.
// After a complete construction it survives only for placements
// unreachable from the goal.
const Unreached = 0xff

// TableName returns the conventional file name for a pattern's database:
// pat24.<digits>.tab, where <digits> concatenates the tile values in
// pattern order.
func TableName(tiles []int) string {
	name := "pat24."
	for _, t := range tiles {
		name += strconv.Itoa(t)
	}
	return name + ".tab"
}

// WriteTable writes a database as raw bytes, one per entry in index
// order, and returns the table's seahash.
func WriteTable(ctx context.Context, path string, table []byte) (uint64, error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return 0, errors.E(err, "create database", path)
	}
	h := seahash.New()
	if _, err := io.MultiWriter(out.Writer(ctx), h).Write(table); err != nil {
		_ = out.Close(ctx)
		return 0, errors.E(err, "write database", path)
	}
	if err := out.Close(ctx); err != nil {
		return 0, errors.E(err, "close database", path)
	}
	return h.Sum64(), nil
}

// WriteTable writes the computed database to path and returns its
// seahash.
func (b *Builder) WriteTable(ctx context.Context, path string) (uint64, error) {
	return WriteTable(ctx, path, b.table)
}

// Load reads a full 6-tile database into a dense byte array. Gzipped
// input is decompressed transparently; these tables have historically
// circulated compressed. The decoded size must be exactly TableSize.
func Load(ctx context.Context, path string) (table []byte, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "open database", path)
	}
	defer file.CloseAndReport(ctx, in, &err)
	br := bufio.NewReaderSize(in.Reader(ctx), 1<<20)
	var r io.Reader = br
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, errors.E(err, "gzip open database", path)
		}
		defer gz.Close()
		r = gz
	}
	table = make([]byte, TableSize)
	if _, err := io.ReadFull(r, table); err != nil {
		return nil, errors.E(err, fmt.Sprintf("database %s is short of %d bytes", path, TableSize))
	}
	var extra [1]byte
	if _, err := io.ReadFull(r, extra[:]); err != io.EOF {
		return nil, errors.E(fmt.Sprintf("database %s holds more than %d bytes", path, TableSize))
	}
	log.Debug.Printf("%s: loaded %d entries", path, TableSize)
	return table, nil
}
