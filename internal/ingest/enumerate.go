// Package ingest enumerates input documents for a pipeline stage.
package ingest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joseph-ayodele/transcript-harvester/constants"
	"github.com/joseph-ayodele/transcript-harvester/internal/common"
)

// Document is one input file queued for a stage. Base is the document's
// stable identity: the file name without its extension. Output paths for
// every stage derive from it.
type Document struct {
	Path string
	Base string
}

// Options filters enumeration.
type Options struct {
	Ext       string // extension filter with dot, e.g. ".md"; required
	Limit     int    // truncate the sorted set; 0 = no limit
	SkipEmpty bool   // drop zero-byte inputs (carry "processed, no result" markers)
	SkipHidden bool  // drop dotfiles
}

// Stats summarizes one enumeration pass.
type Stats struct {
	Scanned      uint32
	Matched      uint32
	SkippedEmpty uint32
}

// Enumerate yields the documents under path. A directory yields all files
// matching the extension filter, sorted by name for deterministic dispatch
// order; a single file path yields exactly that document. The set may be
// empty — callers decide whether that is fatal.
func Enumerate(path string, opts Options) ([]Document, Stats, error) {
	var stats Stats

	info, err := os.Stat(path)
	if err != nil {
		return nil, stats, common.WrapError(err, "stat input")
	}

	if !info.IsDir() {
		stats.Scanned = 1
		doc, ok := admit(path, info.Size(), opts, &stats)
		if !ok {
			return nil, stats, nil
		}
		return []Document{doc}, stats, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, stats, common.WrapError(err, "read input dir")
	}

	var docs []Document
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		stats.Scanned++
		fi, err := e.Info()
		if err != nil {
			continue
		}
		if doc, ok := admit(filepath.Join(path, e.Name()), fi.Size(), opts, &stats); ok {
			docs = append(docs, doc)
		}
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	if opts.Limit > 0 && len(docs) > opts.Limit {
		docs = docs[:opts.Limit]
	}
	return docs, stats, nil
}

func admit(path string, size int64, opts Options, stats *Stats) (Document, bool) {
	name := filepath.Base(path)
	if opts.SkipHidden && strings.HasPrefix(name, ".") {
		return Document{}, false
	}
	ext := filepath.Ext(name)
	if opts.Ext != "" && constants.NormalizeExt(ext) != constants.NormalizeExt(opts.Ext) {
		return Document{}, false
	}
	stats.Matched++
	if opts.SkipEmpty && size == 0 {
		stats.SkippedEmpty++
		return Document{}, false
	}
	return Document{Path: path, Base: strings.TrimSuffix(name, ext)}, true
}
