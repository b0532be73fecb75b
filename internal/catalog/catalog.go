package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"ocrd/internal/common/fsutil"
	"ocrd/pkg/types"
)

// modelExt is the file extension carried by installed recognition models.
const modelExt = ".traineddata"

// Catalog is the deduplicated set of installed language/model records.
// It is built once at startup and read-only afterwards, so it is safe to
// share across concurrent request handlers without locking.
type Catalog struct {
	records []types.ModelRecord
}

// Build scans the tessdata root and returns the catalog of installed models.
// The scan covers files directly under root (language = file stem, no model)
// and files one directory down (language = dir name, model = file stem).
// Hidden files and files without the model extension are skipped.
//
// Duplicate (language, model) keys are deduplicated first-seen-wins. WalkDir
// visits entries in lexical order, so the lexicographically-first path wins
// deterministically regardless of filesystem state.
//
// An unreadable root is returned as an error; the caller decides whether that
// is fatal.
func Build(root string) (*Catalog, error) {
	base, err := fsutil.ExpandHome(root)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}

	seen := make(map[types.ModelKey]struct{})
	var records []types.ModelRecord

	walkErr := filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == abs {
				return fmt.Errorf("read tessdata root %s: %w", abs, err)
			}
			// Unreadable subtrees are skipped, not fatal.
			return nil
		}
		rel, relErr := filepath.Rel(abs, path)
		if relErr != nil || rel == "." {
			return nil
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1

		if d.IsDir() {
			if depth >= 2 {
				// Only one level of language directories is considered.
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, modelExt) {
			return nil
		}
		stem := strings.TrimSuffix(name, modelExt)

		rec := types.ModelRecord{
			FullPath:     path,
			RelativePath: filepath.ToSlash(strings.TrimSuffix(rel, modelExt)),
		}
		switch depth {
		case 1:
			rec.Language = stem
		case 2:
			model := stem
			rec.Language = filepath.Base(filepath.Dir(path))
			rec.Model = &model
		default:
			return nil
		}

		key := rec.Key()
		if _, dup := seen[key]; dup {
			return nil
		}
		seen[key] = struct{}{}
		records = append(records, rec)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return &Catalog{records: records}, nil
}

// Len returns the number of installed records.
func (c *Catalog) Len() int { return len(c.records) }

// Records returns a sorted copy of all records, ordered by language then
// model, with the unqualified (nil model) variant first within a language.
func (c *Catalog) Records() []types.ModelRecord {
	out := make([]types.ModelRecord, len(c.records))
	copy(out, c.records)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Language != out[j].Language {
			return out[i].Language < out[j].Language
		}
		switch {
		case out[i].Model == nil:
			return out[j].Model != nil
		case out[j].Model == nil:
			return false
		default:
			return *out[i].Model < *out[j].Model
		}
	})
	return out
}

// ForLanguage returns the records installed for the given language.
func (c *Catalog) ForLanguage(language string) []types.ModelRecord {
	var out []types.ModelRecord
	for _, r := range c.records {
		if r.Language == language {
			out = append(out, r)
		}
	}
	return out
}
