// Package voicebank answers which phoneme labels a voicebank can sing.
package voicebank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Catalog is the set of aliases a voicebank provides. It implements
// syllable.Oracle. A Catalog is read-only once loaded.
type Catalog struct {
	aliases map[string]struct{}
}

// New creates a catalog holding the given aliases.
func New(aliases ...string) *Catalog {
	c := &Catalog{aliases: make(map[string]struct{}, len(aliases))}
	for _, a := range aliases {
		c.Add(a)
	}
	return c
}

// Add registers an alias. Surrounding whitespace is ignored.
func (c *Catalog) Add(alias string) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return
	}
	c.aliases[alias] = struct{}{}
}

// Available reports whether the voicebank has a sample for label.
func (c *Catalog) Available(label string) bool {
	if c == nil {
		return false
	}
	_, ok := c.aliases[label]
	return ok
}

// Len returns the number of aliases.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.aliases)
}

// Labels returns all aliases in sorted order.
func (c *Catalog) Labels() []string {
	if c == nil {
		return nil
	}
	labels := make([]string, 0, len(c.aliases))
	for a := range c.aliases {
		labels = append(labels, a)
	}
	sort.Strings(labels)
	return labels
}

// Load reads aliases from r. Two line formats are accepted:
//
//	file.wav=alias,offset,consonant,cutoff,preutterance,overlap   (oto.ini)
//	alias                                                          (alias list)
//
// An oto.ini entry with an empty alias is named after its file stem.
// Blank lines and lines starting with '#' are skipped.
func Load(r io.Reader) (*Catalog, error) {
	c := New()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		file, rest, isOto := strings.Cut(line, "=")
		if !isOto {
			c.Add(line)
			continue
		}
		file = strings.TrimSpace(file)
		if file == "" {
			return nil, fmt.Errorf("line %d: missing file name before '='", lineNum)
		}
		alias, _, _ := strings.Cut(rest, ",")
		if strings.TrimSpace(alias) == "" {
			alias = strings.TrimSuffix(file, filepath.Ext(file))
		}
		c.Add(alias)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Open loads path with LoadDir if it is a directory and LoadFile otherwise.
func Open(path string) (*Catalog, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// LoadDir loads every oto.ini below dir (voicebanks keep one per pitch
// folder) into one catalog.
func LoadDir(dir string) (*Catalog, error) {
	c := New()
	found := 0
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(d.Name(), "oto.ini") {
			return nil
		}
		sub, err := LoadFile(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for a := range sub.aliases {
			c.aliases[a] = struct{}{}
		}
		found++
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == 0 {
		return nil, fmt.Errorf("no oto.ini under %s", dir)
	}
	return c, nil
}
