package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	hangulcv "github.com/ieee0824/hangul-cv"
	"github.com/ieee0824/hangul-cv/voicebank"
)

func main() {
	vbPath := flag.String("voicebank", "", "oto.ini, alias list, or voicebank directory")
	cfgPath := flag.String("config", "", "path to TOML settings")
	format := flag.String("format", "text", "output format: text or cbor")
	verbose := flag.Int("v", -1, "log verbosity (-1=warnings only, 0=notices, 1=info, 2=debug)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: lyricconv [-voicebank OTO] [-config TOML] <note-tsv-files...>")
		fmt.Fprintln(os.Stderr, "  Each line: lyric<TAB>duration-ticks. \"+\" lines extend the previous note.")
		fmt.Fprintln(os.Stderr, "  Supports glob patterns. Output goes to stdout.")
		os.Exit(1)
	}

	commonlog.Configure(*verbose, nil)

	var opts []hangulcv.Option
	if *cfgPath != "" {
		cfg, err := hangulcv.LoadConfig(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, hangulcv.WithConfig(cfg))
	}
	if *vbPath != "" {
		vb, err := voicebank.Open(*vbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load voicebank: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, hangulcv.WithOracle(vb))
	}
	p := hangulcv.New(opts...)

	// Expand glob patterns
	var files []string
	for _, arg := range flag.Args() {
		matches, err := filepath.Glob(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad pattern %q: %v\n", arg, err)
			os.Exit(1)
		}
		if matches == nil {
			files = append(files, arg)
		} else {
			files = append(files, matches...)
		}
	}

	var (
		notes   []hangulcv.Note
		results []hangulcv.Result
	)
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
			continue
		}
		ns, err := readNotes(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		notes = append(notes, ns...)
		results = append(results, phonemizeSong(p, ns)...)
	}

	switch *format {
	case "text":
		w := os.Stdout
		for i, r := range results {
			fmt.Fprintf(w, "%s\t%d\t%s\n", notes[i].Lyric, notes[i].Duration, strings.Join(r.Labels(), ","))
		}
	case "cbor":
		if err := hangulcv.EncodeResults(os.Stdout, results); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", *format)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Phonemized %d notes from %d files\n", len(results), len(files))
}

// readNotes parses lyric<TAB>duration lines. Blank lines and lines starting
// with '#' are skipped.
func readNotes(r io.Reader) ([]hangulcv.Note, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	var notes []hangulcv.Note
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: expected lyric and duration, got %d fields", line, len(record))
		}
		d, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: bad duration %q: %w", line, record[1], err)
		}
		notes = append(notes, hangulcv.Note{Lyric: strings.TrimSpace(record[0]), Duration: d})
	}
	return notes, nil
}

// phonemizeSong returns one result per note. A note followed by "+" notes
// is phonemized over the whole group; the "+" notes themselves get empty
// results.
func phonemizeSong(p *hangulcv.Phonemizer, notes []hangulcv.Note) []hangulcv.Result {
	results := make([]hangulcv.Result, len(notes))
	for i := 0; i < len(notes); {
		j := i + 1
		for j < len(notes) && strings.HasPrefix(notes[j].Lyric, "+") {
			j++
		}
		results[i] = p.Phonemize(notes[i:j]...)
		i = j
	}
	return results
}
