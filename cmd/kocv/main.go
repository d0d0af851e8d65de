package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	hangulcv "github.com/ieee0824/hangul-cv"
	"github.com/ieee0824/hangul-cv/voicebank"
)

func main() {
	vbPath := flag.String("voicebank", "", "oto.ini, alias list, or voicebank directory")
	cfgPath := flag.String("config", "", "path to TOML settings")
	duration := flag.Int("duration", 480, "note length in ticks")
	format := flag.String("format", "text", "output format: text or cbor")
	suggest := flag.Int("suggest", 3, "aliases to suggest for labels the voicebank lacks")
	verbose := flag.Int("v", 0, "log verbosity (-1=warnings only, 0=notices, 1=info, 2=debug)")

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: kocv [-voicebank OTO] [-config TOML] [-duration TICKS] LYRIC...")
		flag.PrintDefaults()
		os.Exit(1)
	}

	commonlog.Configure(*verbose, nil)
	log := commonlog.GetLogger("kocv")

	var opts []hangulcv.Option
	if *cfgPath != "" {
		cfg, err := hangulcv.LoadConfig(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, hangulcv.WithConfig(cfg))
	}

	var vb *voicebank.Catalog
	if *vbPath != "" {
		var err error
		vb, err = voicebank.Open(*vbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load voicebank: %v\n", err)
			os.Exit(1)
		}
		log.Infof("loaded %d aliases from %s", vb.Len(), *vbPath)
		opts = append(opts, hangulcv.WithOracle(vb))
	}

	p := hangulcv.New(opts...)

	results := make([]hangulcv.Result, 0, flag.NArg())
	for _, lyric := range flag.Args() {
		results = append(results, p.Phonemize(hangulcv.Note{Lyric: lyric, Duration: *duration}))
	}

	switch *format {
	case "text":
		for i, r := range results {
			fmt.Printf("%s\t%s\n", flag.Arg(i), formatTokens(r))
			for _, label := range r.Unverified {
				if vb == nil || *suggest <= 0 {
					continue
				}
				if near := vb.Nearest(label, *suggest); len(near) > 0 {
					fmt.Fprintf(os.Stderr, "  %q missing; nearest: %s\n", label, strings.Join(near, ", "))
				}
			}
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
}

func formatTokens(r hangulcv.Result) string {
	ss := make([]string, len(r.Tokens))
	for i, t := range r.Tokens {
		ss[i] = fmt.Sprintf("[%s]@%d", t.Label, t.Offset)
	}
	return strings.Join(ss, " ")
}
