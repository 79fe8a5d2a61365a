package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"gitlab.com/pnathan/kthsub/src/lib/batch"
	"gitlab.com/pnathan/kthsub/src/lib/findstrings"
	"gitlab.com/pnathan/kthsub/src/lib/log"
	"gitlab.com/pnathan/kthsub/src/lib/substrings"
)

// writeSubstrings lists every distinct substring in rank order, one per line.
func writeSubstrings(w io.Writer, set *findstrings.InternalSet) error {
	return set.View(func(s *substrings.Set) error {
		bw := bufio.NewWriter(w)
		for _, sub := range s.All() {
			if _, err := bw.WriteString(sub + "\n"); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
}

func main() {
	parser := argparse.NewParser("findstrings", "answers k-th distinct substring queries read from stdin")

	file := parser.String("f", "file", &argparse.Options{Required: false, Help: "file with the input; if not present, reads from stdin"})
	stats := parser.Flag("s", "stats", &argparse.Options{Required: false, Help: "log construction and query timings"})
	dump := parser.Flag("d", "dump", &argparse.Options{Required: false, Help: "write the trie to stderr once the queries are answered"})
	dumpSubstrings := parser.Flag("a", "dump-substrings", &argparse.Options{Required: false, Help: "write every distinct substring, in rank order, to stderr once the queries are answered"})
	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		return
	}
	defer log.Sync()

	var input io.Reader = os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatal("unable to read file", zap.String("filename", *file), zap.Error(err))
		}
		defer f.Close()
		input = f
	}

	set := findstrings.NewSet()
	report, err := batch.NewRunner().Run(input, os.Stdout, set)
	if err != nil {
		log.Fatal("malformed input", zap.Error(err))
	}

	if *stats {
		log.Info("run complete", append(report.Fields(), zap.Int("substrings", set.Size()))...)
	}
	if *dump {
		if err := set.View(func(s *substrings.Set) error { return s.Dump(os.Stderr) }); err != nil {
			log.Error("unable to dump trie", zap.Error(err))
		}
	}
	if *dumpSubstrings {
		if err := writeSubstrings(os.Stderr, set); err != nil {
			log.Error("unable to list substrings", zap.Error(err))
		}
	}
}
