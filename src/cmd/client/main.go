package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/akamensky/argparse"
	"go.uber.org/zap"

	"gitlab.com/pnathan/kthsub/src/lib/batch"
	"gitlab.com/pnathan/kthsub/src/lib/findapi"
	"gitlab.com/pnathan/kthsub/src/lib/log"
)

func MustMarshal(v any) []byte {
	b := new(bytes.Buffer)
	encoder := json.NewEncoder(b)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(v)
	if err != nil {
		panic(err)
	}

	return b.Bytes()
}

func Moan(complaint error) {
	log.Fatal("", zap.Error(complaint))
	os.Exit(1)
}

func main() {
	parser := argparse.NewParser("client", "substring server client")

	endpoint := parser.String("e", "endpoint", &argparse.Options{Required: false, Help: "endpoint to address", Default: "http://localhost:1337"})

	insertCmd := parser.NewCommand("insert", "inserts strings, one per line")
	file := insertCmd.String("f", "file", &argparse.Options{Required: false, Help: "file with the strings; if not present, reads from stdin"})

	findCmd := parser.NewCommand("find", "prints the k-th distinct substring")
	order := findCmd.Int("k", "order", &argparse.Options{Required: true, Help: "1-indexed lexicographic rank"})

	statsCmd := parser.NewCommand("stats", "prints server statistics")

	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		return
	}

	if insertCmd.Happened() {
		var input io.Reader = os.Stdin
		if *file != "" {
			f, err := os.Open(*file)
			if err != nil {
				log.Fatal("unable to read file", zap.String("filename", *file), zap.Error(err))
			}
			defer f.Close()
			input = f
		}
		lines, err := batch.ReadLines(input)
		if err != nil {
			Moan(err)
		}
		resp, err := findapi.PutStrings(&findapi.InsertRequest{Strings: lines}, *endpoint)
		if err != nil {
			Moan(err)
		}
		fmt.Println(string(MustMarshal(resp)))
	} else if findCmd.Happened() {
		resp, err := findapi.GetSubstring(*order, *endpoint)
		if err != nil {
			Moan(err)
		}
		if resp.Found {
			fmt.Println(resp.Substring)
		} else {
			fmt.Println("INVALID")
		}
	} else if statsCmd.Happened() {
		stats, err := findapi.GetStatistics(*endpoint)
		if err != nil {
			Moan(err)
		}
		fmt.Println(string(MustMarshal(stats)))
	} else {
		Moan(fmt.Errorf("can't happen"))
	}
}
