// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command morphstem is a small demo driver for the stemming package. It
// builds an in-memory dictionary from a "word\tlemma\ttag" text file and
// then stems whitespace-separated words read from stdin, one line of
// output per input word.
//
// Example usage:
//	$ morphstem -dict words.txt -scratch 4K < input.txt
//	werken -> werk/V
//	xyzzy -> (no match)
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dsnet/golib/strconv"

	"github.com/morfologik/stemming-go/internal/memfsa"
	"github.com/morfologik/stemming-go/stemming"
)

func main() {
	dictPath := flag.String("dict", "", "path to a word<TAB>lemma<TAB>tag dictionary source file")
	encoding := flag.String("encoding", "UTF-8", "dictionary charset: UTF-8 or ISO-8859-1")
	separator := flag.String("separator", "+", "record separator byte")
	usesPrefixes := flag.Bool("prefixes", false, "encode records using the prefix delta scheme")
	usesInfixes := flag.Bool("infixes", false, "encode records using the infix delta scheme")
	ignoreCase := flag.Bool("ignore-case", false, "fall back to a lowercased lookup on a miss")
	scratchSize := flag.String("scratch", "0", "decode scratch buffer size (accepts suffixes, e.g. 4K); the value is validated but does not change how lookups allocate")
	flag.Parse()

	if *dictPath == "" {
		log.Fatal("morphstem: -dict is required")
	}
	if len(*separator) != 1 {
		log.Fatal("morphstem: -separator must be exactly one byte")
	}

	scratchBytes, err := strconv.ParsePrefix(*scratchSize, strconv.AutoParse)
	if err != nil {
		log.Fatalf("morphstem: invalid -scratch value %q: %v", *scratchSize, err)
	}

	features, err := stemming.NewFeatures(*encoding, (*separator)[0], *usesPrefixes, *usesInfixes)
	if err != nil {
		log.Fatalf("morphstem: %v", err)
	}

	trie, err := loadDictionary(*dictPath, features)
	if err != nil {
		log.Fatalf("morphstem: %v", err)
	}

	lookup, err := stemming.NewLookup(trie.Root(), features)
	if err != nil {
		log.Fatalf("morphstem: %v", err)
	}
	_ = int(scratchBytes) // reserved for a future pre-sized decode buffer

	if err := runREPL(os.Stdin, os.Stdout, lookup, *ignoreCase); err != nil {
		log.Fatalf("morphstem: %v", err)
	}
}

// loadDictionary reads tab-separated word/lemma/tag triples from path,
// encodes each with the delta scheme features selects (infix, prefix or
// standard, see encoderFor), and inserts
// the whole batch into a fresh in-memory FSA in lexicographic order.
func loadDictionary(path string, features stemming.Features) (*memfsa.FSA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records [][]byte
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) != 3 {
			return nil, fmt.Errorf("malformed dictionary line: %q", line)
		}
		encoder := encoderFor(features)
		rec, err := encoder(cols[0], cols[1], cols[2], features)
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", line, err)
		}
		records = append(records, []byte(rec))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	trie := memfsa.New()
	trie.InsertSorted(records)
	return trie, nil
}

func encoderFor(f stemming.Features) func(form, lemma, tag string, f stemming.Features) (string, error) {
	switch {
	case f.UsesInfixes:
		return stemming.InfixEncode
	case f.UsesPrefixes:
		return stemming.PrefixEncode
	default:
		return stemming.StandardEncode
	}
}

func runREPL(in *os.File, out *os.File, lookup *stemming.Lookup, ignoreCase bool) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		word := sc.Text()
		forms, err := lookup.StemAndForm(word)
		if err != nil {
			return fmt.Errorf("stemming %q: %w", word, err)
		}
		if len(forms) == 0 && ignoreCase {
			lower := strings.ToLower(word)
			if lower != word {
				forms, err = lookup.StemAndForm(lower)
				if err != nil {
					return fmt.Errorf("stemming %q: %w", lower, err)
				}
			}
		}
		if len(forms) == 0 {
			fmt.Fprintf(w, "%s -> (no match)\n", word)
			continue
		}
		pairs := make([]string, 0, len(forms)/2)
		for i := 0; i+1 < len(forms); i += 2 {
			pairs = append(pairs, forms[i]+"/"+forms[i+1])
		}
		fmt.Fprintf(w, "%s -> %s\n", word, strings.Join(pairs, ", "))
	}
	return sc.Err()
}
