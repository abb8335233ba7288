// Command fuzzyrank is a small demonstration CLI around the fuzzyrank
// engine: it reads a newline-delimited candidate list, matches and ranks
// them against a pattern, and prints the winners. It exists to exercise
// the library's external interface end to end, the way fzf's own main.go
// is a thin driver over src.Run.
package main

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"github.com/pkg/errors"

	"github.com/fuzzyrank/fuzzyrank"
	"github.com/fuzzyrank/fuzzyrank/algo"
)

func main() {
	correlationID := uuid.New().String()
	logger := newLogger(correlationID)
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
}

func run(argv []string, in *os.File, out *os.File, logger Logger) error {
	opts, err := parseOptions(argv)
	if err != nil {
		return err
	}
	if opts.pattern == "" {
		return errors.New("a pattern argument is required")
	}

	candidatesReader := in
	if opts.candidatesFile != "" {
		f, err := os.Open(opts.candidatesFile)
		if err != nil {
			return errors.Wrapf(err, "opening %s", opts.candidatesFile)
		}
		defer f.Close()
		candidatesReader = f
	}

	batch := fuzzyrank.NewCandidateBatch(4096)
	scanner := bufio.NewScanner(candidatesReader)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		name, contentType := splitCandidateLine(line, opts.contentType)
		batch.Append([]byte(name), contentType)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading candidates")
	}
	logger.Infof("loaded %d candidates", batch.Len())

	started := time.Now()

	pattern := fuzzyrank.NewPattern(opts.pattern)
	precision := algo.Thorough
	if !opts.thorough {
		precision = algo.Fast
	}

	batches := []*fuzzyrank.CandidateBatch{batch}
	selector := fuzzyrank.NewScoredMatchSelector(batches)
	rawMatches := selector.ScoredMatches(pattern, precision)

	matches := make([]fuzzyrank.Match, len(rawMatches))
	for i, rm := range rawMatches {
		candidate := batch.CandidateAt(rm.CandidateIndex)
		matches[i] = fuzzyrank.Match{
			Identifier:     string(candidate.Bytes),
			BatchIndex:     rm.BatchIndex,
			CandidateIndex: rm.CandidateIndex,
			Score:          fuzzyrank.CompletionScore{TextComponent: rm.TextScore, SemanticComponent: 1},
		}
	}

	var influencers [][]string
	if len(opts.influencers) > 0 {
		influencers = fuzzyrank.TokenizeInfluencing(opts.influencers, true)
	}

	collator := fuzzyrank.NewMatchCollator()
	selection := collator.SelectBestMatches(matches, batches, pattern, influencers, nil, 0)
	if opts.maxResults > 0 && len(selection.Matches) > opts.maxResults {
		selection.Matches = selection.Matches[:opts.maxResults]
	}
	if len(selection.Matches) == 0 {
		logger.Warnf("no candidates matched %q", opts.pattern)
	}
	logger.Infof("precision=%v matches=%d took=%s", selection.Precision, len(selection.Matches), durafmt.Parse(time.Since(started)).String())

	printResults(out, selection)
	return nil
}

// splitCandidateLine recognizes the "name\tcontentType" form, falling back
// to the batch's default content type when no tab-separated tag is present.
func splitCandidateLine(line string, fallback fuzzyrank.ContentType) (string, fuzzyrank.ContentType) {
	if idx := strings.LastIndexByte(line, '\t'); idx >= 0 {
		if ct, err := parseContentType(line[idx+1:]); err == nil {
			return line[:idx], ct
		}
	}
	return line, fallback
}
