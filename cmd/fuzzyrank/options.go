package main

import (
	"os"
	"strconv"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"

	"github.com/fuzzyrank/fuzzyrank"
)

// options holds the parsed command-line configuration for one run of the
// demo CLI. Mirrors fzf's own options.go in spirit (flags parsed by hand,
// content-type name resolved to the engine's enum) without dragging in the
// terminal-UI half of that file.
type options struct {
	pattern        string
	contentType    fuzzyrank.ContentType
	thorough       bool
	maxResults     int
	influencers    []string
	candidatesFile string
}

const usage = `fuzzyrank - fuzzy code-completion matching and ranking demo

Usage: fuzzyrank [options] PATTERN

  -t, --content-type TYPE   symbol|file|project|unknown (default: symbol)
  -f, --fast                Use fast-precision scoring instead of thorough
  -n, --top N               Limit output to N results (default: 10)
  -i, --influence WORD      Add a contextual influencing identifier (repeatable)
      --candidates FILE     Read candidates from FILE, one per line (default: stdin)

FUZZYRANK_DEFAULT_OPTS, if set, is tokenized with shell-word splitting and
treated as a prefix to the given arguments, the same way fzf merges
FZF_DEFAULT_OPTS ahead of its own argv.
`

func parseOptions(argv []string) (*options, error) {
	merged, err := mergeDefaultOpts(argv)
	if err != nil {
		return nil, errors.Wrap(err, "parsing FUZZYRANK_DEFAULT_OPTS")
	}

	opts := &options{
		contentType: fuzzyrank.CodeCompletionSymbol,
		thorough:    true,
		maxResults:  10,
	}

	for i := 0; i < len(merged); i++ {
		arg := merged[i]
		switch {
		case arg == "-t" || arg == "--content-type":
			i++
			if i >= len(merged) {
				return nil, errors.New("--content-type requires a value")
			}
			ct, err := parseContentType(merged[i])
			if err != nil {
				return nil, err
			}
			opts.contentType = ct
		case arg == "-f" || arg == "--fast":
			opts.thorough = false
		case arg == "-n" || arg == "--top":
			i++
			if i >= len(merged) {
				return nil, errors.New("--top requires a value")
			}
			n, err := strconv.Atoi(merged[i])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid --top value %q", merged[i])
			}
			opts.maxResults = n
		case arg == "-i" || arg == "--influence":
			i++
			if i >= len(merged) {
				return nil, errors.New("--influence requires a value")
			}
			opts.influencers = append(opts.influencers, merged[i])
		case arg == "--candidates":
			i++
			if i >= len(merged) {
				return nil, errors.New("--candidates requires a value")
			}
			opts.candidatesFile = merged[i]
		case arg == "-h" || arg == "--help":
			return nil, errors.New(usage)
		default:
			if opts.pattern != "" {
				return nil, errors.Errorf("unexpected extra argument: %s", arg)
			}
			opts.pattern = arg
		}
	}

	return opts, nil
}

func mergeDefaultOpts(argv []string) ([]string, error) {
	defaultOpts := os.Getenv("FUZZYRANK_DEFAULT_OPTS")
	if defaultOpts == "" {
		return argv, nil
	}
	tokens, err := shellwords.Parse(defaultOpts)
	if err != nil {
		return nil, err
	}
	return append(tokens, argv...), nil
}

func parseContentType(name string) (fuzzyrank.ContentType, error) {
	switch name {
	case "symbol":
		return fuzzyrank.CodeCompletionSymbol, nil
	case "file":
		return fuzzyrank.FileName, nil
	case "project":
		return fuzzyrank.ProjectSymbol, nil
	case "unknown":
		return fuzzyrank.Unknown, nil
	default:
		return fuzzyrank.Unknown, errors.Errorf("unknown content type: %s (expected: symbol|file|project|unknown)", name)
	}
}
