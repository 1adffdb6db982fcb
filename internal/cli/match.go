package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/t14raptor/go-match/ast"
	"github.com/t14raptor/go-match/generator"
	"github.com/t14raptor/go-match/matcher"
	"github.com/t14raptor/go-match/parser"
)

func newMatchCmd(cfg Config) *cobra.Command {
	var (
		patterns []string
		input    string
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match a YAML or JSON value against patterns",
		Long: `Match reads one YAML or JSON document and tries each --pattern in order.
The first pattern that matches is printed with its bindings. The command fails
when no pattern matches.`,
		Example: `  echo '{name: Foo, age: 29}' | gomatch match --pattern '{age: 30..}' --pattern 'name: String => n'`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(patterns) == 0 {
				return errors.New("at least one --pattern is required")
			}

			v, err := readValue(cmd, input)
			if err != nil {
				return err
			}

			arms := make([]matcher.Arm, len(patterns))
			parsed := make([]ast.Pattern, len(patterns))
			for i, src := range patterns {
				p, err := parser.ParsePattern(src)
				if err != nil {
					return fmt.Errorf("pattern %d: %w", i, err)
				}
				parsed[i] = p
				arms[i] = matcher.In(p, nil)
			}

			idx, bindings, err := matcher.New(matcher.WithLogger(cfg.Logger)).Match(v, arms...)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), idx, generator.Generate(parsed[idx]), bindings)
		},
	}

	cmd.Flags().StringArrayVarP(&patterns, "pattern", "p", nil, "pattern to try, in order (repeatable)")
	cmd.Flags().StringVarP(&input, "input", "i", "-", "file to read the value from, - for stdin")

	return cmd
}

func readValue(cmd *cobra.Command, input string) (any, error) {
	var r io.Reader = cmd.InOrStdin()
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty input")
		}
		return nil, fmt.Errorf("decode input: %w", err)
	}

	return fromNode(&doc)
}

func writeResult(w io.Writer, idx int, pattern string, bindings matcher.Bindings) error {
	b := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range sortedNames(bindings) {
		vn, err := toNode(bindings[name])
		if err != nil {
			return err
		}
		b.Content = append(b.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: name}, vn)
	}

	out := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "arm"}, {Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(idx)},
		{Kind: yaml.ScalarNode, Value: "pattern"}, {Kind: yaml.ScalarNode, Tag: "!!str", Value: pattern},
		{Kind: yaml.ScalarNode, Value: "bindings"}, b,
	}}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}

func sortedNames(b matcher.Bindings) []string {
	names := lo.Keys(b)
	slices.Sort(names)
	return names
}
