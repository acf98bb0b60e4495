package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pcj/mobyprogress"
	"github.com/spf13/cobra"

	"github.com/stackb/java-symtab/pkg/classpath"
	"github.com/stackb/java-symtab/pkg/provider"
)

var debugFlag bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Scan and parse the source path, then print the class index",
	RunE:  runIndex,
}

func init() {
	indexCmd.Flags().BoolVar(&debugFlag, "debug", false, "dump parsed class structures")
	rootCmd.AddCommand(indexCmd)
}

func loadSourcePath(cmd *cobra.Command) (*provider.SourceProvider, error) {
	logger := newLogger()

	var options []classpath.SourcePathOption
	if len(patternsFlag) > 0 {
		options = append(options, classpath.WithPatterns(patternsFlag...))
	}
	path, err := classpath.NewSourcePath(sourcePathFlag, options...)
	if err != nil {
		return nil, err
	}

	out := mobyprogress.NewProgressOutput(mobyprogress.NewOut(os.Stderr))
	p := provider.NewSourceProvider(logger, classpath.NewRegistry(), provider.WithProgress(out))
	if err := p.Load(cmd.Context(), path); err != nil {
		return nil, err
	}
	return p, nil
}

func runIndex(cmd *cobra.Command, args []string) error {
	p, err := loadSourcePath(cmd)
	if err != nil {
		return err
	}

	for _, c := range p.Registry().Classes() {
		fmt.Printf("%s (%d fields, %d methods, %d nested types)\n",
			c.CanonicalName(), len(c.DeclaredFields()), len(c.DeclaredMethods(nil)), len(c.DeclaredTypes()))
		if debugFlag {
			spew.Dump(c)
		}
	}

	fmt.Printf("indexed %d classes from %d files\n", p.Registry().Len(), len(p.Files()))
	return nil
}
