package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackb/java-symtab/pkg/symtab"
)

var (
	fromFlag string
	inFlag   string
	kindFlag string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <simple-name>",
	Short: "Resolve a simple name against an indexed class hierarchy",
	Long: `Resolve a simple name as seen from an access context class.

Kinds:
  field   - member field lookup (declared or inherited)
  type    - member class lookup (declared or inherited)
  method  - all non-shadowed method candidates`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&fromFlag, "from", "", "canonical name of the access context class (required)")
	resolveCmd.Flags().StringVar(&inFlag, "in", "", "canonical name of the class to search (defaults to the access context)")
	resolveCmd.Flags().StringVar(&kindFlag, "kind", "field", "declaration kind to resolve (field, type, method)")
	resolveCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	name := args[0]

	p, err := loadSourcePath(cmd)
	if err != nil {
		return err
	}
	registry := p.Registry()

	access, ok := registry.ResolveFromCanonicalName(fromFlag)
	if !ok {
		return fmt.Errorf("access context class not found: %s", fromFlag)
	}
	searched := access
	if inFlag != "" {
		if searched, ok = registry.ResolveFromCanonicalName(inFlag); !ok {
			return fmt.Errorf("searched class not found: %s", inFlag)
		}
	}

	h := symtab.NewHierarchy()

	switch kindFlag {
	case "field":
		for _, f := range h.MemberFieldResolver(searched, access.Package, access, name).ResolveHere(name) {
			fmt.Printf("%s %s %s\n", f.Mods, f.Type, f)
		}
	case "type":
		for _, t := range h.MemberClassResolver(searched, access.Package, access, name).ResolveHere(name) {
			fmt.Printf("%s %s\n", t.Mods, t.CanonicalName())
		}
	case "method":
		for _, m := range h.OwnMethodResolver(searched).ResolveHere(name) {
			fmt.Printf("%s %s %s\n", m.Mods, m.Return, m)
		}
	default:
		return fmt.Errorf("unknown kind: %s", kindFlag)
	}
	return nil
}
