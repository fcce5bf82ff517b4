package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagCategory string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	Long: `Shows the projects of the portfolio, optionally filtered by category.

Examples:
  folio projects
  folio projects --category "UI/UX Design"`,
	Run: runProjects,
}

func init() {
	projectsCmd.Flags().StringVar(&flagCategory, "category", "All", "Category to list")
}

func runProjects(_ *cobra.Command, _ []string) {
	portfolio := mustContent()
	projects := portfolio.ProjectsIn(flagCategory)

	if len(projects) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no projects in category %q\n", flagCategory)
		fmt.Fprintf(os.Stderr, "Categories: %s\n", strings.Join(portfolio.Categories(), ", "))
		os.Exit(1)
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	maxCatLen := 8
	for _, p := range projects {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxCatLen = max(maxCatLen, len(p.Category))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxCatLen, "Category", "Title")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxCatLen, "--------", "-----")

	for _, p := range projects {
		title := p.Title
		if p.Featured {
			title += " *"
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, p.ID, maxCatLen, p.Category, title)
	}

	fmt.Println()
	fmt.Println("* featured on the home page")
}
