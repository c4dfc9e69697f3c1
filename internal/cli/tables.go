package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/behrlich/cube/internal/kociemba"
	"github.com/behrlich/cube/internal/tables"
)

var (
	tablesTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	tablesLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	tablesValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("82"))
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Manage the kociemba solver's cached move/pruning tables",
}

var tablesBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the kociemba move/pruning tables and cache them on disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		db, err := tables.OpenDefault()
		if err != nil {
			return fmt.Errorf("failed to open table cache: %w", err)
		}
		defer db.Close()

		fmt.Println(tablesTitleStyle.Render("Building kociemba tables"))
		fmt.Printf("%s %s\n", tablesLabelStyle.Render("cache:"), db.Path())

		if !force {
			if _, ok, err := db.Load(); err != nil {
				return fmt.Errorf("failed to check cache: %w", err)
			} else if ok {
				fmt.Println(tablesValueStyle.Render("already cached; pass --force to rebuild"))
				return nil
			}
		}

		start := time.Now()
		t := kociemba.BuildTables()
		if err := db.Save(t); err != nil {
			return fmt.Errorf("failed to save tables: %w", err)
		}

		fmt.Printf("%s %s\n", tablesLabelStyle.Render("built in:"), tablesValueStyle.Render(time.Since(start).String()))
		return nil
	},
}

var tablesStatCmd = &cobra.Command{
	Use:   "stat",
	Short: "Report whether the kociemba tables are cached, and where",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := tables.OpenDefault()
		if err != nil {
			return fmt.Errorf("failed to open table cache: %w", err)
		}
		defer db.Close()

		_, ok, err := db.Load()
		if err != nil {
			return fmt.Errorf("failed to check cache: %w", err)
		}

		fmt.Printf("%s %s\n", tablesLabelStyle.Render("cache:"), db.Path())
		if ok {
			fmt.Println(tablesValueStyle.Render("cached"))
		} else {
			fmt.Println(tablesLabelStyle.Render("not built yet; run `cube tables build`"))
		}
		return nil
	},
}

func init() {
	tablesBuildCmd.Flags().Bool("force", false, "Rebuild even if tables are already cached")
	tablesCmd.AddCommand(tablesBuildCmd)
	tablesCmd.AddCommand(tablesStatCmd)
	rootCmd.AddCommand(tablesCmd)
}
