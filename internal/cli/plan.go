package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/patihq/pati/internal/plan"
)

var (
	planExportHTML string
	planShowID     string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show saved party plans",
	Long:  "Show the most recent saved party plan, list all saved plans, or export one to HTML.",
	RunE:  runPlan,
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved plans",
	RunE:  runPlanList,
}

func runPlan(cmd *cobra.Command, args []string) error {
	store, err := plan.NewStore()
	if err != nil {
		return err
	}

	var id, content string
	if planShowID != "" {
		id = planShowID
		content, err = store.Load(id)
	} else {
		id, content, err = store.Latest()
	}
	if errors.Is(err, plan.ErrNoPlans) {
		return fmt.Errorf("no saved plans yet. Run `pati chat` to create one")
	}
	if err != nil {
		return err
	}

	if planExportHTML != "" {
		if err := plan.NewExporter().ExportFile(id, content, planExportHTML); err != nil {
			return err
		}
		fmt.Printf("📄 exported %s to %s\n", id, planExportHTML)
		return nil
	}

	fmt.Print(content)
	return nil
}

func runPlanList(cmd *cobra.Command, args []string) error {
	store, err := plan.NewStore()
	if err != nil {
		return err
	}
	ids, err := store.List()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, "no saved plans yet")
		return nil
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func init() {
	planCmd.Flags().StringVar(&planShowID, "id", "", "show a specific plan instead of the latest")
	planCmd.Flags().StringVar(&planExportHTML, "export-html", "", "write the plan as a standalone HTML file")
	planCmd.AddCommand(planListCmd)
	rootCmd.AddCommand(planCmd)
}
