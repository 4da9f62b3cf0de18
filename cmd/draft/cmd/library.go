package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draftfile"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/store"
)

var libraryDB string

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Manage the SQLite drawing library",
	Long: `Store, retrieve, and list named drawings in a SQLite library file.

Examples:
  draft library save bracket plate.draft
  draft library load bracket out.draft
  draft library list
  draft library delete bracket`,
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored drawings",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := store.Open(libraryDB)
		if err != nil {
			return err
		}
		defer lib.Close()

		entries, err := lib.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("library is empty")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%-24s %4d shape(s)  %s\n", e.Name, e.ShapeCount, e.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <name> <file.draft>",
	Short: "Store a .draft file under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		shapes, err := loadShapes(args[1])
		if err != nil {
			return err
		}
		lib, err := store.Open(libraryDB)
		if err != nil {
			return err
		}
		defer lib.Close()

		if err := lib.Save(cmd.Context(), args[0], shapes); err != nil {
			return err
		}
		fmt.Printf("saved %q (%d shapes)\n", args[0], len(shapes))
		return nil
	},
}

var libraryLoadCmd = &cobra.Command{
	Use:   "load <name> [out.draft]",
	Short: "Write a stored drawing to a file or stdout",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := store.Open(libraryDB)
		if err != nil {
			return err
		}
		defer lib.Close()

		shapes, err := lib.Load(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(args) == 2 {
			if err := draftfile.WriteFile(args[1], shapes); err != nil {
				return err
			}
			fmt.Printf("wrote %q (%d shapes) to %s\n", args[0], len(shapes), args[1])
			return nil
		}
		return draftfile.Encode(os.Stdout, shapes)
	},
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a stored drawing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := store.Open(libraryDB)
		if err != nil {
			return err
		}
		defer lib.Close()

		if err := lib.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %q\n", args[0])
		return nil
	},
}

func init() {
	libraryCmd.PersistentFlags().StringVar(&libraryDB, "db", "drawings.db", "library database path")
	libraryCmd.AddCommand(libraryListCmd, librarySaveCmd, libraryLoadCmd, libraryDeleteCmd)
	rootCmd.AddCommand(libraryCmd)
}
