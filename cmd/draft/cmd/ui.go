package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	appui "github.com/OpenDraftLab/OpenDraft2D/internal/ui"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/draftfile"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/session"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/store"
)

var (
	uiFile    string
	uiLibrary string
	uiName    string
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the interactive drafting editor",
	Long: `Launch the drafting editor with graphical drawing tools, snapping,
dimensions, and undo/redo.

Examples:
  # Start with an empty drawing
  draft ui

  # Edit a .draft file; the save button writes back to it
  draft ui --file plate.draft

  # Edit a drawing stored in a library
  draft ui --library drawings.db --name bracket`,
	RunE: runUI,
}

func init() {
	uiCmd.Flags().StringVarP(&uiFile, "file", "f", "", ".draft file to open and save")
	uiCmd.Flags().StringVar(&uiLibrary, "library", "", "SQLite drawing library path")
	uiCmd.Flags().StringVar(&uiName, "name", "", "drawing name within the library")
	rootCmd.AddCommand(uiCmd)
}

func runUI(cmd *cobra.Command, args []string) error {
	if uiFile != "" && uiLibrary != "" {
		return fmt.Errorf("--file and --library are mutually exclusive")
	}
	if (uiLibrary == "") != (uiName == "") {
		return fmt.Errorf("--library and --name must be given together")
	}

	sess := session.New()
	var saveFunc func([]draft.Shape) error

	switch {
	case uiFile != "":
		shapes, err := loadShapes(uiFile)
		if err != nil {
			if verbose {
				fmt.Printf("starting empty: %v\n", err)
			}
		} else {
			sess.Load(shapes)
		}
		saveFunc = func(shapes []draft.Shape) error {
			return draftfile.WriteFile(uiFile, shapes)
		}

	case uiLibrary != "":
		lib, err := store.Open(uiLibrary)
		if err != nil {
			return err
		}
		// Held open for the lifetime of the editor.
		shapes, err := lib.Load(cmd.Context(), uiName)
		if err == nil {
			sess.Load(shapes)
		} else if verbose {
			fmt.Printf("starting empty: %v\n", err)
		}
		saveFunc = func(shapes []draft.Shape) error {
			return lib.Save(context.Background(), uiName, shapes)
		}
	}

	if verbose {
		fmt.Printf("Launching editor with %d shape(s)\n", sess.Set().Len())
	}
	return appui.Run(sess, saveFunc)
}
