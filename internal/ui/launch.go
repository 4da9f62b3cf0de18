package ui

import (
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/OpenDraftLab/OpenDraft2D/pkg/draft"
	"github.com/OpenDraftLab/OpenDraft2D/pkg/session"
)

// Run launches the Gio editor and blocks until the window closes.
// saveFunc may be nil to run without a save button.
func Run(sess *session.Session, saveFunc func([]draft.Shape) error) error {
	if sess == nil {
		sess = session.New()
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("OpenDraft2D"), app.Size(unit.Dp(1024), unit.Dp(720)))
		ed := NewEditor(w, sess)
		ed.SaveFunc = saveFunc
		if err := ed.Run(); err != nil {
			log.Printf("ui: %v", err)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
