package main

import (
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/OpenDraftLab/OpenDraft2D/cmd/draft/cmd"
)

func main() {
	cmd.Execute()
}
