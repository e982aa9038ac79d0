package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/ffusco/turni/internal/ai"
	"github.com/ffusco/turni/internal/config"
	"github.com/ffusco/turni/internal/store"
	"github.com/ffusco/turni/internal/tui"
	"github.com/ffusco/turni/internal/util"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	dataRoot := util.DataDir(config.AppName)
	_ = os.MkdirAll(dataRoot, 0o755)

	kv, err := store.OpenSQLiteKV(ctx, filepath.Join(dataRoot, config.DBFileName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	st := store.Open(ctx, kv)
	client := ai.NewClient(os.Getenv("GEMINI_API_KEY"))

	p := tea.NewProgram(tui.NewModel(ctx, st, client), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
