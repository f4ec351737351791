package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"steady/internal/models"
)

type NoteAddCmd struct {
	Text []string `arg:"" help:"The note text."`
}

func (c *NoteAddCmd) Run(ctx *Context) error {
	note := models.Note{
		ID:        uuid.NewString(),
		Text:      strings.Join(c.Text, " "),
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddNote(note); err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	fmt.Println("Note saved.")
	return nil
}

type NoteListCmd struct{}

func (c *NoteListCmd) Run(ctx *Context) error {
	notes, err := ctx.Store.GetNotes()
	if err != nil {
		return err
	}

	if len(notes) == 0 {
		fmt.Println("No notes yet.")
		return nil
	}

	for _, note := range notes {
		fmt.Printf("  %s  %s\n", note.CreatedAt.Format("2006-01-02 15:04"), note.Text)
	}
	return nil
}
