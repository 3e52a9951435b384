// Package entrycard renders a single entry and exposes its edit and delete
// actions.
package entrycard

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/classroom/internal/client/models"
)

// ExcerptLines is the number of content lines shown on a card.
const ExcerptLines = 3

type Card struct {
	Entry    models.Entry
	OnEdit   func(id string)
	OnDelete func(id string)
}

// Render writes the card: id and title, date, then the content excerpt.
func (c Card) Render(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s\n", c.Entry.ID, c.Entry.Title)
	fmt.Fprintf(&b, "    %s\n", c.Entry.DisplayDate())
	for _, line := range Excerpt(c.Entry.Content, ExcerptLines) {
		fmt.Fprintf(&b, "    %s\n", line)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (c Card) Edit() {
	if c.OnEdit != nil {
		c.OnEdit(c.Entry.ID)
	}
}

func (c Card) Delete() {
	if c.OnDelete != nil {
		c.OnDelete(c.Entry.ID)
	}
}

// Excerpt returns at most n lines of content. When lines are cut, the last
// kept line ends with an ellipsis.
func Excerpt(content string, n int) []string {
	content = strings.TrimRight(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if content == "" || n <= 0 {
		return nil
	}
	lines := strings.Split(content, "\n")
	if len(lines) <= n {
		return lines
	}
	out := append([]string(nil), lines[:n]...)
	out[n-1] += " …"
	return out
}

// RenderAll renders cards separated by blank lines, or a placeholder when
// there are none.
func RenderAll(w io.Writer, cards []Card) error {
	if len(cards) == 0 {
		_, err := io.WriteString(w, "No entries yet.\n")
		return err
	}
	for i, c := range cards {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := c.Render(w); err != nil {
			return err
		}
	}
	return nil
}
