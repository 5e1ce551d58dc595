package producttype

import (
	"fmt"
	"strings"

	"printworks/internal/domain"
)

// Notes keeps the system annotation apart from what the user typed. They
// are joined only when rendered.
type Notes struct {
	Annotation string `json:"annotation"`
	Text       string `json:"text"`
}

func (n Notes) String() string {
	text := strings.TrimSpace(n.Text)
	if n.Annotation == "" {
		return text
	}
	if text == "" {
		return "[" + n.Annotation + "]"
	}
	return "[" + n.Annotation + "] " + text
}

func (n Notes) WithProductTypes(s Selection, pass domain.DtfPass) Notes {
	n.Annotation = FormatProductTypes(s, pass)
	return n
}

// SplitNotes separates the leading "[...]" annotation from the rest of a
// rendered note. Stacked annotations left by earlier edits are dropped too.
// Brackets anywhere else belong to the user.
func SplitNotes(notes string) Notes {
	var n Notes
	rest := strings.TrimSpace(notes)
	for strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 || !isAnnotation(rest[1:end]) {
			break
		}
		if n.Annotation == "" {
			n.Annotation = rest[1:end]
		}
		rest = strings.TrimSpace(rest[end+1:])
	}
	n.Text = rest
	return n
}

// isAnnotation accepts only text FormatProductTypes could have produced.
func isAnnotation(s string) bool {
	if s == "" {
		return false
	}
	sel, pass := ParseFormatted(s)
	return FormatProductTypes(sel, pass) == s
}

// UpdateNotesWithProductTypes replaces the product-type annotation at the
// start of notes and leaves the rest untouched. Applying it twice with the
// same selection gives the same result.
func UpdateNotesWithProductTypes(notes string, s Selection, pass domain.DtfPass) string {
	return SplitNotes(notes).WithProductTypes(s, pass).String()
}

// RepeatOrderNote is the line prefilled into the notes when an earlier order
// is repeated.
func RepeatOrderNote(r domain.RepeatOrder) string {
	line := fmt.Sprintf("REPEAT ORDER %s", r.SpkNumber)
	if !r.OrderDate.IsZero() {
		line += fmt.Sprintf(" (%s)", r.OrderDate.Format("2006-01-02"))
	}
	if details := strings.TrimSpace(r.Details); details != "" {
		line += ": " + details
	}
	return line
}

// PrependRepeatOrder puts the repeat-order line in front of the user text,
// replacing an earlier repeat line if one is there.
func PrependRepeatOrder(n Notes, r domain.RepeatOrder) Notes {
	text := n.Text
	if strings.HasPrefix(text, "REPEAT ORDER ") {
		if nl := strings.Index(text, "\n"); nl >= 0 {
			text = text[nl+1:]
		} else {
			text = ""
		}
	}
	line := RepeatOrderNote(r)
	if text == "" {
		n.Text = line
	} else {
		n.Text = line + "\n" + text
	}
	return n
}
