package rag

import (
	"fmt"
	"strings"
)

// CitationFormatter appends a human-readable source listing to an answer.
type CitationFormatter struct{}

// NewCitationFormatter creates a citation formatter.
func NewCitationFormatter() *CitationFormatter {
	return &CitationFormatter{}
}

// Format returns the answer followed by a "Nguồn:" section listing each
// passage on its own line, in retrieval order.
func (f *CitationFormatter) Format(answer string, passages []string) string {
	var b strings.Builder
	b.WriteString(answer)
	b.WriteString("\nNguồn:\n")
	for i, passage := range passages {
		fmt.Fprintf(&b, "Đoạn %d: %s\n", i+1, passage)
	}
	return b.String()
}
