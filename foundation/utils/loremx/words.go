// File: words.go
// Title: Lorem Ipsum Vocabulary
// Description: Fixed Latin vocabulary for the placeholder text generator.
//              Repeated entries are kept; they weight the draw.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package loremx

var vocabulary = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et",
	"dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam", "quis",
	"nostrud", "exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea",
	"commodo", "consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate",
	"velit", "esse", "cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint",
	"occaecat", "cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia",
	"deserunt", "mollit", "anim", "id", "est", "laborum", "et", "aut",
	"unde", "omnis", "iste", "natus", "error", "accusantium", "doloremque", "laudantium",
	"totam", "rem", "aperiam", "eaque", "ipsa", "quae", "ab", "illo",
	"inventore", "veritatis", "quasi", "architecto", "beatae", "vitae", "dicta", "explicabo",
	"nemo", "ipsam", "quia", "voluptas", "aspernatur", "odit", "fugit", "sed",
	"quia", "consequuntur", "magni", "dolores", "eos", "qui", "ratione", "sequi",
	"nesciunt", "neque", "porro", "quisquam", "dolorem", "adipisci", "numquam", "eius",
	"modi", "tempora", "incidunt", "magnam", "quam", "nihil", "molestiae",
}

// Vocabulary returns a copy of the word list
func Vocabulary() []string {
	words := make([]string, len(vocabulary))
	copy(words, vocabulary)
	return words
}
