// Package printer renders chartparse.Tree values as indented text, one
// node per line, with a lexical preterminal collapsed onto the same
// line as its terminal child. It is the external-collaborator "tree
// pretty-printer" named in spec.md §1 and §6, grounded directly on the
// historical reference's treestring.
package printer

import (
	"strings"

	"github.com/gitrdm/chartparse/pkg/chartparse"
)

// Sprint renders t starting at indentation depth 0. A node with
// exactly one leaf child is rendered on a single line as
// "parent child"; every other node is rendered on its own line,
// followed by its children indented one level deeper.
func Sprint(t chartparse.Tree) string {
	var b strings.Builder
	writeTree(&b, t, 0)
	return b.String()
}

func writeTree(b *strings.Builder, t chartparse.Tree, depth int) {
	if len(t.Children) == 1 && len(t.Children[0].Children) == 0 {
		b.WriteString(strings.Repeat(" ", depth))
		b.WriteString(t.Label.String())
		b.WriteByte(' ')
		b.WriteString(t.Children[0].Label.String())
		b.WriteByte('\n')
		return
	}
	b.WriteString(strings.Repeat(" ", depth))
	b.WriteString(t.Label.String())
	b.WriteByte('\n')
	for _, c := range t.Children {
		writeTree(b, c, depth+1)
	}
}
