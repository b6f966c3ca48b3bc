package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/edittree"
)

type nodeids struct {
	idTable map[edittree.Displayable]int
	max     int
}

func newtable() *nodeids {
	return &nodeids{
		idTable: make(map[edittree.Displayable]int),
		max:     1,
	}
}

func (ids *nodeids) alloc(node edittree.Displayable) int {
	if id := ids.idTable[node]; id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// placeholder allocates an ID for an absent child.
func (ids *nodeids) placeholder() int {
	ids.max++
	return ids.max - 1
}

// Dot outputs the structure of a tree in Graphviz DOT format (for debugging
// purposes). Nodes are labeled with their character, rank and balance tag
// and are colored by balance tag. A node with a single child gets an empty
// placeholder for the missing child, to make left and right tell apart.
//
// Displayable values must be comparable, as they serve as node identities.
func Dot(w io.Writer, tree edittree.DisplayableTree) error {
	var sb strings.Builder
	sb.WriteString("strict digraph {\n")
	sb.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	if tree != nil && tree.RootNode() != nil {
		ids := newtable()
		var nodelist, edgelist strings.Builder
		var visit func(n edittree.Displayable)
		visit = func(n edittree.Displayable) {
			ID := ids.alloc(n)
			label := fmt.Sprintf("%s\\n%s %s", dotEscape(printable(n.ElementString())),
				n.RankString(), dotEscape(n.BalanceString()))
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
			if !n.HasLeft() && !n.HasRight() {
				return
			}
			for _, child := range []struct {
				present bool
				node    func() edittree.Displayable
			}{{n.HasLeft(), n.Left}, {n.HasRight(), n.Right}} {
				if !child.present {
					nilid := ids.placeholder()
					fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
					fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
					continue
				}
				c := child.node()
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(c))
				visit(c)
			}
		}
		visit(tree.RootNode())
		sb.WriteString(nodelist.String())
		sb.WriteString(edgelist.String())
		tracer().Debugf("tree DOT: %d nodes", len(ids.idTable))
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(node edittree.Displayable) string {
	s := ",style=filled,color=black,shape=circle"
	s += fmt.Sprintf(",fillcolor=\"%s\"", balanceColors[node.BalanceString()])
	return s
}

var balanceColors = map[string]string{
	"=":  "white",
	"/":  "#CCDDFF",
	"\\": "#FFDDCC",
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dotEscape(s string) string {
	return dotEscaper.Replace(s)
}
