package tree

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strings"
)

type nodeids[K, V cmp.Ordered] struct {
	idTable map[*Full[K, V]]int
	max     int
}

func newtable[K, V cmp.Ordered]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*Full[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(node *Full[K, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, V]) alloc(node *Full[K, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Each node is labelled with key and priority. Empty children are drawn as
// small dots. A subtree which is reachable more than once is output once.
func ToDot[K, V cmp.Ordered](n Node[K, V], w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("strict digraph {\n")
	bw.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	emptyID := 0
	var visit func(f *Full[K, V]) int
	visit = func(f *Full[K, V]) int {
		if id := ids.find(f); id > 0 {
			return id
		}
		id := ids.alloc(f)
		fmt.Fprintf(bw, "\t\"%d\" [label=\"%s\\n%s\"%s];\n", id, dotEscape(f.key), dotEscape(f.priority),
			nodeDotStyles())
		for _, child := range [...]Node[K, V]{f.left, f.right} {
			if c, ok := full(child); ok {
				fmt.Fprintf(bw, "\t\"%d\" -> \"%d\";\n", id, visit(c))
				continue
			}
			emptyID--
			fmt.Fprintf(bw, "\t\"%d\" %s;\n", emptyID, emptyNode())
			fmt.Fprintf(bw, "\t\"%d\" -> \"%d\";\n", id, emptyID)
		}
		return id
	}
	if f, ok := full(n); ok {
		visit(f)
	}
	bw.WriteString("}\n")
	if err := bw.Flush(); err != nil {
		tracer().Errorf("treap DOT: %s", err.Error())
		return err
	}
	return nil
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", ``)

// dotEscape formats x for use within a quoted DOT string.
func dotEscape(x any) string {
	return dotEscaper.Replace(fmt.Sprint(x))
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point,width=.1]"
}

func nodeDotStyles() string {
	return ",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=ellipse"
}
