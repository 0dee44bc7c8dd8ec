// Package astdump renders a generated statement's production tree as
// GraphML, grounded on original_source/dump.hh's graphml_dumper, using
// encoding/xml rather than hand-rolled string building since the
// teacher's pack uses struct-tagged marshaling wherever it emits
// structured text (BurntSushi/toml's struct tags, tidb's ast/format
// package).
package astdump

import (
	"encoding/xml"
	"fmt"
	"io"
	"reflect"

	"github.com/trueeyu/sqlsmith/internal/prod"
)

type graphmlNode struct {
	ID   string `xml:"id,attr"`
	Data string `xml:"data"`
}

type graphmlEdge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

type graphmlGraph struct {
	XMLName xml.Name      `xml:"graph"`
	EdgeDef string        `xml:"edgedefault,attr"`
	Nodes   []graphmlNode `xml:"node"`
	Edges   []graphmlEdge `xml:"edge"`
}

type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	Graph   graphmlGraph `xml:"graph"`
}

// dumper is a prod.Visitor that records one GraphML node per production
// it visits, plus a parent-child edge discovered via the Parent()
// accessor prod.Base exposes.
type dumper struct {
	graph graphmlGraph
	ids   map[prod.Node]string
	next  int
}

func (d *dumper) id(n prod.Node) string {
	if id, ok := d.ids[n]; ok {
		return id
	}
	id := fmt.Sprintf("n%d", d.next)
	d.next++
	d.ids[n] = id
	return id
}

func (d *dumper) Visit(n prod.Node) {
	id := d.id(n)
	d.graph.Nodes = append(d.graph.Nodes, graphmlNode{ID: id, Data: reflect.TypeOf(n).String()})

	if parented, ok := n.(interface{ Parent() prod.Node }); ok {
		if p := parented.Parent(); p != nil {
			d.graph.Edges = append(d.graph.Edges, graphmlEdge{Source: d.id(p), Target: id})
		}
	}
}

// Dump walks root's production tree and writes it as GraphML to w.
func Dump(w io.Writer, root prod.Node) error {
	d := &dumper{graph: graphmlGraph{EdgeDef: "directed"}, ids: make(map[prod.Node]string)}
	root.Accept(d)

	doc := graphmlDoc{Graph: d.graph}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("astdump: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
