package handlers

import "github.com/atomicstack/servarr-tui/internal/route"

// Node is a handler definition within the registry tree. A node accepts a
// route when it owns it or any child does; children take precedence.
type Node struct {
	Name     string
	Blocks   route.Set
	Build    func(*Env) Handler
	Children []*Node
}

// Owns reports whether the node itself handles r.
func (n *Node) Owns(r route.Route) bool {
	return n.Blocks.Contains(r.Block)
}

// Accepts reports whether the node or a descendant handles r.
func (n *Node) Accepts(r route.Route) bool {
	if n.Owns(r) {
		return true
	}
	for _, child := range n.Children {
		if child.Accepts(r) {
			return true
		}
	}
	return false
}

// resolve forwards to the first accepting child, falling back to n.
func (n *Node) resolve(r route.Route) *Node {
	for _, child := range n.Children {
		if child.Accepts(r) {
			return child.resolve(r)
		}
	}
	return n
}

// Registry exposes lookup utilities for handler definitions.
type Registry struct {
	root  *Node
	nodes map[string]*Node
}

// BuildRegistry assembles the handler tree for every view family.
func BuildRegistry() *Registry {
	root := &Node{
		Name:  "app",
		Build: func(env *Env) Handler { return defaultHandler{base{env}} },
		Children: []*Node{
			{
				Name:   "library",
				Blocks: route.LibraryBlocks,
				Build:  newLibraryHandler,
				Children: []*Node{
					{Name: "delete-series", Blocks: route.DeleteSeriesBlocks, Build: newDeleteSeriesHandler},
					{Name: "edit-series", Blocks: route.EditSeriesBlocks, Build: newEditSeriesHandler},
					{Name: "series-details", Blocks: route.SeriesDetailsBlocks, Build: newSeriesDetailsHandler},
				},
			},
			{Name: "downloads", Blocks: route.DownloadsBlocks, Build: newDownloadsHandler},
			{Name: "blocklist", Blocks: route.BlocklistBlocks, Build: newBlocklistHandler},
			{Name: "history", Blocks: route.HistoryBlocks, Build: newHistoryHandler},
			{Name: "root-folders", Blocks: route.RootFoldersBlocks, Build: newRootFoldersHandler},
			{
				Name:   "indexers",
				Blocks: route.IndexersBlocks,
				Build:  newIndexersHandler,
				Children: []*Node{
					{Name: "edit-indexer", Blocks: route.EditIndexerBlocks, Build: newEditIndexerHandler},
					{Name: "indexer-settings", Blocks: route.IndexerSettingsBlocks, Build: newIndexerSettingsHandler},
				},
			},
			{
				Name:   "system",
				Blocks: route.SystemBlocks,
				Build:  newSystemHandler,
				Children: []*Node{
					{Name: "system-details", Blocks: route.SystemDetailsBlocks, Build: newSystemDetailsHandler},
				},
			},
		},
	}
	nodes := make(map[string]*Node)
	var walk func(*Node)
	walk = func(n *Node) {
		nodes[n.Name] = n
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return &Registry{root: root, nodes: nodes}
}

// Root returns the registry root node.
func (r *Registry) Root() *Node {
	return r.root
}

// Resolve returns the single node handling rt. Routes nobody owns go to
// the root, whose handler does nothing.
func (r *Registry) Resolve(rt route.Route) *Node {
	return r.root.resolve(rt)
}

// Owners lists every node that itself owns rt.
func (r *Registry) Owners(rt route.Route) []*Node {
	var out []*Node
	for _, n := range r.nodes {
		if n.Owns(rt) {
			out = append(out, n)
		}
	}
	return out
}
