package state

import "github.com/fieldpad/fieldpad/internal/page"

type PageStore interface {
	Title() string
	SetTitle(string)
	Token() string
	SetToken(string)
	Nodes() []*page.Node
	SetNodes([]*page.Node)
	Find(name string) *page.Node
	Apply(snapshot page.Page, skip string) bool
}

type pageStore struct {
	title string
	token string
	nodes []*page.Node
}

func NewPageStore(p page.Page) PageStore {
	return &pageStore{title: p.Title, token: p.Token, nodes: p.Nodes}
}

func (s *pageStore) Title() string { return s.title }

func (s *pageStore) SetTitle(title string) { s.title = title }

func (s *pageStore) Token() string { return s.token }

func (s *pageStore) SetToken(token string) { s.token = token }

func (s *pageStore) Nodes() []*page.Node {
	return cloneNodes(s.nodes)
}

func (s *pageStore) SetNodes(nodes []*page.Node) {
	s.nodes = cloneNodes(nodes)
}

func (s *pageStore) Find(name string) *page.Node {
	for _, n := range s.nodes {
		if n.Name == name {
			return n
		}
	}
	return nil
}

// Apply folds a freshly fetched snapshot into the store. The node named by
// skip keeps its current value and display so a refresh never clobbers the
// field being edited. Returns true when anything changed.
func (s *pageStore) Apply(snapshot page.Page, skip string) bool {
	changed := false
	if snapshot.Title != s.title {
		s.title = snapshot.Title
		changed = true
	}
	if snapshot.Token != "" && snapshot.Token != s.token {
		s.token = snapshot.Token
		changed = true
	}
	for _, incoming := range snapshot.Nodes {
		if incoming.Name == skip {
			continue
		}
		current := s.Find(incoming.Name)
		if current == nil {
			s.nodes = append(s.nodes, incoming)
			changed = true
			continue
		}
		if current.Value != incoming.Value || current.Display != incoming.Display {
			current.Value = incoming.Value
			current.Display = incoming.Display
			current.Options = incoming.Options
			changed = true
		}
	}
	return changed
}

func cloneNodes(nodes []*page.Node) []*page.Node {
	if len(nodes) == 0 {
		return nil
	}
	dup := make([]*page.Node, len(nodes))
	copy(dup, nodes)
	return dup
}
