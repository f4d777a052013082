package recycler

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/recycler/pkg/dom"
)

// Bucket keys for non-element nodes.
const (
	TextKey    = dom.TextNodeName
	CommentKey = dom.CommentNodeName
)

// forgetter is implemented by hosts that keep per-node bookkeeping which
// must be released when a node leaves the pool for good.
type forgetter interface {
	Forget(n dom.Node)
}

// Pool hands out recycled host nodes.
type Pool struct {
	doc          dom.Document
	logger       *slog.Logger
	metrics      *Metrics
	tracer       trace.Tracer
	maxPerBucket int

	mu      sync.Mutex
	buckets map[string][]*Node
	counts  map[string]*BucketStats
}

// New creates an empty pool over doc.
func New(doc dom.Document, opts ...Option) *Pool {
	p := &Pool{
		doc:     doc,
		logger:  slog.Default(),
		buckets: make(map[string][]*Node),
		counts:  make(map[string]*BucketStats),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Document returns the host document the pool creates nodes with.
func (p *Pool) Document() dom.Document { return p.doc }

// Create returns an element named tagName.
func (p *Pool) Create(tagName string) *Node {
	name := strings.ToUpper(tagName)
	if n := p.pop(name); n != nil {
		return n
	}
	return attach(p.doc.CreateElement(name), marker{})
}

// CreateNS returns an element named tagName in namespaceURI. The host node
// keeps tagName's case, since namespaced vocabularies like SVG are case
// sensitive. Fresh nodes are marked with the namespace so Collect files them
// under the same key.
func (p *Pool) CreateNS(tagName, namespaceURI string) *Node {
	if n := p.pop(strings.ToUpper(tagName) + namespaceURI); n != nil {
		return n
	}
	host := p.doc.CreateElementNS(namespaceURI, tagName)
	return attach(host, marker{ns: namespaceURI, hasNS: true})
}

// CreateText returns a text node holding text.
func (p *Pool) CreateText(text string) *Node {
	if n := p.pop(TextKey); n != nil {
		n.host.SetNodeValue(text)
		return n
	}
	return attach(p.doc.CreateTextNode(text), marker{})
}

// CreateComment returns a comment node holding text.
func (p *Pool) CreateComment(text string) *Node {
	if n := p.pop(CommentKey); n != nil {
		n.host.SetNodeValue(text)
		return n
	}
	return attach(p.doc.CreateComment(text), marker{})
}

// Collect recycles the subtree rooted at root. See CollectContext.
func (p *Pool) Collect(root *Node) {
	p.CollectContext(context.Background(), root)
}

// CollectContext detaches root from its parent, then walks the subtree
// depth-first: every child is removed from the host tree and collected
// before its parent is cleaned and filed into its bucket.
//
// The context only carries the trace; collection cannot be cancelled.
func (p *Pool) CollectContext(ctx context.Context, root *Node) {
	if root == nil {
		return
	}
	if parent := root.host.ParentNode(); parent != nil {
		parent.RemoveChild(root.host)
	}
	if p.tracer == nil {
		p.collect(root)
		return
	}
	_, span := p.tracer.Start(ctx, "recycler.collect",
		trace.WithAttributes(attribute.String("recycler.root", root.Key())))
	count := p.collect(root)
	span.SetAttributes(attribute.Int("recycler.nodes", count))
	span.End()
}

func (p *Pool) collect(n *Node) int {
	count := 1
	for c := n.host.LastChild(); c != nil; c = n.host.LastChild() {
		n.host.RemoveChild(c)
		count += p.collect(NodeOf(c))
	}
	n.reset()
	p.push(n.Key(), n, false)
	return count
}

// Prewarm fills the bucket for tagName with fresh elements until it holds
// at least count nodes.
func (p *Pool) Prewarm(tagName string, count int) {
	name := strings.ToUpper(tagName)
	p.prewarm(name, count, func() *Node {
		return attach(p.doc.CreateElement(name), marker{})
	})
}

// PrewarmNS is Prewarm for namespaced elements.
func (p *Pool) PrewarmNS(tagName, namespaceURI string, count int) {
	p.prewarm(strings.ToUpper(tagName)+namespaceURI, count, func() *Node {
		host := p.doc.CreateElementNS(namespaceURI, tagName)
		return attach(host, marker{ns: namespaceURI, hasNS: true})
	})
}

func (p *Pool) prewarm(key string, count int, create func() *Node) {
	if p.maxPerBucket > 0 && count > p.maxPerBucket {
		count = p.maxPerBucket
	}
	need := count - p.Len(key)
	for i := 0; i < need; i++ {
		p.push(key, create(), true)
	}
	if need > 0 {
		p.logger.Debug("recycler: prewarmed bucket", "bucket", key, "nodes", need)
	}
}

// Len returns the number of idle nodes under key.
func (p *Pool) Len(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[key])
}

// Keys returns the bucket keys in sorted order.
func (p *Pool) Keys() []string {
	p.mu.Lock()
	keys := make([]string, 0, len(p.buckets))
	for k := range p.buckets {
		keys = append(keys, k)
	}
	p.mu.Unlock()
	sort.Strings(keys)
	return keys
}

// Reset drops every idle node. Counters are kept.
func (p *Pool) Reset() {
	p.mu.Lock()
	buckets := p.buckets
	p.buckets = make(map[string][]*Node)
	p.mu.Unlock()

	f, _ := p.doc.(forgetter)
	for key, list := range buckets {
		p.metrics.setIdle(key, 0)
		for _, n := range list {
			n.marker.idle = false
			if f != nil {
				f.Forget(n.host)
			}
		}
	}
}

func (p *Pool) pop(key string) *Node {
	p.mu.Lock()
	st := p.stats(key)
	list := p.buckets[key]
	if len(list) == 0 {
		st.Misses++
		p.mu.Unlock()
		p.metrics.miss(key)
		return nil
	}
	n := list[len(list)-1]
	list[len(list)-1] = nil
	p.buckets[key] = list[:len(list)-1]
	n.marker.idle = false
	st.Hits++
	p.mu.Unlock()

	p.metrics.hit(key)
	return n
}

// push files n under key. Prewarmed nodes are counted apart from collected
// ones.
func (p *Pool) push(key string, n *Node, prewarmed bool) {
	p.mu.Lock()
	if n.marker.idle {
		p.mu.Unlock()
		p.logger.Debug("recycler: node already pooled", "bucket", key)
		return
	}
	st := p.stats(key)
	list, ok := p.buckets[key]
	if p.maxPerBucket > 0 && len(list) >= p.maxPerBucket {
		st.Dropped++
		p.mu.Unlock()
		p.metrics.drop(key)
		p.logger.Debug("recycler: bucket full, dropping node", "bucket", key, "max", p.maxPerBucket)
		if f, ok := p.doc.(forgetter); ok {
			f.Forget(n.host)
		}
		return
	}
	n.marker.idle = true
	p.buckets[key] = append(list, n)
	if prewarmed {
		st.Prewarmed++
	} else {
		st.Collected++
	}
	p.mu.Unlock()

	if !ok {
		p.logger.Debug("recycler: new bucket", "bucket", key)
	}
	if prewarmed {
		p.metrics.prewarm(key)
	} else {
		p.metrics.collect(key)
	}
}

// stats must be called with p.mu held.
func (p *Pool) stats(key string) *BucketStats {
	st, ok := p.counts[key]
	if !ok {
		st = &BucketStats{}
		p.counts[key] = st
	}
	return st
}
