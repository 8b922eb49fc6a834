package oracle

import (
	"sync"

	"github.com/beerpath/burp/csr"
)

// OracleCollection maps POI id to Oracle, the unit persisted and served
// together as one collection file.
type OracleCollection struct {
	mu      sync.RWMutex
	oracles map[int]*Oracle
}

// NewOracleCollection returns an empty collection.
func NewOracleCollection() *OracleCollection {
	return &OracleCollection{oracles: make(map[int]*Oracle)}
}

// Insert adds or replaces the oracle for its own POI, returning the
// previous oracle for that POI, if any.
func (c *OracleCollection) Insert(o *Oracle) *Oracle {
	c.mu.Lock()
	defer c.mu.Unlock()
	prev := c.oracles[o.POI()]
	c.oracles[o.POI()] = o
	return prev
}

// Get returns the oracle for poi, if present.
func (c *OracleCollection) Get(poi int) (*Oracle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.oracles[poi]
	return o, ok
}

// Remove deletes the oracle for poi, returning it if it was present.
func (c *OracleCollection) Remove(poi int) (*Oracle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.oracles[poi]
	delete(c.oracles, poi)
	return o, ok
}

// POIs returns every POI id with an oracle in the collection.
func (c *OracleCollection) POIs() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ids := make([]int, 0, len(c.oracles))
	for id := range c.oracles {
		ids = append(ids, id)
	}
	return ids
}

// Query unions GetPOIs across every oracle in the collection: every POI
// that certifies a beer path for (sCoord, tCoord).
func (c *OracleCollection) Query(sCoord, tCoord csr.Point) []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[int]struct{})
	var out []int
	for _, o := range c.oracles {
		for _, poi := range o.GetPOIs(sCoord, tCoord) {
			if _, dup := seen[poi]; dup {
				continue
			}
			seen[poi] = struct{}{}
			out = append(out, poi)
		}
	}
	return out
}
