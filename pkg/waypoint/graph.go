package waypoint

import (
	"container/heap"
	"math"

	"github.com/dshills/caveripper/pkg/layout"
)

// NodeKind distinguishes a room/hallway spawn point from a door seam.
type NodeKind int

const (
	NodeSpawnPoint NodeKind = iota
	NodeDoorSeam
)

// Node is one vertex of the waypoint graph: a spawn point or a door
// seam, exposing the position, carry radius, and backlink toward the
// ship that rendering and carry-path queries need.
type Node struct {
	Kind NodeKind
	Pos  layout.Point3
	R    float32

	// UnitIdx/DoorIdx/SpawnIdx identify which PlacedMapUnit this node
	// belongs to and, for NodeDoorSeam, which door within it; -1 when
	// not applicable.
	UnitIdx  int
	DoorIdx  int
	SpawnIdx int

	// Backlink is the index (into Graph.Nodes) of this node's parent on
	// the shortest path toward the ship, or -1 if this node IS the ship
	// or is unreachable.
	Backlink int

	// Dist is this node's shortest carry-path distance to the ship, or
	// +Inf if unreachable.
	Dist float32
}

// edge is a directed graph edge with a p2-distance weight.
type edge struct {
	to     int
	weight float32
}

// Graph is the derived connectivity graph over one Layout's spawn
// points and door seams.
type Graph struct {
	Nodes []Node
	adj   [][]edge

	shipIdx int
}

// Build constructs the waypoint graph for l: nodes are every placed
// spawn point plus every placed door (its seam), edges connect nodes
// that share a map unit (the "reachable within a room/hallway" rule)
// and pair doors across units at zero cost (the connection a carried
// treasure can walk through). Edge weights are the p2-distance between
// node positions (spec.md §4.1/§4.4).
func Build(l *layout.Layout) *Graph {
	g := &Graph{shipIdx: -1}

	// doorNodeIdx[unitIdx][doorIdx] -> node index, for wiring pairings.
	doorNodeIdx := make([][]int, len(l.MapUnits))

	for ui, unit := range l.MapUnits {
		unitStart := len(g.Nodes)

		for si, sp := range unit.SpawnPoints {
			g.Nodes = append(g.Nodes, Node{
				Kind:     NodeSpawnPoint,
				Pos:      sp.Pos,
				R:        sp.SpawnPointUnit.Radius,
				UnitIdx:  ui,
				SpawnIdx: si,
				DoorIdx:  -1,
				Backlink: -1,
				Dist:     float32(math.Inf(1)),
			})
			for _, so := range sp.Contains {
				if so.Kind == layout.KindShip {
					g.shipIdx = len(g.Nodes) - 1
				}
			}
		}

		doorNodeIdx[ui] = make([]int, len(unit.Doors))
		for di, door := range unit.Doors {
			g.Nodes = append(g.Nodes, Node{
				Kind:     NodeDoorSeam,
				Pos:      door.Center(),
				UnitIdx:  ui,
				DoorIdx:  di,
				SpawnIdx: -1,
				Backlink: -1,
				Dist:     float32(math.Inf(1)),
			})
			doorNodeIdx[ui][di] = len(g.Nodes) - 1
		}

		unitEnd := len(g.Nodes)
		connectWithinUnit(g, unitStart, unitEnd)
	}

	// Wire paired doors together at zero cost: a carried treasure passes
	// freely between two units through a shared door.
	for ui, unit := range l.MapUnits {
		for di, door := range unit.Doors {
			if !door.Paired.Valid() {
				continue
			}
			from := doorNodeIdx[ui][di]
			to := doorNodeIdx[door.Paired.UnitIdx][door.Paired.DoorIdx]
			g.addEdge(from, to, 0)
			g.addEdge(to, from, 0)
		}
	}

	if g.shipIdx >= 0 {
		g.computeDistances()
	}

	return g
}

func connectWithinUnit(g *Graph, start, end int) {
	for i := start; i < end; i++ {
		for j := start; j < end; j++ {
			if i == j {
				continue
			}
			w := g.Nodes[i].Pos.Dist2(g.Nodes[j].Pos)
			g.addEdge(i, j, w)
		}
	}
}

func (g *Graph) addEdge(from, to int, weight float32) {
	for len(g.adj) <= from {
		g.adj = append(g.adj, nil)
	}
	g.adj[from] = append(g.adj[from], edge{to: to, weight: weight})
}

// computeDistances runs Dijkstra's algorithm from the ship node, filling
// in every reachable Node's Dist and Backlink.
func (g *Graph) computeDistances() {
	g.Nodes[g.shipIdx].Dist = 0
	pq := &priorityQueue{{node: g.shipIdx, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem)
		if top.dist > g.Nodes[top.node].Dist {
			continue
		}
		for len(g.adj) <= top.node {
			g.adj = append(g.adj, nil)
		}
		for _, e := range g.adj[top.node] {
			nd := top.dist + e.weight
			if nd < g.Nodes[e.to].Dist {
				g.Nodes[e.to].Dist = nd
				g.Nodes[e.to].Backlink = top.node
				heap.Push(pq, pqItem{node: e.to, dist: nd})
			}
		}
	}
}

// DistanceToShip returns the carry-path distance from node idx to the
// ship, or +Inf if unreachable or there is no ship node.
func (g *Graph) DistanceToShip(idx int) float32 {
	if idx < 0 || idx >= len(g.Nodes) {
		return float32(math.Inf(1))
	}
	return g.Nodes[idx].Dist
}

// NodeIndexForSpawnPoint returns the index of the graph node for spawn
// point spawnIdx of unit unitIdx, or -1 if there is none. Used by
// callers that need to map a layout.PlacedSpawnPoint back to a graph
// node.
func (g *Graph) NodeIndexForSpawnPoint(unitIdx, spawnIdx int) int {
	for i, n := range g.Nodes {
		if n.Kind == NodeSpawnPoint && n.UnitIdx == unitIdx && n.SpawnIdx == spawnIdx {
			return i
		}
	}
	return -1
}

type pqItem struct {
	node int
	dist float32
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool   { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)        { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
