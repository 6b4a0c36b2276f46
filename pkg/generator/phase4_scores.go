package generator

import "container/heap"

// computeScores implements spec.md §4.3 Phase 4: every door's
// door_score is the shortest-path distance over the door-link graph
// each CaveUnit precomputes internally (DoorUnit.DoorLinks), crossing
// paired doors at zero cost, with the start room's own doors seeded at
// 0. Per-unit and per-spawn-point scores (teki_score/total_score,
// hole_score/treasure_score) derive from the best door_score reachable
// from that unit, pushing higher-value placements toward the back of
// the cave the same way the game does.
func (b *builder) computeScores() {
	b.computeDoorScores()

	for i := range b.units {
		score := b.unitScore(i)
		b.units[i].TekiScore = score
		b.units[i].TotalScore = score
		for si := range b.units[i].SpawnPoints {
			b.units[i].SpawnPoints[si].HoleScore = score
			b.units[i].SpawnPoints[si].TreasureScore = score
		}
	}
}

// doorNode flattens a DoorRef into a single graph vertex index.
func (b *builder) doorNode(unitIdx, doorIdx int) int {
	idx := 0
	for i := 0; i < unitIdx; i++ {
		idx += len(b.units[i].Doors)
	}
	return idx + doorIdx
}

// computeDoorScores runs Dijkstra's algorithm over every door in the
// layout, seeded from unit 0's doors (the starting room) at distance 0.
// Edges come from two sources: each unit's own DoorLinks (the
// precomputed internal shortest-path distance between two of its
// doors) and zero-cost edges between paired doors, since crossing a
// shared doorway costs nothing extra.
func (b *builder) computeDoorScores() {
	total := 0
	for i := range b.units {
		total += len(b.units[i].Doors)
	}
	if total == 0 {
		return
	}

	adj := make([][]doorEdge, total)
	for ui := range b.units {
		for di, door := range b.units[ui].Doors {
			from := b.doorNode(ui, di)
			for _, link := range door.DoorUnit.DoorLinks {
				to := b.doorNode(ui, link.TargetDoorIdx)
				adj[from] = append(adj[from], doorEdge{to: to, weight: link.Distance})
			}
			if door.Paired.Valid() {
				to := b.doorNode(door.Paired.UnitIdx, door.Paired.DoorIdx)
				adj[from] = append(adj[from], doorEdge{to: to, weight: 0})
			}
		}
	}

	const infinite = ^uint32(0)
	dist := make([]uint32, total)
	for i := range dist {
		dist[i] = infinite
	}

	pq := &doorPQ{}
	for di := range b.units[0].Doors {
		node := b.doorNode(0, di)
		dist[node] = 0
		*pq = append(*pq, doorPQItem{node: node, dist: 0})
	}
	heap.Init(pq)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(doorPQItem)
		if top.dist > dist[top.node] {
			continue
		}
		for _, e := range adj[top.node] {
			nd := top.dist + e.weight
			if nd < dist[e.to] {
				dist[e.to] = nd
				heap.Push(pq, doorPQItem{node: e.to, dist: nd})
			}
		}
	}

	for ui := range b.units {
		for di := range b.units[ui].Doors {
			node := b.doorNode(ui, di)
			if dist[node] == infinite {
				continue
			}
			b.units[ui].Doors[di].DoorScore = dist[node]
			b.units[ui].Doors[di].HasDoorScore = true
			b.units[ui].Doors[di].SeamTekiScore = dist[node]
		}
	}
}

// unitScore returns the lowest DoorScore among unit i's own doors (its
// distance from the start room), or 0 if the unit has no scored doors
// (the start room itself, whose doors are seeded at 0 anyway).
func (b *builder) unitScore(i int) uint32 {
	best := uint32(0)
	found := false
	for _, door := range b.units[i].Doors {
		if !door.HasDoorScore {
			continue
		}
		if !found || door.DoorScore < best {
			best = door.DoorScore
			found = true
		}
	}
	return best
}

type doorEdge struct {
	to     int
	weight uint32
}

type doorPQItem struct {
	node int
	dist uint32
}

type doorPQ []doorPQItem

func (pq doorPQ) Len() int            { return len(pq) }
func (pq doorPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq doorPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *doorPQ) Push(x interface{}) { *pq = append(*pq, x.(doorPQItem)) }
func (pq *doorPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
