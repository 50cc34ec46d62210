package services

import (
	"container/heap"
	"errors"
	"math"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// ErrNoPath is returned when no sequence of roads connects the origin
// warehouse to the destination warehouse within the service's coverage.
var ErrNoPath = errors.New("no route between warehouses")

// WarehouseGraph is an adjacency view over the warehouses a delivery service
// covers and the roads between them. Vertices keep the insertion order of the
// warehouse snapshot so shortest-path tie-breaking is deterministic.
type WarehouseGraph struct {
	ids   []kernel.UUID
	index map[string]int
	adj   [][]graphEdge
}

type graphEdge struct {
	to         int
	distanceKm float64
}

// VertexCount returns the number of warehouses in the graph.
func (g *WarehouseGraph) VertexCount() int {
	return len(g.ids)
}

// Contains reports whether the warehouse is a vertex of the graph.
func (g *WarehouseGraph) Contains(warehouseID kernel.UUID) bool {
	_, ok := g.index[warehouseID.String()]
	return ok
}

// Route is a computed shortest path through the warehouse graph.
type Route struct {
	// Warehouses holds the warehouse identifiers in travel order,
	// origin first, destination last.
	Warehouses []kernel.UUID

	// DistanceKm is the summed road distance of the path.
	DistanceKm float64
}

// RoutePlanner is a domain service computing shortest warehouse routes for a
// delivery service.
//
// Key responsibilities:
//   - Restricting the warehouse graph to the service's coverage
//   - Finding the minimum-distance path between two warehouses
//
// Business rules:
//   - Only warehouses in covered provinces participate in routing
//   - Roads are traversable in both directions
//   - A road is usable only when both its endpoints are covered
//   - Equal-distance paths resolve to the earliest-discovered one
type RoutePlanner struct{}

// NewRoutePlanner creates a new RoutePlanner instance.
func NewRoutePlanner() RoutePlanner {
	return RoutePlanner{}
}

// BuildGraph assembles the routing graph for a delivery service from the
// full warehouse and road snapshots.
//
// Warehouses in provinces the service does not cover are excluded, and so is
// every road touching them. The graph is rebuilt per computation because
// coverage differs per service and the snapshots change between requests.
func (p RoutePlanner) BuildGraph(
	service *delivery.Service,
	warehouses []*warehouse.Warehouse,
	roads []*warehouse.Road,
) (*WarehouseGraph, error) {
	if err := service.Validate(); err != nil {
		return nil, err
	}

	graph := &WarehouseGraph{
		index: make(map[string]int),
	}

	for _, wh := range warehouses {
		if err := wh.Validate(); err != nil {
			return nil, err
		}
		if !service.Serves(wh.Province()) {
			continue
		}
		graph.index[wh.ID().String()] = len(graph.ids)
		graph.ids = append(graph.ids, wh.ID())
		graph.adj = append(graph.adj, nil)
	}

	for _, road := range roads {
		if err := road.Validate(); err != nil {
			return nil, err
		}

		from, okFrom := graph.index[road.Origin().String()]
		to, okTo := graph.index[road.Destination().String()]
		if !okFrom || !okTo {
			continue
		}

		graph.adj[from] = append(graph.adj[from], graphEdge{to: to, distanceKm: road.DistanceKm()})
		graph.adj[to] = append(graph.adj[to], graphEdge{to: from, distanceKm: road.DistanceKm()})
	}

	return graph, nil
}

// ShortestPath computes the minimum-distance route from origin to
// destination over the graph using Dijkstra's algorithm.
//
// Returns:
//   - a Route with at least one warehouse on success; origin equal to
//     destination yields a single-vertex route of distance zero
//   - ErrNoPath when either endpoint is outside the graph or the endpoints
//     lie in disconnected components
func (p RoutePlanner) ShortestPath(graph *WarehouseGraph, origin, destination kernel.UUID) (Route, error) {
	source, ok := graph.index[origin.String()]
	if !ok {
		return Route{}, ErrNoPath
	}
	target, ok := graph.index[destination.String()]
	if !ok {
		return Route{}, ErrNoPath
	}

	dist := make([]float64, len(graph.ids))
	prev := make([]int, len(graph.ids))
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[source] = 0
	prev[source] = source

	queue := &vertexQueue{}
	heap.Push(queue, vertexItem{vertex: source, distanceKm: 0})

	for queue.Len() > 0 {
		item := heap.Pop(queue).(vertexItem)
		if item.distanceKm > dist[item.vertex] {
			continue // stale queue entry, vertex settled earlier
		}
		if item.vertex == target {
			break
		}

		for _, edge := range graph.adj[item.vertex] {
			next := item.distanceKm + edge.distanceKm
			if next < dist[edge.to] {
				dist[edge.to] = next
				prev[edge.to] = item.vertex
				heap.Push(queue, vertexItem{vertex: edge.to, distanceKm: next})
			}
		}
	}

	if math.IsInf(dist[target], 1) {
		return Route{}, ErrNoPath
	}

	var path []kernel.UUID
	for at := target; ; at = prev[at] {
		path = append(path, graph.ids[at])
		if at == source {
			break
		}
	}
	reverse(path)

	return Route{Warehouses: path, DistanceKm: dist[target]}, nil
}

func reverse(ids []kernel.UUID) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}

// vertexItem is one entry of the Dijkstra priority queue. seq is the push
// order, so equal distances pop in discovery order.
type vertexItem struct {
	vertex     int
	distanceKm float64
	seq        int
}

type vertexQueue struct {
	items  []vertexItem
	pushes int
}

func (q *vertexQueue) Len() int { return len(q.items) }

func (q *vertexQueue) Less(i, j int) bool {
	if q.items[i].distanceKm != q.items[j].distanceKm {
		return q.items[i].distanceKm < q.items[j].distanceKm
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *vertexQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *vertexQueue) Push(x any) {
	item := x.(vertexItem)
	item.seq = q.pushes
	q.pushes++
	q.items = append(q.items, item)
}

func (q *vertexQueue) Pop() any {
	n := len(q.items)
	item := q.items[n-1]
	q.items = q.items[:n-1]
	return item
}
