package world

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/raymarch/internal/telemetry"
)

const (
	// Default generated layout dimensions
	DefaultWidth  = 48
	DefaultHeight = 24

	// BSP parameters
	minRoomSize = 4  // Minimum room dimension
	maxRoomSize = 10 // Maximum room dimension
	minLeafSize = 8  // Minimum BSP leaf size before stopping split
)

// Generator carves rooms and corridors out of a wall-filled layout.
// The outer border is never carved, so generated layouts are always closed.
type Generator struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Room
	rng    *rand.Rand
}

// NewGenerator creates a generator for a layout filled with walls.
// A nil rng seeds a new source from the current time.
func NewGenerator(width, height int, rng *rand.Rand) (*Generator, error) {
	if width < minLeafSize+2 || height < minLeafSize+2 {
		return nil, fmt.Errorf("%w: generated layouts need at least %dx%d cells, got %dx%d",
			ErrTooSmall, minLeafSize+2, minLeafSize+2, width, height)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Generator{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Room, 0),
		rng:    rng,
	}, nil
}

// Generate builds a closed layout of the given size and returns the
// generator holding its tiles, rooms and start cell.
func Generate(ctx context.Context, width, height int, rng *rand.Rand) (*Generator, error) {
	g, err := NewGenerator(width, height, rng)
	if err != nil {
		return nil, err
	}
	g.Generate(ctx)
	return g, nil
}

// Generate creates the layout using the BSP algorithm.
func (g *Generator) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	// Start BSP with everything inside the border as root
	root := &bspNode{
		x:      1,
		y:      1,
		width:  g.Width - 2,
		height: g.Height - 2,
	}

	g.splitNode(root)
	g.createRooms(root)
	g.connectRooms(root)

	span.SetAttributes(
		attribute.Int("world.width", g.Width),
		attribute.Int("world.height", g.Height),
		attribute.Int("world.room_count", len(g.Rooms)),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// Layout returns the generated tiles as a newline-delimited layout string.
func (g *Generator) Layout() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for _, row := range g.Tiles {
		for _, t := range row {
			sb.WriteRune(t.Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Start returns an open cell to place the player on: the first room's centre,
// or the first open cell found when no room was carved.
func (g *Generator) Start() (int, int) {
	if len(g.Rooms) > 0 {
		return g.Rooms[0].Center()
	}
	for y, row := range g.Tiles {
		for x, t := range row {
			if t == TileFloor {
				return x, y
			}
		}
	}
	return g.Width / 2, g.Height / 2
}

// bspNode represents a node in the BSP tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	room          *Room
}

// isLeaf returns true if this node has no children.
func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a BSP node.
func (g *Generator) splitNode(node *bspNode) {
	if node.width < minLeafSize*2 && node.height < minLeafSize*2 {
		return
	}

	var splitHorizontally bool
	if node.width > node.height && node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else if node.height >= minLeafSize*2 {
		splitHorizontally = true
	} else if node.width >= minLeafSize*2 {
		splitHorizontally = false
	} else {
		return
	}

	size := node.width
	if splitHorizontally {
		size = node.height
	}
	lo, hi := minLeafSize, size-minLeafSize
	if hi < lo {
		return
	}
	splitPos := lo + g.rng.Intn(hi-lo+1)

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	g.splitNode(node.left)
	g.splitNode(node.right)
}

// createRooms creates rooms in leaf nodes of the BSP tree.
func (g *Generator) createRooms(node *bspNode) {
	if node == nil {
		return
	}

	if !node.isLeaf() {
		g.createRooms(node.left)
		g.createRooms(node.right)
		return
	}

	roomWidth := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.width-minRoomSize+1))
	roomHeight := minRoomSize + g.rng.Intn(min(maxRoomSize-minRoomSize+1, node.height-minRoomSize+1))

	// Leave at least one wall cell between the room and the leaf edge
	roomWidth = min(roomWidth, node.width-2)
	roomHeight = min(roomHeight, node.height-2)
	if roomWidth < minRoomSize || roomHeight < minRoomSize {
		return
	}

	room := Room{
		X:      node.x + 1 + g.rng.Intn(node.width-roomWidth-1),
		Y:      node.y + 1 + g.rng.Intn(node.height-roomHeight-1),
		Width:  roomWidth,
		Height: roomHeight,
	}
	node.room = &room
	g.Rooms = append(g.Rooms, room)
	g.carveRoom(room)
}

// carveRoom sets all tiles within the room to floor.
func (g *Generator) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			g.carve(x, y)
		}
	}
}

// connectRooms connects sibling subtrees with corridors.
func (g *Generator) connectRooms(node *bspNode) {
	if node == nil || node.isLeaf() {
		return
	}

	g.connectRooms(node.left)
	g.connectRooms(node.right)

	leftRoom := g.getRoom(node.left)
	rightRoom := g.getRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		g.carveCorridor(*leftRoom, *rightRoom)
	}
}

// getRoom returns a room from a subtree (any room will do).
func (g *Generator) getRoom(node *bspNode) *Room {
	if node == nil {
		return nil
	}
	if node.room != nil {
		return node.room
	}
	if room := g.getRoom(node.left); room != nil {
		return room
	}
	return g.getRoom(node.right)
}

// carveCorridor creates an L-shaped corridor between two room centres.
func (g *Generator) carveCorridor(room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	if g.rng.Intn(2) == 0 {
		g.carveHorizontalTunnel(x1, x2, y1)
		g.carveVerticalTunnel(y1, y2, x2)
	} else {
		g.carveVerticalTunnel(y1, y2, x1)
		g.carveHorizontalTunnel(x1, x2, y2)
	}
}

func (g *Generator) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.carve(x, y)
	}
}

func (g *Generator) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.carve(x, y)
	}
}

// carve opens a single cell unless it is on the outer border.
func (g *Generator) carve(x, y int) {
	if x > 0 && x < g.Width-1 && y > 0 && y < g.Height-1 {
		g.Tiles[y][x] = TileFloor
	}
}
