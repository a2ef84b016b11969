package generator

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"

	"tilesmith/pkg/engine/rng"
	"tilesmith/pkg/engine/world"
)

// DungeonConfig configures the room and corridor dungeon
type DungeonConfig struct {
	GridWidth   int
	GridHeight  int
	MinRoomSize int
	MaxRoomSize int
	MinRooms    int
	MaxRooms    int

	// MaxAttempts bounds the number of room placements tried while packing
	MaxAttempts int
	// InflationStride is the step of the 3x3 scan that raises walls around
	// floor. 2 reaches the four diagonals only, 1 the whole ring.
	InflationStride int
}

// DefaultDungeonConfig returns the reference 60x40 castle settings
func DefaultDungeonConfig() DungeonConfig {
	return DungeonConfig{
		GridWidth:       60,
		GridHeight:      40,
		MinRoomSize:     5,
		MaxRoomSize:     15,
		MinRooms:        10,
		MaxRooms:        15,
		MaxAttempts:     10000,
		InflationStride: 2,
	}
}

// DungeonConfigFromMap reads the dungeon keys over the defaults
func DungeonConfigFromMap(cfg map[string]string) DungeonConfig {
	c := DefaultDungeonConfig()
	intFromMap(cfg, "grid_width", &c.GridWidth)
	intFromMap(cfg, "grid_height", &c.GridHeight)
	intFromMap(cfg, "min_room_size", &c.MinRoomSize)
	intFromMap(cfg, "max_room_size", &c.MaxRoomSize)
	intFromMap(cfg, "min_rooms", &c.MinRooms)
	intFromMap(cfg, "max_rooms", &c.MaxRooms)
	intFromMap(cfg, "max_attempts", &c.MaxAttempts)
	intFromMap(cfg, "inflation_stride", &c.InflationStride)
	return c
}

// Validate checks the config
func (c DungeonConfig) Validate() error {
	switch {
	case c.MinRoomSize < 4:
		return fmt.Errorf("%w: min_room_size %d, need at least 4", ErrInvalidConfig, c.MinRoomSize)
	case c.MinRoomSize > c.MaxRoomSize:
		return fmt.Errorf("%w: min_room_size %d > max_room_size %d", ErrInvalidConfig, c.MinRoomSize, c.MaxRoomSize)
	case c.MinRooms < 2:
		return fmt.Errorf("%w: min_rooms %d, need at least 2", ErrInvalidConfig, c.MinRooms)
	case c.MinRooms > c.MaxRooms:
		return fmt.Errorf("%w: min_rooms %d > max_rooms %d", ErrInvalidConfig, c.MinRooms, c.MaxRooms)
	case c.GridWidth-c.MaxRoomSize-1 < 1:
		return fmt.Errorf("%w: grid_width %d too small for max_room_size %d", ErrInvalidConfig, c.GridWidth, c.MaxRoomSize)
	case c.GridHeight-c.MaxRoomSize-1 < 1:
		return fmt.Errorf("%w: grid_height %d too small for max_room_size %d", ErrInvalidConfig, c.GridHeight, c.MaxRoomSize)
	case c.MaxAttempts < 1:
		return fmt.Errorf("%w: max_attempts %d", ErrInvalidConfig, c.MaxAttempts)
	case c.InflationStride != 1 && c.InflationStride != 2:
		return fmt.Errorf("%w: inflation_stride %d, want 1 or 2", ErrInvalidConfig, c.InflationStride)
	}
	return nil
}

// DungeonGenerator packs rooms, links them with corridors, walls them in and
// places stairs in the two rooms farthest apart.
type DungeonGenerator struct {
	Config DungeonConfig
}

// NewDungeonGenerator returns a validated dungeon generator
func NewDungeonGenerator(c DungeonConfig) (*DungeonGenerator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &DungeonGenerator{Config: c}, nil
}

// Name returns the name of this generator
func (g *DungeonGenerator) Name() string {
	return "dungeon"
}

// dungeonRun holds the state of one Generate call
type dungeonRun struct {
	cfg   DungeonConfig
	r     *rng.Source
	grid  *world.Grid
	rooms []Room

	// corridors record the connection order: each corridor's From room
	// joined the connected set when it was carved
	corridors []Corridor
	connected mapset.Set[int]
}

// Generate creates a new dungeon
func (g *DungeonGenerator) Generate(r *rng.Source) (*Result, error) {
	if err := g.Config.Validate(); err != nil {
		return nil, err
	}

	run := &dungeonRun{
		cfg:       g.Config,
		r:         r,
		connected: mapset.New[int](),
	}

	if err := run.packRooms(); err != nil {
		return nil, err
	}

	grid, err := world.NewGrid(g.Config.GridWidth, g.Config.GridHeight, world.Empty)
	if err != nil {
		return nil, err
	}
	run.grid = grid

	run.connectRooms()
	run.fillRooms()
	run.inflateWalls()

	first, last := run.farthestPair()
	up := run.interiorPoint(run.rooms[first])
	down := run.interiorPoint(run.rooms[last])
	_ = grid.Set(up.X, up.Y, world.StairsUp)
	_ = grid.Set(down.X, down.Y, world.StairsDown)

	return &Result{
		Grid:       grid,
		Rooms:      run.rooms,
		Corridors:  run.corridors,
		StairsUp:   up,
		StairsDown: down,
	}, nil
}

// packRooms places non-overlapping rooms until a random target count is
// reached or the attempt budget runs out
func (d *dungeonRun) packRooms() error {
	c := d.cfg
	target := d.r.IntRange(c.MinRooms, c.MaxRooms)

	attempts := 0
	for len(d.rooms) < target && attempts < c.MaxAttempts {
		attempts++
		room := Room{
			X: d.r.IntRange(1, c.GridWidth-c.MaxRoomSize-1),
			Y: d.r.IntRange(1, c.GridHeight-c.MaxRoomSize-1),
			W: d.r.IntRange(c.MinRoomSize, c.MaxRoomSize),
			H: d.r.IntRange(c.MinRoomSize, c.MaxRoomSize),
		}
		if d.collides(room) {
			continue
		}
		// Shrinking after the test leaves a one-cell gap to every neighbour
		room.W--
		room.H--
		d.rooms = append(d.rooms, room)
	}

	if len(d.rooms) < c.MinRooms {
		return fmt.Errorf("%w: placed %d of %d rooms (min %d) in %d attempts",
			ErrPackingExhausted, len(d.rooms), target, c.MinRooms, attempts)
	}
	return nil
}

func (d *dungeonRun) collides(room Room) bool {
	for _, other := range d.rooms {
		if room.Overlaps(other) {
			return true
		}
	}
	return false
}

// connectRooms links each room, in insertion order, to its closest room
// outside the connected set
func (d *dungeonRun) connectRooms() {
	for i := range d.rooms {
		closest, ok := d.findClosest(i)
		if !ok {
			break
		}
		d.carveCorridor(i, closest)
		d.rooms[i].Connected = true
		d.rooms[closest].Connected = true
		d.connected.Put(i)
	}
}

// findClosest returns the room nearest to room i, skipping i itself and
// every room already connected. Ties keep the lowest index.
func (d *dungeonRun) findClosest(i int) (int, bool) {
	best, bestDist := -1, 0
	for j, other := range d.rooms {
		if j == i || d.connected.Has(j) {
			continue
		}
		dist := d.rooms[i].Distance(other)
		if best < 0 || dist < bestDist {
			best, bestDist = j, dist
		}
	}
	return best, best >= 0
}

// carveCorridor walks from a random point of room to toward a random point
// of room from, settling x before y, and marks every step as floor
func (d *dungeonRun) carveCorridor(from, to int) {
	start := d.randomPoint(d.rooms[from])
	p := d.randomPoint(d.rooms[to])

	var path []gruid.Point
	for p != start {
		switch {
		case p.X < start.X:
			p.X++
		case p.X > start.X:
			p.X--
		case p.Y < start.Y:
			p.Y++
		default:
			p.Y--
		}
		_ = d.grid.Set(p.X, p.Y, world.Floor)
		path = append(path, p)
	}
	d.corridors = append(d.corridors, Corridor{From: from, To: to, Path: path})
}

func (d *dungeonRun) fillRooms() {
	for _, room := range d.rooms {
		for y := room.Y; y < room.Y+room.H; y++ {
			for x := room.X; x < room.X+room.W; x++ {
				_ = d.grid.Set(x, y, world.Floor)
			}
		}
	}
}

// inflateWalls turns empty cells around floor into walls. The 3x3 window is
// scanned with the configured stride.
func (d *dungeonRun) inflateWalls() {
	stride := d.cfg.InflationStride
	for _, p := range d.grid.Points(world.Floor) {
		for y := p.Y - 1; y <= p.Y+1; y += stride {
			for x := p.X - 1; x <= p.X+1; x += stride {
				if c, err := d.grid.Get(x, y); err == nil && c == world.Empty {
					_ = d.grid.Set(x, y, world.Wall)
				}
			}
		}
	}
}

// farthestPair returns the two rooms whose centres are farthest apart.
// The first maximal pair found wins.
func (d *dungeonRun) farthestPair() (int, int) {
	first, last, best := 0, 1, -1
	for i := range d.rooms {
		for j := range d.rooms {
			if i == j {
				continue
			}
			if dist := d.rooms[i].Distance(d.rooms[j]); dist > best {
				first, last, best = i, j, dist
			}
		}
	}
	return first, last
}

func (d *dungeonRun) randomPoint(room Room) gruid.Point {
	return gruid.Point{
		X: d.r.IntRange(room.X, room.X+room.W-1),
		Y: d.r.IntRange(room.Y, room.Y+room.H-1),
	}
}

func (d *dungeonRun) interiorPoint(room Room) gruid.Point {
	return gruid.Point{
		X: d.r.IntRange(room.X+1, room.X+room.W-2),
		Y: d.r.IntRange(room.Y+1, room.Y+room.H-2),
	}
}

func init() {
	Register("dungeon", func(cfg map[string]string) (GridGenerator, error) {
		return NewDungeonGenerator(DungeonConfigFromMap(cfg))
	})
}
