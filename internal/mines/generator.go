package mines

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"
)

type Difficulty struct {
	Rows      int    `schema:"rows,required"`
	Cols      int    `schema:"cols,required"`
	MineCount int    `schema:"mine_count,required"`
	Name      string `schema:"name"`
}

var (
	Easy   = Difficulty{Rows: 9, Cols: 9, MineCount: 10, Name: "Easy"}
	Medium = Difficulty{Rows: 16, Cols: 16, MineCount: 40, Name: "Medium"}
	Hard   = Difficulty{Rows: 16, Cols: 30, MineCount: 99, Name: "Hard"}
)

// Presets in display order.
var Presets = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) Unpack() (rows int, cols int, mc int) {
	return d.Rows, d.Cols, d.MineCount
}

func (d Difficulty) Validate() error {
	if d.Rows <= 0 || d.Cols <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, d.Rows, d.Cols)
	}
	if d.MineCount < 0 || d.MineCount >= d.Rows*d.Cols {
		return fmt.Errorf(
			"%w: %d mines on %dx%d", ErrInvalidMineCount, d.MineCount, d.Rows, d.Cols,
		)
	}
	return nil
}

func (d Difficulty) SafeCells() int {
	return d.Rows*d.Cols - d.MineCount
}

func (d Difficulty) String() string {
	if d.Name != "" {
		return d.Name
	}
	return d.Key()
}

// Key encodes the dimensions and mine count as "rows:cols:mines".
func (d Difficulty) Key() string {
	return fmt.Sprintf("%d:%d:%d", d.Rows, d.Cols, d.MineCount)
}

func ParseDifficultyKey(key string) (*Difficulty, error) {
	d := &Difficulty{}
	skey := strings.ReplaceAll(key, ":", " ")
	n, err := fmt.Sscanf(skey, "%d %d %d", &d.Rows, &d.Cols, &d.MineCount)
	if n != 3 || err != nil {
		return nil, fmt.Errorf(
			`invalid difficulty key (key = "%s", n = %d, err = %w)`, key, n, err,
		)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// LookupPreset finds a preset by case-insensitive name.
func LookupPreset(name string) (Difficulty, bool) {
	for _, d := range Presets {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return Difficulty{}, false
}

// DecodeDifficulty reads a custom difficulty from form values
// (rows, cols, mine_count and an optional name).
func DecodeDifficulty(src map[string][]string) (Difficulty, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var d Difficulty
	if err := dec.Decode(&d, src); err != nil {
		return Difficulty{}, err
	}
	if err := d.Validate(); err != nil {
		return Difficulty{}, err
	}
	return d, nil
}
