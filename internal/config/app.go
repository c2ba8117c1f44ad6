package config

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Development is on when DEVELOPMENT is set to anything other than "0" or
// "false".
func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0" && !strings.EqualFold(development, "false")
}

// Difficulty reads MINES_DIFFICULTY: a preset name, a "rows:cols:mines" key
// or a query string like "rows=8&cols=8&mine_count=12". Defaults to Medium.
func Difficulty() (mines.Difficulty, error) {
	value, ok := os.LookupEnv("MINES_DIFFICULTY")
	if !ok || value == "" {
		return mines.Medium, nil
	}
	return ParseDifficulty(value)
}

func ParseDifficulty(value string) (mines.Difficulty, error) {
	value = strings.TrimSpace(value)
	if d, ok := mines.LookupPreset(value); ok {
		return d, nil
	}
	if strings.Contains(value, "=") {
		values, err := url.ParseQuery(value)
		if err != nil {
			return mines.Difficulty{}, fmt.Errorf("unable to parse difficulty query: %w", err)
		}
		return mines.DecodeDifficulty(values)
	}
	d, err := mines.ParseDifficultyKey(value)
	if err != nil {
		return mines.Difficulty{}, err
	}
	return *d, nil
}

func LogFile() string {
	return os.Getenv("MINES_LOG_FILE")
}

// Rand returns a generator seeded from MINES_SEED when it is set, and a
// random seed otherwise.
func Rand() (*rand.Rand, error) {
	seedStr, ok := os.LookupEnv("MINES_SEED")
	if !ok {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		)), nil
	}
	seed, err := strconv.ParseUint(seedStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unable to convert MINES_SEED to uint: %w", err)
	}
	return rand.New(rand.NewPCG(seed, seed)), nil
}
