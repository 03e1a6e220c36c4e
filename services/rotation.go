package services

import (
	"errors"
	"math/rand"
)

var ErrNotEnoughPlayers = errors.New("not enough players")

// shufflePlayers is a seam for deterministic tests.
var shufflePlayers = func(ids []string) {
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

// AssignTargets computes the gift-giving rotation: shuffle the players
// uniformly, then each position targets the next one, wrapping around.
// The result is a single n-cycle, so every player gives exactly one gift
// and receives exactly one, and nobody targets themselves. With exactly
// two players the cycle degenerates to a mutual pair, which is the only
// possible outcome for that group size.
func AssignTargets(userIDs []string) (map[string]string, error) {
	if len(userIDs) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	ids := make([]string, len(userIDs))
	copy(ids, userIDs)
	shufflePlayers(ids)

	targets := make(map[string]string, len(ids))
	for i, giver := range ids {
		targets[giver] = ids[(i+1)%len(ids)]
	}
	return targets, nil
}
