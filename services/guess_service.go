package services

import (
	"errors"
	"math/rand"

	"secret-santa-bot/models"
)

var ErrNoCandidates = errors.New("no other players to guess")

// Challenge is one "who is behind this nick" round.
type Challenge struct {
	HiddenNick   string      `json:"hidden_nick"`
	HiddenUserID string      `json:"hidden_user_id"`
	Candidates   []Candidate `json:"candidates"` // shuffled full roster, correct one included
}

type Candidate struct {
	UserID string `json:"user_id"`
	Nick   string `json:"nick"`
}

// GuessResult reports a scored answer. On a miss the hidden player's real
// name is disclosed to the asker.
type GuessResult struct {
	Correct        bool   `json:"correct"`
	HiddenFullName string `json:"hidden_full_name,omitempty"`
}

// GuessService runs the name-guessing minigame. Rounds are stateless:
// players may ask for as many challenges as they like before the reveal.
type GuessService struct {
	Players *PlayerService
}

func NewGuessService(players *PlayerService) *GuessService {
	return &GuessService{Players: players}
}

// PickChallenge selects a uniformly random hidden player other than the
// asker and returns the shuffled nickname roster as answer options.
func (s *GuessService) PickChallenge(chatID, askerID string) (*Challenge, error) {
	players, err := s.Players.Players(chatID)
	if err != nil {
		return nil, err
	}

	var hidden []models.Player
	for _, p := range players {
		if p.UserID != askerID {
			hidden = append(hidden, p)
		}
	}
	if len(hidden) == 0 {
		return nil, ErrNoCandidates
	}
	target := hidden[rand.Intn(len(hidden))]

	candidates := make([]Candidate, 0, len(players))
	for _, p := range players {
		candidates = append(candidates, Candidate{UserID: p.UserID, Nick: p.Nick})
	}
	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	return &Challenge{
		HiddenNick:   target.Nick,
		HiddenUserID: target.UserID,
		Candidates:   candidates,
	}, nil
}

// ScoreGuess compares the selected identity with the hidden one. A match
// is worth exactly one point for the asker; a miss changes no score and
// reveals who was actually hiding.
func (s *GuessService) ScoreGuess(chatID, hiddenID, selectedID, askerID string) (*GuessResult, error) {
	if hiddenID == selectedID {
		if err := s.Players.AwardScore(chatID, askerID, 1); err != nil {
			return nil, err
		}
		return &GuessResult{Correct: true}, nil
	}

	hidden, err := s.Players.Player(chatID, hiddenID)
	if err != nil {
		if errors.Is(err, ErrNotRegistered) {
			return &GuessResult{HiddenFullName: "Unknown"}, nil
		}
		return nil, err
	}
	return &GuessResult{HiddenFullName: hidden.FullName}, nil
}
