package domain

import (
	"encoding/json"
	"fmt"
)

// Card represents a single vocabulary flashcard
type Card struct {
	Word          string            `json:"word" yaml:"word"`
	Pronunciation string            `json:"pronunciation,omitempty" yaml:"pronunciation,omitempty"`
	Meaning       string            `json:"meaning" yaml:"meaning"`
	Extras        map[string]string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// UnmarshalJSON decodes the known fields and keeps any other string
// fields (memory tips, examples) in Extras.
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var card Card
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			// Non-string values are not part of the card
			continue
		}
		switch key {
		case "word":
			card.Word = s
		case "pronunciation":
			card.Pronunciation = s
		case "meaning":
			card.Meaning = s
		default:
			if card.Extras == nil {
				card.Extras = make(map[string]string)
			}
			card.Extras[key] = s
		}
	}

	*c = card
	return nil
}

// DisplayWord returns the word or a placeholder when it is missing
func (c Card) DisplayWord() string {
	if c.Word == "" {
		return "Unknown"
	}
	return c.Word
}

// DisplayPronunciation returns the pronunciation wrapped in slashes
func (c Card) DisplayPronunciation() string {
	if c.Pronunciation == "" {
		return ""
	}
	return fmt.Sprintf("/%s/", c.Pronunciation)
}

// DisplayMeaning returns the meaning or a placeholder when it is missing
func (c Card) DisplayMeaning() string {
	if c.Meaning == "" {
		return "No meaning available"
	}
	return c.Meaning
}

// Deck is the ordered list of cards selected for one day
type Deck struct {
	Date  string `json:"date" yaml:"date"`
	Cards []Card `json:"cards" yaml:"cards"`
}

// Len returns the number of cards in the deck
func (d Deck) Len() int {
	return len(d.Cards)
}

// Empty reports whether the deck has no cards
func (d Deck) Empty() bool {
	return len(d.Cards) == 0
}
