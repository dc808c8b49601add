package tarot

// CardType is the suit grouping of a tarot card.
type CardType string

const (
	Major     CardType = "major"
	Wands     CardType = "wands"
	Cups      CardType = "cups"
	Swords    CardType = "swords"
	Pentacles CardType = "pentacles"
)

// Card is static reference data, read-only with no lifecycle.
type Card struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	NameEn      string   `json:"name_en"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Analysis    string   `json:"analysis"`
	Affirmation string   `json:"affirmation"`
	Type        CardType `json:"type"`
}
