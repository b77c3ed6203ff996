package loveletter

// Card is a rank from 1 (Guard) to 8 (Princess). Its value is its rank.
type Card int

const (
	CardNone     Card = 0
	CardGuard    Card = 1
	CardPriest   Card = 2
	CardBaron    Card = 3
	CardHandmaid Card = 4
	CardPrince   Card = 5
	CardKing     Card = 6
	CardCountess Card = 7
	CardPrincess Card = 8
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 16

// composition is the copy count per rank.
var composition = map[Card]int{
	CardGuard:    5,
	CardPriest:   2,
	CardBaron:    2,
	CardHandmaid: 2,
	CardPrince:   2,
	CardKing:     1,
	CardCountess: 1,
	CardPrincess: 1,
}

// NewDeck returns the sixteen cards in rank order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for c := CardGuard; c <= CardPrincess; c++ {
		for i := 0; i < composition[c]; i++ {
			deck = append(deck, c)
		}
	}
	return deck
}

// Valid reports whether c is a real rank.
func (c Card) Valid() bool {
	return c >= CardGuard && c <= CardPrincess
}

// Copies returns how many of c a full deck holds.
func (c Card) Copies() int {
	return composition[c]
}

// Targeted reports whether playing c names another player.
func (c Card) Targeted() bool {
	switch c {
	case CardGuard, CardPriest, CardBaron, CardPrince, CardKing:
		return true
	default:
		return false
	}
}

func (c Card) String() string {
	switch c {
	case CardGuard:
		return "Guard"
	case CardPriest:
		return "Priest"
	case CardBaron:
		return "Baron"
	case CardHandmaid:
		return "Handmaid"
	case CardPrince:
		return "Prince"
	case CardKing:
		return "King"
	case CardCountess:
		return "Countess"
	case CardPrincess:
		return "Princess"
	default:
		return "None"
	}
}

// Source says which of the turn holder's two cards is played.
type Source int

const (
	SourceUnspecified Source = 0
	// SourceHand plays the held card; the drawn card stays in hand.
	SourceHand Source = 1
	// SourceTopOfDraw plays the drawn card straight from the pile.
	SourceTopOfDraw Source = 2
)

// Valid reports whether s names a card.
func (s Source) Valid() bool {
	return s == SourceHand || s == SourceTopOfDraw
}

func (s Source) other() Source {
	if s == SourceHand {
		return SourceTopOfDraw
	}
	return SourceHand
}
