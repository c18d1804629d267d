package santa

// Participant is a member of the exchange. Name is the identity used for matching.
type Participant struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Pairing assigns a giver (the Santa) to the receiver of their gift.
type Pairing struct {
	Giver    Participant `json:"giver"`
	Receiver Participant `json:"receiver"`
}

// NamePair is a pairing reduced to participant names, the form that is persisted and verified.
type NamePair struct {
	Giver    string `json:"giver"`
	Receiver string `json:"receiver"`
}

// Assignment is an ordered set of pairings, one per participant, in roster order.
type Assignment []Pairing

// Names returns the assignment as name pairs, preserving order.
func (a Assignment) Names() []NamePair {
	pairs := make([]NamePair, len(a))
	for i, p := range a {
		pairs[i] = NamePair{Giver: p.Giver.Name, Receiver: p.Receiver.Name}
	}
	return pairs
}
