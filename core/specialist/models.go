package specialist

import "errors"

var (
	// errors
	ErrNotFound = errors.New("specialist not found")
)

// Specialist identifiers. The registry is a closed catalog loaded once at
// process start; ids are stable and appear in ledger entries and progress
// records.
const (
	HistoricalExpert    = "Historical_Expert"
	GeographySpecialist = "Geography_Specialist"
	DetroitHistorian    = "Detroit_Historian"
)

// Specialist is an immutable AI-response profile with fixed expertise framing.
type Specialist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Expertise  string   `json:"expertise"`
	Background string   `json:"background"`
	// ResidentFocus biases responses for verified Michigan residents.
	ResidentFocus string   `json:"resident_focus"`
	KeyAreas      []string `json:"key_areas"`
	Personality   string   `json:"personality"`
}

// Registry is the static catalog of specialists, keyed by Specialist.ID.
type Registry struct {
	ids  []string // catalog order
	byID map[string]Specialist
}

func NewRegistry(specialists ...Specialist) *Registry {
	reg := &Registry{
		ids:  make([]string, 0, len(specialists)),
		byID: make(map[string]Specialist, len(specialists)),
	}
	for _, sp := range specialists {
		if _, ok := reg.byID[sp.ID]; !ok {
			reg.ids = append(reg.ids, sp.ID)
		}
		reg.byID[sp.ID] = sp
	}
	return reg
}

func (reg *Registry) Get(id string) (Specialist, error) {
	sp, ok := reg.byID[id]
	if !ok {
		return Specialist{}, ErrNotFound
	}
	return sp, nil
}

// All returns the specialists in catalog order.
func (reg *Registry) All() []Specialist {
	all := make([]Specialist, 0, len(reg.ids))
	for _, id := range reg.ids {
		all = append(all, reg.byID[id])
	}
	return all
}

func (reg *Registry) IDs() []string {
	ids := make([]string, len(reg.ids))
	copy(ids, reg.ids)
	return ids
}

func (reg *Registry) Len() int { return len(reg.ids) }
