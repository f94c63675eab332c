package client

// Animal is the listing-facing shape of a single record.
type Animal struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price,omitempty"`
	AcquisitionDate string  `json:"acquisition_date,omitempty"`
	PhotoURL        string  `json:"photo_url,omitempty"`
	Likes           int64   `json:"likes"`
	CreatedAt       string  `json:"created_at"`
}

// Draft holds the fields a registration flow collects before submission.
// A draft is complete when Name, Description and PhotoURL are all set.
type Draft struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	PhotoURL        string  `json:"photo_url"`
	Price           float64 `json:"price,omitempty"`
	AcquisitionDate string  `json:"acquisition_date,omitempty"`
}

// Complete reports whether the draft carries every required field.
func (d Draft) Complete() bool {
	return d.Name != "" && d.Description != "" && d.PhotoURL != ""
}

// Metadata is the catalogue summary served by GET /v0/metadata.
type Metadata struct {
	Categories    []MetadataEntry `json:"animal_category"`
	Subcategories []MetadataEntry `json:"animal_subcategory"`
	AnimalCount   int64           `json:"animal_count"`
}

// MetadataEntry is one category or subcategory row.
type MetadataEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchQuery parameterizes a listing search. Zero values for Limit and
// Offset are replaced by the server defaults at request time.
type SearchQuery struct {
	Query  string
	Limit  int
	Offset int
}

// FetchQuery parameterizes a fetch-by-id. The zero value asks for a
// single active record, which is what the detail screen wants.
type FetchQuery struct {
	IncludeDeactivated bool
	Limit              int
	Offset             int
}

const (
	defaultSearchLimit = 100
	defaultFetchLimit  = 1
)

// AnimalList is an id-keyed collection that remembers insertion order,
// so a rendered listing matches the order the backend returned.
type AnimalList struct {
	ids  []string
	byID map[string]Animal
	hits int64
}

// NewAnimalList builds a list from records already in display order.
// Duplicate ids keep their first position and take the last value.
func NewAnimalList(hits int64, animals []Animal) *AnimalList {
	l := &AnimalList{
		byID: make(map[string]Animal, len(animals)),
		hits: hits,
	}
	for _, a := range animals {
		if _, seen := l.byID[a.ID]; !seen {
			l.ids = append(l.ids, a.ID)
		}
		l.byID[a.ID] = a
	}
	return l
}

// Hits is the total number of matches reported by the backend, which
// may exceed Len when the result was paginated.
func (l *AnimalList) Hits() int64 {
	return l.hits
}

// Len is the number of records in this page.
func (l *AnimalList) Len() int {
	return len(l.ids)
}

// IDs returns the record ids in backend order.
func (l *AnimalList) IDs() []string {
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}

// Get returns the record for id, if present.
func (l *AnimalList) Get(id string) (Animal, bool) {
	a, ok := l.byID[id]
	return a, ok
}

// Animals returns the records in backend order.
func (l *AnimalList) Animals() []Animal {
	out := make([]Animal, 0, len(l.ids))
	for _, id := range l.ids {
		out = append(out, l.byID[id])
	}
	return out
}
