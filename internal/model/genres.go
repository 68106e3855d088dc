package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// GenreList is an ordered list of genre tags shared by Venue and Artist.
// It is stored as a JSON-encoded text column, which both postgres and the
// sqlite test driver accept unchanged.
type GenreList []string

// Value serializes the list for storage.  A nil list is stored as an
// empty JSON array rather than NULL so the column can stay NOT NULL.
func (g GenreList) Value() (driver.Value, error) {
	if g == nil {
		g = GenreList{}
	}
	b, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan restores the list from its column representation.
func (g *GenreList) Scan(src any) error {
	if src == nil {
		*g = GenreList{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("genres: cannot scan %T", src)
	}
	if len(data) == 0 {
		*g = GenreList{}
		return nil
	}
	return json.Unmarshal(data, g)
}
