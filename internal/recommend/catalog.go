// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package recommend

import "strings"

// Place is one row of the place metadata table.
type Place struct {
	ID       int64
	Name     string
	Category string
	City     string
	Lat      float64
	Lon      float64

	// HasCoords is false when Lat or Long was empty in the source table.
	HasCoords bool
}

// Catalog is the ordered place metadata table. Row order matches the rows and
// columns of the content similarity matrix.
type Catalog struct {
	places     []Place
	lowerNames []string
	byID       map[int64]int
}

// NewCatalog builds a catalog from rows in table order. When several rows
// share a Place_Id, lookups by id return the first of them.
func NewCatalog(places []Place) *Catalog {
	c := &Catalog{
		places:     make([]Place, len(places)),
		lowerNames: make([]string, len(places)),
		byID:       make(map[int64]int, len(places)),
	}
	copy(c.places, places)

	for i := range c.places {
		c.lowerNames[i] = strings.ToLower(c.places[i].Name)
		if _, seen := c.byID[c.places[i].ID]; !seen {
			c.byID[c.places[i].ID] = i
		}
	}
	return c
}

// Len returns the number of rows.
func (c *Catalog) Len() int {
	return len(c.places)
}

// At returns row i.
func (c *Catalog) At(i int) Place {
	return c.places[i]
}

// Lookup returns the first row carrying id.
func (c *Catalog) Lookup(id int64) (Place, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Place{}, false
	}
	return c.places[i], true
}

// FindByName returns the first row, in table order, whose name contains
// fragment as a literal case-insensitive substring. An empty fragment never
// matches.
func (c *Catalog) FindByName(fragment string) (int, bool) {
	if fragment == "" {
		return 0, false
	}
	needle := strings.ToLower(fragment)
	for i, name := range c.lowerNames {
		if strings.Contains(name, needle) {
			return i, true
		}
	}
	return 0, false
}
