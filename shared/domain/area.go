package domain

import "time"

type Area struct {
	Id           AreaId        `json:"id"`
	Name         AreaName      `json:"name"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	AreaDominios []AreaDominio `json:"areaDominios"`
}

// AreaDominio is a link between an area and a dominio, with the dominio expanded.
type AreaDominio struct {
	AreaId    AreaId    `json:"areaId"`
	DominioId DominioId `json:"dominioId"`
	Dominio   Dominio   `json:"dominio"`
}

func (a *Area) DominioIds() []DominioId {
	ids := make([]DominioId, 0, len(a.AreaDominios))
	for _, ad := range a.AreaDominios {
		ids = append(ids, ad.DominioId)
	}
	return ids
}

type AreaCreationData struct {
	Name       AreaName
	DominioIds []DominioId
}

// Name nil keeps the current name, DominioIds nil keeps the current links.
type AreaUpdateData struct {
	Name       *AreaName
	DominioIds []DominioId
}

func (a AreaUpdateData) IsEmpty() bool {
	return a.Name == nil && a.DominioIds == nil
}

// LinkDiff is the set of link changes needed to turn the current dominio set into the wanted one.
type LinkDiff struct {
	Add    []DominioId
	Remove []DominioId
}

func (d LinkDiff) IsEmpty() bool {
	return len(d.Add) == 0 && len(d.Remove) == 0
}

// DiffLinks computes additions and removals, preserving the order of wanted and current.
// Duplicates in wanted are ignored.
func DiffLinks(current, wanted []DominioId) LinkDiff {
	have := make(map[DominioId]bool, len(current))
	for _, id := range current {
		have[id] = true
	}
	want := make(map[DominioId]bool, len(wanted))

	var diff LinkDiff
	for _, id := range wanted {
		if want[id] {
			continue
		}
		want[id] = true
		if !have[id] {
			diff.Add = append(diff.Add, id)
		}
	}
	for _, id := range current {
		if !want[id] {
			diff.Remove = append(diff.Remove, id)
		}
	}
	return diff
}

// UniqueIds drops repeated ids keeping first occurrences.
func UniqueIds(ids []DominioId) []DominioId {
	seen := make(map[DominioId]bool, len(ids))
	out := make([]DominioId, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
