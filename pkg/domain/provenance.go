package domain

import "time"

// Provenance is the origin and audit trail of a list: where it came from,
// when it was created and last touched, and who contributed to it.
// Contributors form an insertion-ordered set: order is the order names were
// first added and survives removals of other names.
type Provenance struct {
	Source           Source    `json:"source"`
	CreatedDate      time.Time `json:"created_date"`
	LastModifiedDate time.Time `json:"last_modified_date"`
	Contributors     []string  `json:"contributors"`
}

// NewProvenance stamps both dates with the current time. Duplicate names in
// the initial contributor slice are dropped, keeping first positions.
func NewProvenance(source Source, contributors []string) Provenance {
	now := time.Now().UTC()
	p := Provenance{Source: source, CreatedDate: now, LastModifiedDate: now}
	for _, c := range contributors {
		p.AddContributor(c)
	}
	return p
}

// Touch updates the last modified date.
func (p *Provenance) Touch() {
	p.LastModifiedDate = time.Now().UTC()
}

// AddContributor appends the name unless it is already present.
func (p *Provenance) AddContributor(name string) {
	for _, c := range p.Contributors {
		if c == name {
			return
		}
	}
	p.Contributors = append(p.Contributors, name)
}

// RemoveContributor removes the name, preserving the order of the remaining
// contributors. Removing an absent name is an error.
func (p *Provenance) RemoveContributor(name string) error {
	for i, c := range p.Contributors {
		if c == name {
			p.Contributors = append(p.Contributors[:i], p.Contributors[i+1:]...)
			return nil
		}
	}
	return ContributorNotFoundError{Name: name}
}
