package domain

import "sort"

// CategorisationAndUsage carries free-form tags, usage notes and an optional
// license. Tags and usage are unordered sets; they are stored sorted so
// serialized forms are deterministic.
type CategorisationAndUsage struct {
	Tags    []string `json:"tags"`
	Usage   []string `json:"usage"`
	License *string  `json:"license,omitempty"`
}

// NewCategorisationAndUsage deduplicates and sorts the initial sets.
func NewCategorisationAndUsage(tags, usage []string, license *string) CategorisationAndUsage {
	c := CategorisationAndUsage{}
	for _, t := range tags {
		c.AddTag(t)
	}
	for _, u := range usage {
		c.AddUsage(u)
	}
	if license != nil {
		l := *license
		c.License = &l
	}
	return c
}

// AddTag inserts a tag; adding one that is already present is a no-op.
func (c *CategorisationAndUsage) AddTag(tag string) {
	c.Tags = insertSorted(c.Tags, tag)
}

// RemoveTag removes a tag; removing an absent tag is a no-op.
func (c *CategorisationAndUsage) RemoveTag(tag string) {
	c.Tags = removeSorted(c.Tags, tag)
}

// AddUsage inserts a usage note; idempotent like AddTag.
func (c *CategorisationAndUsage) AddUsage(usage string) {
	c.Usage = insertSorted(c.Usage, usage)
}

// RemoveUsage removes a usage note; removing an absent note is a no-op.
func (c *CategorisationAndUsage) RemoveUsage(usage string) {
	c.Usage = removeSorted(c.Usage, usage)
}

// AddLicense sets the license when none is set.
func (c *CategorisationAndUsage) AddLicense(license string) error {
	return addScalar(&c.License, license, "license")
}

// UpdateLicense sets the license regardless of prior state.
func (c *CategorisationAndUsage) UpdateLicense(license string) {
	c.License = &license
}

// RemoveLicense clears the license; a no-op when none is set.
func (c *CategorisationAndUsage) RemoveLicense() {
	c.License = nil
}

func insertSorted(set []string, value string) []string {
	i := sort.SearchStrings(set, value)
	if i < len(set) && set[i] == value {
		return set
	}
	set = append(set, "")
	copy(set[i+1:], set[i:])
	set[i] = value
	return set
}

func removeSorted(set []string, value string) []string {
	i := sort.SearchStrings(set, value)
	if i >= len(set) || set[i] != value {
		return set
	}
	return append(set[:i], set[i+1:]...)
}
