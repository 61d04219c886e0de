package domain

// PurposeAndContext describes why the list exists, who it is for and where it
// applies. All three fields are optional scalars with the uniform
// add/update/remove discipline: add requires the field to be absent, update
// always sets, remove is a no-op when absent.
type PurposeAndContext struct {
	Purpose        *string `json:"purpose,omitempty"`
	TargetAudience *string `json:"target_audience,omitempty"`
	UseContext     *string `json:"use_context,omitempty"`
}

// NewPurposeAndContext copies the supplied optional values.
func NewPurposeAndContext(purpose, targetAudience, useContext *string) PurposeAndContext {
	return PurposeAndContext{
		Purpose:        cloneScalar(purpose),
		TargetAudience: cloneScalar(targetAudience),
		UseContext:     cloneScalar(useContext),
	}
}

// AddPurpose sets the purpose when none is set.
func (p *PurposeAndContext) AddPurpose(purpose string) error {
	return addScalar(&p.Purpose, purpose, "purpose")
}

// UpdatePurpose sets the purpose regardless of prior state.
func (p *PurposeAndContext) UpdatePurpose(purpose string) {
	p.Purpose = &purpose
}

// RemovePurpose clears the purpose; a no-op when absent.
func (p *PurposeAndContext) RemovePurpose() {
	p.Purpose = nil
}

// AddTargetAudience sets the target audience when none is set.
func (p *PurposeAndContext) AddTargetAudience(audience string) error {
	return addScalar(&p.TargetAudience, audience, "target audience")
}

// UpdateTargetAudience sets the target audience regardless of prior state.
func (p *PurposeAndContext) UpdateTargetAudience(audience string) {
	p.TargetAudience = &audience
}

// RemoveTargetAudience clears the target audience; a no-op when absent.
func (p *PurposeAndContext) RemoveTargetAudience() {
	p.TargetAudience = nil
}

// AddUseContext sets the use context when none is set.
func (p *PurposeAndContext) AddUseContext(useContext string) error {
	return addScalar(&p.UseContext, useContext, "use context")
}

// UpdateUseContext sets the use context regardless of prior state.
func (p *PurposeAndContext) UpdateUseContext(useContext string) {
	p.UseContext = &useContext
}

// RemoveUseContext clears the use context; a no-op when absent.
func (p *PurposeAndContext) RemoveUseContext() {
	p.UseContext = nil
}
