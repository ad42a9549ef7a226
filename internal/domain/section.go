package domain

// Section identifies one category of profile record. Section tags drive the
// completion tracker, the export registry and the search category labels.
type Section string

const (
	SectionProfileDetails         Section = "profile_details"
	SectionEducation              Section = "education"
	SectionResearch               Section = "research"
	SectionResearchID             Section = "research_id"
	SectionFunding                Section = "funding"
	SectionPublication            Section = "publication"
	SectionAdministrationPosition Section = "administration_position"
	SectionHonoraryPosition       Section = "honorary_position"
	SectionConference             Section = "conference"
	SectionPhd                    Section = "phd"
	SectionResourcePerson         Section = "resource_person"
	SectionCollaboration          Section = "collaboration"
	SectionConsultancy            Section = "consultancy"
	SectionCareerHighlight        Section = "career_highlight"
	SectionResearchCareer         Section = "research_career"
)

// FactSections lists every repeatable fact section in a stable order.
var FactSections = []Section{
	SectionEducation,
	SectionResearch,
	SectionResearchID,
	SectionFunding,
	SectionPublication,
	SectionAdministrationPosition,
	SectionHonoraryPosition,
	SectionConference,
	SectionPhd,
	SectionResourcePerson,
	SectionCollaboration,
	SectionConsultancy,
	SectionCareerHighlight,
	SectionResearchCareer,
}

// TrackedSections are the four sections gating public visibility.
var TrackedSections = []Section{
	SectionProfileDetails,
	SectionEducation,
	SectionResearchCareer,
	SectionCareerHighlight,
}

// Tracked reports whether writes to the section feed the completion tracker.
func (s Section) Tracked() bool {
	for _, t := range TrackedSections {
		if s == t {
			return true
		}
	}
	return false
}
