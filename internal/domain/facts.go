package domain

import "time"

// Fact tables are flat lists of free-text records owned by one user. There
// are no cross-fact invariants; each type below maps one-to-one onto a table.

// Education is a degree earned by the staff member.
type Education struct {
	ID        string
	UserID    string
	Degree    string
	College   string
	StartYear string
	EndYear   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Research holds a comma-separated list of research area tags.
type Research struct {
	ID            string
	UserID        string
	ResearchAreas string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ResearchID is a named research identifier with an optional link.
type ResearchID struct {
	ID            string
	UserID        string
	ResearchTitle string
	ResearchLink  *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Funding is a funded project record.
type Funding struct {
	ID            string
	UserID        string
	ProjectTitle  string
	FundingAgency string
	MonthAndYear  string
	Amount        float64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Publication is a published work.
type Publication struct {
	ID           string
	UserID       string
	Title        string
	Link         string
	Type         string
	MonthAndYear string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdministrationPosition is an administrative role held over a year range.
type AdministrationPosition struct {
	ID        string
	UserID    string
	Position  string
	YearFrom  string
	YearTo    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HonoraryPosition is an honorary role held in a given year.
type HonoraryPosition struct {
	ID        string
	UserID    string
	Position  string
	Year      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Conference is a paper presented at a conference.
type Conference struct {
	ID        string
	UserID    string
	Title     string
	Details   string
	Type      string
	ISBN      string
	Year      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PhdStatusCompleted marks a finished supervision in phd status fields.
const PhdStatusCompleted = "Completed"

// PhdScholar is a supervised doctoral candidate.
type PhdScholar struct {
	ID               string
	UserID           string
	ScholarName      string
	Topic            string
	Status           string
	YearOfCompletion string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ResourcePerson records an invited-talk engagement.
type ResourcePerson struct {
	ID         string
	UserID     string
	Topic      string
	Department string
	Date       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Note is a single free-text record; collaborations, consultancies, career
// highlights and research careers all share this shape and differ only by
// the section (and table) they live in.
type Note struct {
	ID        string
	UserID    string
	Details   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileFacts aggregates every fact row owned by one user. It is the
// payload of the public profile and the haystack for faculty search.
type ProfileFacts struct {
	Educations              []Education
	Researches              []Research
	ResearchIDs             []ResearchID
	Fundings                []Funding
	Publications            []Publication
	AdministrationPositions []AdministrationPosition
	HonoraryPositions       []HonoraryPosition
	Conferences             []Conference
	PhdScholars             []PhdScholar
	ResourcePersons         []ResourcePerson
	Collaborations          []Note
	Consultancies           []Note
	CareerHighlights        []Note
	ResearchCareers         []Note
}
