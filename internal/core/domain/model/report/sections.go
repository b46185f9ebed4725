package report

// The section types below are data records captured during the site visit.
// They carry no invariants of their own; the report tracks which of them are
// present and derives completeness from that.

// Dwelling describes the physical dwelling that was visited.
type Dwelling struct {
	DwellingType string
	Material     string
	Floors       int
	Condition    string
}

// Zone describes the surroundings of the visited address.
type Zone struct {
	ZoneType      string
	Accessibility string
	RiskLevel     string
}

// GeoLocation is the geocoded position captured at the site.
type GeoLocation struct {
	Latitude  float64
	Longitude float64
}

// Residence describes how the client occupies the dwelling.
type Residence struct {
	Ownership        string
	YearsOfResidence int
	HouseholdSize    int
}

// Garage describes vehicle storage at the dwelling.
type Garage struct {
	Present  bool
	Capacity int
}

// ContactReference is a neighbor or acquaintance consulted during the visit.
type ContactReference struct {
	Name         string
	Phone        string
	Relationship string
}

// LandlordInterview holds the landlord's answers for tenant clients.
type LandlordInterview struct {
	LandlordName    string
	LandlordPhone   string
	Interviewed     bool
	ConfirmsTenancy bool
	Notes           string
}
