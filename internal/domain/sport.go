package domain

// Sport represents a sport available for booking.
// The catalog is static for now; a sports table can replace it later
// without changing the read contract.
type Sport struct {
	ID   string
	Name string
}

// Sports is the static sport catalog, in presentation order
var Sports = []Sport{
	{ID: "sport-1", Name: "Tennis"},
	{ID: "sport-2", Name: "Badminton"},
	{ID: "sport-3", Name: "Basketball"},
	{ID: "sport-4", Name: "Football"},
	{ID: "sport-5", Name: "Cricket"},
	{ID: "sport-6", Name: "Volleyball"},
}
