package wikitable

// TableKind identifies which of the four recognized wiki tables a row came
// from. The kind decides which cell holds the location, whether a row may
// name several locations, and whether trips count as work or personal.
type TableKind string

const (
	GoLive    TableKind = "golive"
	Immersion TableKind = "immersion"
	AdHoc     TableKind = "adhoc"
	Personal  TableKind = "personal"
)

// Collection separates work travel from personal travel.
type Collection string

const (
	WorkTravel     Collection = "work"
	PersonalTravel Collection = "personal"
)

// Schema describes where a table kind keeps its cells. LocationColumn -1
// means the last cell of the row, whatever the row width.
type Schema struct {
	LocationColumn int
	DateColumn     int
	MinColumns     int
	MultiLocation  bool
	Collection     Collection
}

// CSS classes marking each table kind on the wiki page, and the class that
// opts a single row out of the map.
const (
	goLiveClass    = "golive-table"
	immersionClass = "immersion-table"
	adHocClass     = "adhoc-trip-table"
	personalClass  = "personal-trips-table"

	excludeClass = "map-exclude"
)

var schemas = map[TableKind]Schema{
	// Go-Live and Immersion tables end with a "Nearest Major City" column.
	GoLive:    {LocationColumn: -1, DateColumn: 0, MinColumns: 4, MultiLocation: true, Collection: WorkTravel},
	Immersion: {LocationColumn: -1, DateColumn: 0, MinColumns: 4, MultiLocation: true, Collection: WorkTravel},
	// Ad-hoc rows are Customer | Trip | Dates | Location.
	AdHoc: {LocationColumn: 3, DateColumn: 2, MinColumns: 4, Collection: WorkTravel},
	// Personal rows are Destination | Dates.
	Personal: {LocationColumn: 0, DateColumn: 1, MinColumns: 1, MultiLocation: true, Collection: PersonalTravel},
}

var tableSelectors = []struct {
	kind     TableKind
	selector string
}{
	{GoLive, "table." + goLiveClass},
	{Immersion, "table." + immersionClass},
	{AdHoc, "table." + adHocClass},
	{Personal, "table." + personalClass},
}
