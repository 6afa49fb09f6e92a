package procedures

// Procedure is one medical-service line after normalization.
type Procedure struct {
	Unit      string  `json:"unit"`
	Procedure string  `json:"procedure"`
	Amount    float64 `json:"amount"`
	Category  string  `json:"category"`
}

// SubTotal is one nested slice of a cross-cut group.
type SubTotal struct {
	Label string  `json:"label"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// Group is one bucket of a cross-cut, with its nested breakdown.
type Group struct {
	Label   string     `json:"label"`
	Total   float64    `json:"total"`
	Count   int        `json:"count"`
	Percent float64    `json:"percent"`
	Items   []SubTotal `json:"items"`
}

type Statistics struct {
	TotalProcedures int     `json:"total_procedures"`
	TotalUnits      int     `json:"total_units"`
	TotalCategories int     `json:"total_categories"`
	TotalAmount     float64 `json:"total_amount"`
}

// Report carries the three cross-cuts: by category with nested procedure
// totals, by procedure with nested unit totals, by unit with nested category
// totals.
type Report struct {
	Statistics  Statistics `json:"statistics"`
	ByCategory  []Group    `json:"by_category"`
	ByProcedure []Group    `json:"by_procedure"`
	ByUnit      []Group    `json:"by_unit"`
}
