package dtos

// Logbook entry types. The logbook list filters on type rather than
// the ACTIVE/DEACTIVE status the other entities use.
const (
	FlightTypeSolo = "SOLO"
	FlightTypeDual = "DUAL"
	FlightTypeSim  = "SIM"
)

// LogbookEntry is one recorded flight in a pilot's logbook.
type LogbookEntry struct {
	ID            string `json:"id"`
	PilotID       string `json:"pilotId"`
	PilotName     string `json:"pilotName,omitempty"`
	Date          string `json:"date"`
	Aircraft      string `json:"aircraft"`
	Route         string `json:"route,omitempty"`
	FlightType    string `json:"flightType"`
	FlightTimeMin int    `json:"flightTimeMin"`
	Remarks       string `json:"remarks,omitempty"`
}

func (l LogbookEntry) EntityID() string { return l.ID }

// LogbookListData is the payload of GET /logbook/all-logbook.
type LogbookListData struct {
	Entries    []LogbookEntry `json:"logbooks"`
	Pagination Pagination     `json:"pagination"`
}

// LogbookInput is the body for logbook create/update calls.
type LogbookInput struct {
	PilotID       string `json:"pilotId"`
	Date          string `json:"date"`
	Aircraft      string `json:"aircraft"`
	Route         string `json:"route,omitempty"`
	FlightType    string `json:"flightType"`
	FlightTimeMin int    `json:"flightTimeMin"`
	Remarks       string `json:"remarks,omitempty"`
}
