package model

// Function is one scheduled screening: a movie playing in a room at a
// given time. Room identifiers double as the seat-grid room IDs used in
// seat identifiers ("Sala_IMAX-12").
type Function struct {
    Movie string `json:"movie"`
    Time  string `json:"time"`
    Room  string `json:"room"`
}

// Billboard groups the functions offered on one date.
type Billboard struct {
    Date      string     `json:"date"`
    Functions []Function `json:"functions"`
}

// TodayBillboard returns the current programme. The schedule is static
// for now; rooms listed here are the only valid purchase targets.
func TodayBillboard() Billboard {
    return Billboard{
        Date: "25 Oct 2023",
        Functions: []Function{
            {Movie: "Avengers", Time: "18:00", Room: "Sala_IMAX"},
        },
    }
}
