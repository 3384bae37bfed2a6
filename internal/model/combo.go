package model

// Combo is a snack bundle sold alongside tickets. Prices are in minor
// currency units like everything else.
type Combo struct {
    ID    string   `json:"id"`
    Name  string   `json:"name"`
    Price int64    `json:"price"`
    Items []string `json:"items"`
}

// Menu is the fixed snack menu offered at checkout.
var Menu = []Combo{
    {
        ID:    "combo1",
        Name:  "Combo Personal",
        Price: 28000,
        Items: []string{"Crispetas Medianas", "Gaseosa 16oz"},
    },
    {
        ID:    "combo2",
        Name:  "Combo Pareja",
        Price: 45000,
        Items: []string{"Crispetas Grandes", "2 Gaseosas 16oz", "Chocolatina Jet"},
    },
    {
        ID:    "combo3",
        Name:  "Combo Familiar",
        Price: 65000,
        Items: []string{"2 Crispetas Grandes", "4 Gaseosas 16oz", "2 Chocolatinas Jet", "Nachos con Queso"},
    },
}

// ComboByID looks a combo up by its identifier.
func ComboByID(id string) (Combo, bool) {
    for _, c := range Menu {
        if c.ID == id {
            return c, true
        }
    }
    return Combo{}, false
}
