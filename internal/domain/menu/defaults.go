package menu

import "github.com/google/uuid"

// DefaultMenu returns the seed menu served before the first admin edit.
// Each call stamps fresh IDs so the seed can be persisted as-is.
func DefaultMenu() []Section {
	return []Section{
		{
			ID:   uuid.NewString(),
			Name: "Daily Specials",
			Items: []Item{
				{ID: uuid.NewString(), Name: "Taco Tuesday", Description: "Tacos — $3 | Burrito — $12 | Burrito Bowl — $14\nChicken, Steak, Fish, Pork, Pastor, Veggie\nFor Shrimp or Tongue add $1"},
				{ID: uuid.NewString(), Name: "WTF Wednesday", Description: "WHO THE F#$% Knows? Ask your server."},
				{ID: uuid.NewString(), Name: "Thirsty Thursday", Description: "Texas Burger & 16oz Draft Beer — $19.99\n12oz Cider — $3"},
				{ID: uuid.NewString(), Name: "Fried Chicken Friday", Description: "(Includes sides) 4pc — $19 | 8pc — $29"},
				{ID: uuid.NewString(), Name: "Smoked Saturday", Description: "Ribs, Salmon, Pork, or Brisket Plate with 1 side — $19\nSandwich with fries — $16"},
			},
		},
		{
			ID:   uuid.NewString(),
			Name: "Drinks",
			Items: []Item{
				{ID: uuid.NewString(), Name: "Beer", Description: "We have several rotating taps of micro, macro, nano, regional breweries and everything in between. Plus numerous varieties of 12–19oz canned beer, agua fresca, hard kombucha, cider and cocktails."},
				{ID: uuid.NewString(), Name: "Wine", Description: "Wine available by glass or bottle. Beer and wine also offered to go."},
			},
		},
	}
}
