package source

import "hackscout/internal/model"

// PopularSites lists well-known hackathon directories for display purposes.
// The list is broader than the scrape catalog on purpose.
func PopularSites() []model.Site {
	return []model.Site{
		{
			Name:        "Devpost",
			URL:         "https://devpost.com/hackathons",
			Description: "Find hackathons and coding competitions",
		},
		{
			Name:        "MLH (Major League Hacking)",
			URL:         "https://mlh.io/seasons/2024/events",
			Description: "Official student hackathon league",
		},
		{
			Name:        "Hackathon.com",
			URL:         "https://www.hackathon.com/events",
			Description: "Global hackathon directory",
		},
		{
			Name:        "HackerEarth",
			URL:         "https://www.hackerearth.com/challenges/hackathon/",
			Description: "Programming challenges and hackathons",
		},
		{
			Name:        "AngelHack",
			URL:         "https://angelhack.com/",
			Description: "Global hackathon series",
		},
	}
}
