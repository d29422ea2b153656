package memory

import (
	"time"

	"github.com/Vasu1712/hackmate-backend/internal/models"
)

// Seed is the initial content of a DMStore.
type Seed struct {
	Users         []models.User
	Conversations []models.DMConversation
	Messages      []models.DMMessage
	Catalog       models.Catalog
}

// DemoSeed returns the sample profiles and conversations the app starts with.
func DemoSeed() Seed {
	base := time.Date(2024, time.March, 14, 9, 0, 0, 0, time.UTC)

	return Seed{
		Catalog: models.Catalog{
			Skills: []string{
				"JavaScript", "TypeScript", "React", "Node.js", "Python", "Go", "Rust",
				"Machine Learning", "Data Science", "UI/UX Design", "DevOps", "Blockchain",
				"Mobile Development", "Product Management",
			},
			Locations: []string{
				"San Francisco, CA", "New York, NY", "Austin, TX", "Seattle, WA",
				"London, UK", "Berlin, Germany", "Bangalore, India", "Remote",
			},
			Hackathons: []string{
				"HackMIT", "TreeHacks", "PennApps", "HackNY", "ETHGlobal", "MLH Local Hack Day",
			},
		},
		Users: []models.User{
			{
				ID:         "1",
				Name:       "Alex Johnson",
				Title:      "Full Stack Developer",
				Location:   "San Francisco, CA",
				Bio:        "Building web apps for six years. Looking for a designer and an ML person for TreeHacks.",
				Avatar:     "/avatars/alex.png",
				Skills:     []string{"JavaScript", "React", "Node.js"},
				Hackathons: []string{"TreeHacks", "HackMIT"},
			},
			{
				ID:         "2",
				Name:       "Priya Sharma",
				Title:      "Machine Learning Engineer",
				Location:   "Bangalore, India",
				Bio:        "NLP and recommender systems. Happy to mentor first-time hackers.",
				Avatar:     "/avatars/priya.png",
				Skills:     []string{"Python", "Machine Learning", "Data Science"},
				Hackathons: []string{"HackMIT", "MLH Local Hack Day"},
			},
			{
				ID:         "3",
				Name:       "Marcus Lee",
				Title:      "Product Designer",
				Location:   "New York, NY",
				Bio:        "I turn rough ideas into clickable prototypes over a weekend.",
				Avatar:     "/avatars/marcus.png",
				Skills:     []string{"UI/UX Design", "Product Management"},
				Hackathons: []string{"HackNY", "PennApps"},
			},
			{
				ID:         "4",
				Name:       "Sofia Martinez",
				Title:      "Backend Engineer",
				Location:   "Remote",
				Bio:        "Distributed systems in Go and Rust. Interested in web3 infrastructure.",
				Avatar:     "/avatars/sofia.png",
				Skills:     []string{"Go", "Rust", "DevOps", "Blockchain"},
				Hackathons: []string{"ETHGlobal"},
			},
			{
				ID:         "5",
				Name:       "Jonas Becker",
				Title:      "Mobile Developer",
				Location:   "Berlin, Germany",
				Bio:        "React Native and Swift. Last hackathon project won best mobile app.",
				Avatar:     "/avatars/jonas.png",
				Skills:     []string{"Mobile Development", "TypeScript", "React"},
				Hackathons: []string{"ETHGlobal", "PennApps"},
			},
			{
				ID:         "6",
				Name:       "Hannah Kim",
				Title:      "Data Scientist",
				Location:   "Seattle, WA",
				Bio:        "Visualization nerd. Looking for a team that cares about climate data.",
				Avatar:     "/avatars/hannah.png",
				Skills:     []string{"Python", "Data Science"},
				Hackathons: []string{"TreeHacks"},
			},
		},
		Conversations: []models.DMConversation{
			{ID: "c1", Participants: [2]string{"1", "2"}, UnreadCount: 1},
			{ID: "c2", Participants: [2]string{"1", "3"}, UnreadCount: 0},
		},
		Messages: []models.DMMessage{
			{ID: "m1", SenderID: "1", ReceiverID: "2", Content: "Hi Priya! Are you going to HackMIT this year?", Timestamp: base, Read: true},
			{ID: "m2", SenderID: "2", ReceiverID: "1", Content: "Yes! Still looking for a frontend person.", Timestamp: base.Add(15 * time.Minute), Read: false},
			{ID: "m3", SenderID: "3", ReceiverID: "1", Content: "Loved your last project. Want to team up for TreeHacks?", Timestamp: base.Add(-24 * time.Hour), Read: true},
			{ID: "m4", SenderID: "1", ReceiverID: "3", Content: "Definitely, let's talk ideas this week.", Timestamp: base.Add(-23 * time.Hour), Read: true},
		},
	}
}
