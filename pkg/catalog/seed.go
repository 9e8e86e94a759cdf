package catalog

// SeedMovies returns the built-in watch list used when the store has no
// movies slot yet. Callers get a fresh slice on every call.
func SeedMovies() []Item {
	return []Item{
		{
			ID:          "m1",
			Title:       "Dune: Part Two",
			Description: "Paul Atreides unites with Chani and the Fremen while seeking revenge against the conspirators who destroyed his family.",
			ImageURL:    "https://picsum.photos/seed/dune2/400/600",
			Category:    "Sci-Fi",
		},
		{
			ID:          "m2",
			Title:       "Inception",
			Description: "A thief who steals corporate secrets through dream-sharing technology is given the inverse task of planting an idea in a CEO's mind.",
			ImageURL:    "https://picsum.photos/seed/inception/400/600",
			Category:    "Action",
		},
		{
			ID:          "m3",
			Title:       "The Godfather",
			Description: "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.",
			ImageURL:    "https://picsum.photos/seed/godfather/400/600",
			Category:    "Drama",
		},
		{
			ID:          "m4",
			Title:       "Interstellar",
			Description: "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.",
			ImageURL:    "https://picsum.photos/seed/interstellar/400/600",
			Category:    "Adventure",
		},
	}
}

// SeedGames returns the built-in play list used when the store has no games
// slot yet.
func SeedGames() []Item {
	return []Item{
		{
			ID:          "g1",
			Title:       "Baldur's Gate 3",
			Description: "A next-generation RPG set in the world of Dungeons and Dragons, with a rich story driven by player choice.",
			ImageURL:    "https://picsum.photos/seed/bg3/400/600",
			Category:    "Story Rich",
		},
		{
			ID:          "g2",
			Title:       "It Takes Two",
			Description: "Embark on the craziest journey of your life in this co-op-only adventure where a clashing couple is turned into dolls.",
			ImageURL:    "https://picsum.photos/seed/ittakestwo/400/600",
			Category:    "Co-op",
		},
		{
			ID:          "g3",
			Title:       "Elden Ring",
			Description: "An epic action RPG set in a vast fantasy world full of mystery and peril.",
			ImageURL:    "https://picsum.photos/seed/eldenring/400/600",
			Category:    "Open World",
		},
		{
			ID:          "g4",
			Title:       "Stardew Valley",
			Description: "A cozy farming sim where you build a new life in the countryside, get to know the locals, and start a family.",
			ImageURL:    "https://picsum.photos/seed/stardew/400/600",
			Category:    "Simulation",
		},
	}
}
