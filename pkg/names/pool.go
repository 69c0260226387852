package names

// FirstNames feeds preview persons.
var FirstNames = []string{
	"Alex", "Sam", "Kim", "Robin", "Luca", "Noah", "Mia", "Jona", "Charlie",
	"Toni", "Kai", "Nico", "Jamie", "Mika", "Sascha", "Eli", "Janne", "Ari",
	"Luka", "Fynn", "Lou", "Maxi", "Nuri", "Quinn", "Romy",
}

// LastNames feeds filler surnames for single-word entries and previews.
var LastNames = []string{
	"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner",
	"Becker", "Schulz", "Hoffmann", "Koch", "Richter", "Klein", "Wolf",
	"Neumann", "Schwarz", "Zimmermann", "Braun", "Krüger", "Hofmann",
	"Hartmann", "Lange", "Werner", "Krause", "Lehmann", "Köhler", "Yılmaz",
	"Nowak", "Kaya", "Öztürk",
}
