package benchmark

import (
	"fmt"
	"strings"
)

// Deterministic string generators so every run benchmarks the same bytes.
func generateName(i int) string {
	firstNames := []string{"Alice", "Bob", "Charlie", "Diana", "Eve", "Frank", "Grace", "Henry", "Ivy", "Jack"}
	lastNames := []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	return firstNames[i%len(firstNames)] + " " + lastNames[(i*7)%len(lastNames)]
}

func generateCity(i int) string {
	cities := []string{"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia", "San Antonio", "San Diego", "Dallas", "Austin"}
	return cities[i%len(cities)]
}

func generateTheme(i int) string {
	themes := []string{"light", "dark", "system", "custom"}
	return themes[i%len(themes)]
}

// GenerateLargeJSON creates a JSON document with the specified number of
// user records, roughly 300 bytes per user.
func GenerateLargeJSON(count int) []byte {
	var sb strings.Builder
	sb.Grow(count * 300)

	sb.WriteString(`{"users":[`)

	for i := 0; i < count; i++ {
		if i > 0 {
			sb.WriteString(",")
		}

		user := fmt.Sprintf(`{"id":%d,"name":"%s","email":"user%d@example.com","age":%d,"active":%t,"score":%.2f,"profile":{"bio":"User %d biography with some longer text to increase size","address":{"street":"%d Main Street","city":"%s","zip":"%05d"}},"settings":{"notifications":%t,"theme":"%s","language":"en"}}`,
			i,
			generateName(i),
			i,
			18+(i%62),
			i%3 != 0,
			float64(50+(i%50))+float64(i%100)/100.0,
			i,
			100+(i%900),
			generateCity(i),
			10000+(i%90000),
			i%2 == 0,
			generateTheme(i),
		)
		sb.WriteString(user)
	}

	sb.WriteString(`],"metadata":{"count":`)
	sb.WriteString(fmt.Sprintf("%d", count))
	sb.WriteString(`,"generated":"2026-08-26"}}`)
	return []byte(sb.String())
}
