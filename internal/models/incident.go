package models

// Coordinate - пара координат (широта, долгота)
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Category - категория инцидента
type Category string

const (
	CategoryTheft      Category = "theft"
	CategoryVandalism  Category = "vandalism"
	CategoryAccident   Category = "accident"
	CategorySuspicious Category = "suspicious"
	CategoryHazard     Category = "hazard"
)

// Categories возвращает все известные категории в стабильном порядке
func Categories() []Category {
	return []Category{
		CategoryTheft,
		CategoryVandalism,
		CategoryAccident,
		CategorySuspicious,
		CategoryHazard,
	}
}

// Incident - справочная запись об инциденте, отображаемая на карте.
// Загружается один раз при старте и далее не изменяется.
type Incident struct {
	ID           int        `json:"id"`
	Coordinate   Coordinate `json:"coordinate"`
	Category     Category   `json:"category"`
	Description  string     `json:"description"`
	RelativeTime string     `json:"relative_time"`
	Distance     string     `json:"distance"`
}
