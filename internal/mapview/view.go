package mapview

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shenikar/civic_guardian/internal/models"
)

// Имена двух независимых видов карты
const (
	ViewPrimary = "primary"
	ViewFull    = "full"
)

// DefaultTileURL - подложка OpenStreetMap
const DefaultTileURL = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"

// DefaultAttribution - обязательная атрибуция подложки
const DefaultAttribution = "© OpenStreetMap contributors"

// Marker - маркер на карте с текстом всплывающей подсказки
type Marker struct {
	Coordinate models.Coordinate `json:"coordinate"`
	Popup      string            `json:"popup"`
}

// View - контракт картографического виджета. Внутренности отрисовки
// тайлов вне зоны ответственности: здесь только операции, которые
// потребляет приложение.
type View interface {
	AddTileLayer(url, attribution string)
	SetView(center models.Coordinate, zoom int)
	AddMarker(marker Marker)
	ClearMarkers()
	InvalidateSize()
}

// State - снимок состояния вида для отдачи наружу
type State struct {
	Name          string            `json:"name"`
	Center        models.Coordinate `json:"center"`
	Zoom          int               `json:"zoom"`
	TileURL       string            `json:"tile_url"`
	Markers       []Marker          `json:"markers"`
	Invalidations int               `json:"invalidations"`
}

// StateView - реализация View без отрисовки: хранит центр, зум и маркеры.
// Слой отрисовки подписывается на это состояние, а логика остается тестируемой.
type StateView struct {
	mu            sync.RWMutex
	name          string
	center        models.Coordinate
	zoom          int
	tileURL       string
	attribution   string
	markers       []Marker
	invalidations int
}

// NewStateView создает вид с начальным центром и зумом
func NewStateView(name string, center models.Coordinate, zoom int) *StateView {
	return &StateView{
		name:    name,
		center:  center,
		zoom:    zoom,
		markers: make([]Marker, 0),
	}
}

// AddTileLayer запоминает подложку карты
func (v *StateView) AddTileLayer(url, attribution string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tileURL = url
	v.attribution = attribution
}

// SetView перемещает центр карты
func (v *StateView) SetView(center models.Coordinate, zoom int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.center = center
	v.zoom = zoom
}

// AddMarker добавляет маркер
func (v *StateView) AddMarker(marker Marker) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.markers = append(v.markers, marker)
}

// ClearMarkers удаляет все маркеры
func (v *StateView) ClearMarkers() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.markers = v.markers[:0]
}

// InvalidateSize помечает, что вид должен пересчитать свои размеры
func (v *StateView) InvalidateSize() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.invalidations++
}

// Snapshot возвращает копию текущего состояния вида
func (v *StateView) Snapshot() State {
	v.mu.RLock()
	defer v.mu.RUnlock()

	markers := make([]Marker, len(v.markers))
	copy(markers, v.markers)
	return State{
		Name:          v.name,
		Center:        v.center,
		Zoom:          v.zoom,
		TileURL:       v.tileURL,
		Markers:       markers,
		Invalidations: v.invalidations,
	}
}

// IncidentPopup форматирует текст подсказки маркера инцидента
func IncidentPopup(incident *models.Incident) string {
	return fmt.Sprintf("%s\n%s\n%s",
		strings.ToUpper(string(incident.Category)),
		incident.Description,
		incident.RelativeTime,
	)
}

// LocationPopup - текст подсказки маркера текущего местоположения
const LocationPopup = "Your Location"

// RebuildIncidentMarkers заново строит полный набор маркеров инцидентов
func RebuildIncidentMarkers(v View, incidents []*models.Incident) {
	v.ClearMarkers()
	for _, incident := range incidents {
		v.AddMarker(Marker{
			Coordinate: incident.Coordinate,
			Popup:      IncidentPopup(incident),
		})
	}
}

// AddLocationMarker ставит маркер "Your Location" в указанной точке
func AddLocationMarker(v View, coordinate models.Coordinate) {
	v.AddMarker(Marker{Coordinate: coordinate, Popup: LocationPopup})
}
