package models

import "fmt"

// Screen - один из взаимоисключающих экранов приложения
type Screen string

const (
	ScreenHome          Screen = "home"
	ScreenMap           Screen = "map"
	ScreenReports       Screen = "reports"
	ScreenProfile       Screen = "profile"
	ScreenNotifications Screen = "notifications"
	ScreenReportForm    Screen = "report-form"
	ScreenAdmin         Screen = "admin"
)

// ParseScreen разбирает имя экрана из пользовательского ввода
func ParseScreen(name string) (Screen, error) {
	switch Screen(name) {
	case ScreenHome, ScreenMap, ScreenReports, ScreenProfile,
		ScreenNotifications, ScreenReportForm, ScreenAdmin:
		return Screen(name), nil
	}
	return "", fmt.Errorf("unknown screen %q", name)
}
