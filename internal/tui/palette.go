package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/moodlog/internal/model"
)

var moodPalette = map[model.Mood]lipgloss.Color{
	model.Happy:      lipgloss.Color("#F4C542"),
	model.Excited:    lipgloss.Color("#FF8C42"),
	model.Energetic:  lipgloss.Color("#7BD389"),
	model.Content:    lipgloss.Color("#8FB8DE"),
	model.Calm:       lipgloss.Color("#5FB0B7"),
	model.Sad:        lipgloss.Color("#6C7A89"),
	model.Anxious:    lipgloss.Color("#B48EAD"),
	model.Angry:      lipgloss.Color("#FF4D4F"),
	model.Irritated:  lipgloss.Color("#E9806E"),
	model.Frustrated: lipgloss.Color("#C8553D"),
}

// MoodStyle returns the foreground style used for a mood label.
func MoodStyle(mood model.Mood) lipgloss.Style {
	color, ok := moodPalette[mood]
	if !ok {
		color = lipgloss.Color("#8C8C8C")
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}
