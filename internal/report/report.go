// Package report renders workout summaries for output.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/planbiir/ftracker/internal/training"
)

// Format selects how messages are written
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates an output format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text or json)", s)
}

// Message is the immutable result of one workout
type Message struct {
	ID           string  `json:"id"`
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration_h"`
	Distance     float64 `json:"distance_km"`
	Speed        float64 `json:"speed_kmh"`
	Calories     float64 `json:"calories"`
}

// NewMessage builds a message from a computed summary
func NewMessage(id string, s training.Summary) Message {
	return Message{
		ID:           id,
		TrainingType: s.Name,
		Duration:     s.Duration,
		Distance:     s.Distance,
		Speed:        s.Speed,
		Calories:     s.Calories,
	}
}

// String renders the summary line; every number keeps exactly three decimals
func (m Message) String() string {
	return fmt.Sprintf("Тип тренировки: %s; "+
		"Длительность: %.3f ч.; "+
		"Дистанция: %.3f км; "+
		"Ср. скорость: %.3f км/ч; "+
		"Потрачено ккал: %.3f.",
		m.TrainingType, m.Duration, m.Distance, m.Speed, m.Calories)
}

// Encode writes one message per line in the requested format
func Encode(w io.Writer, format Format, m Message) error {
	switch format {
	case FormatJSON:
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to marshal message: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		_, err := fmt.Fprintln(w, m.String())
		return err
	}
}
