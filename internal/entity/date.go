package entity

import (
	"fmt"
	"time"
)

// DateLayout формат календарных дат на проводе
const DateLayout = "2006-01-02"

// Date календарная дата, сериализуемая как yyyy-MM-dd.
// Нулевое значение означает отсутствие даты.
type Date struct {
	time.Time
}

// NewDate создает дату без компонента времени
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	t, err := time.Parse(`"`+DateLayout+`"`, string(data))
	if err != nil {
		return fmt.Errorf("birthdate must be a yyyy-MM-dd date: %w", err)
	}
	d.Time = t
	return nil
}
