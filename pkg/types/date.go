package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарной даты (YYYY-MM-DD)
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Date календарная дата без времени и часового пояса.
// Внутри хранится как полночь UTC, поэтому арифметика по дням не зависит
// от перехода на летнее время и локальной зоны сервера.
type Date struct {
	t time.Time
}

// NewDate создает дату из года, месяца и дня (значения нормализуются как в time.Date)
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf берет календарную дату из времени в его собственной зоне
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate парсит строку формата YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// MustParseDate как ParseDate, но паникует при ошибке. Только для констант и тестов.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time возвращает дату как полночь UTC
func (d Date) Time() time.Time {
	return d.t
}

// IsZero проверяет, что дата не задана
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Year, Month, Day компоненты даты
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// AddDays сдвигает дату на n календарных дней
func (d Date) AddDays(n int) Date {
	return NewDate(d.t.Year(), d.t.Month(), d.t.Day()+n)
}

// AddMonths сдвигает дату на n месяцев, сохраняя день месяца там, где это возможно.
// 31 января + 1 месяц = 28 (29) февраля, а не 3 марта.
func (d Date) AddMonths(n int) Date {
	first := NewDate(d.t.Year(), d.t.Month()+time.Month(n), 1)
	day := d.t.Day()
	if last := first.DaysInMonth(); day > last {
		day = last
	}
	return NewDate(first.Year(), first.Month(), day)
}

// DaysInMonth количество дней в месяце даты
func (d Date) DaysInMonth() int {
	return NewDate(d.t.Year(), d.t.Month()+1, 0).Day()
}

// FirstOfMonth первое число месяца даты
func (d Date) FirstOfMonth() Date {
	return NewDate(d.t.Year(), d.t.Month(), 1)
}

// Before сравнивает даты
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// After сравнивает даты
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal проверяет равенство дат
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// DaysUntil количество дней от d до other (отрицательное, если other раньше)
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

// SameMonth проверяет, что даты в одном месяце одного года
func (d Date) SameMonth(other Date) bool {
	return d.t.Year() == other.t.Year() && d.t.Month() == other.t.Month()
}

// String возвращает дату в формате YYYY-MM-DD
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Value реализует driver.Valuer для колонок DATE
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan реализует sql.Scanner для колонок DATE
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("types.Date: cannot scan %T", src)
	}
}

func (d *Date) scanString(s string) error {
	// Postgres может вернуть дату с временем, берем только дату
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON сериализует дату как "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON парсит дату из "YYYY-MM-DD"
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
