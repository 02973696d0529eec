package domain

// Флаги ячейки календаря. Порядок в DayCell.Flags фиксирован:
// cta, затем ctd, затем soldout.
const (
	FlagCTA     = "cta"
	FlagCTD     = "ctd"
	FlagSoldOut = "soldout"
)

// DayCell один день в календаре цен. Производное значение: строится
// календарём и не изменяется после создания, нигде не сохраняется.
type DayCell struct {
	Date      string // ISO "YYYY-MM-DD"
	Amount    *int64 // nil — цены нет, день не продаётся
	Available bool   // остаток > 0
	Flags     []string
}

// HasFlag проверяет наличие флага у ячейки
func (c DayCell) HasFlag(flag string) bool {
	for _, f := range c.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
